package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseObjectID parses a hex id. ok is false for anything that is not a
// valid ObjectID, which callers treat the same as a missing document.
func ParseObjectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

// Now returns the current UTC time at the precision BSON stores.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
