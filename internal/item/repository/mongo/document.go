package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mongo-crud-api/internal/item"
)

// itemDoc is the stored shape of an Item.
type itemDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d itemDoc) toItem() item.Item {
	return item.Item{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
