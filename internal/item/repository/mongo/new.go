package mongo

import (
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"mongo-crud-api/internal/item/repository"
	"mongo-crud-api/pkg/log"
)

// CollectionName is the collection items are persisted in.
const CollectionName = "items"

type implRepository struct {
	db *mongo.Database
	l  log.Logger
}

// New creates a new MongoDB-backed Repository for the item domain.
func New(db *mongo.Database, l log.Logger) repository.Repository {
	if db == nil {
		panic("item/repository/mongo: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) coll() *mongo.Collection {
	return r.db.Collection(CollectionName)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/mongo.%s", method)
}
