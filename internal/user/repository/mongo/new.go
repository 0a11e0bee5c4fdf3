package mongo

import (
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"mongo-crud-api/internal/user/repository"
	"mongo-crud-api/pkg/log"
)

const CollectionName = "users"

type implRepository struct {
	db *mongo.Database
	l  log.Logger
}

// New creates a MongoDB-backed Repository for the user domain.
func New(db *mongo.Database, l log.Logger) repository.Repository {
	if db == nil {
		panic("user/repository/mongo: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) coll() *mongo.Collection {
	return r.db.Collection(CollectionName)
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("user/repository/mongo.%s", method)
}
