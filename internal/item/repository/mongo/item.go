package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mongo-crud-api/internal/item"
	repo "mongo-crud-api/internal/item/repository"
	pkgMongo "mongo-crud-api/pkg/mongo"
)

// CreateItem validates against the item schema, inserts the document and
// returns the created entity with its generated id.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	name, description := opt.Name, opt.Description
	if err := item.Normalize(&name, &description); err != nil {
		return item.Item{}, err
	}

	now := pkgMongo.Now()
	doc := itemDoc{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := r.coll().InsertOne(ctx, doc); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return item.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	return doc.toItem(), nil
}

// GetOneItem retrieves a single Item by ID.
// Returns zero-value Item (ID == "") when not found or when the id is malformed.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	oid, ok := pkgMongo.ParseObjectID(opt.ID)
	if !ok {
		return item.Item{}, nil
	}

	var doc itemDoc
	err := r.coll().FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return item.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return item.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToGet, err)
	}
	return doc.toItem(), nil
}

// ListItems returns every Item, newest first.
func (r *implRepository) ListItems(ctx context.Context) ([]item.Item, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})

	cursor, err := r.coll().Find(ctx, bson.D{}, opts)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}

	var docs []itemDoc
	if err := cursor.All(ctx, &docs); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListItems"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}

	items := make([]item.Item, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.toItem())
	}
	return items, nil
}

// UpdateItem applies the provided fields, refreshes updatedAt and returns the
// updated entity. Returns zero-value Item when the document does not exist.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	oid, ok := pkgMongo.ParseObjectID(opt.ID)
	if !ok {
		return item.Item{}, nil
	}

	if err := item.Normalize(opt.Name, opt.Description); err != nil {
		return item.Item{}, err
	}

	set := bson.D{}
	if opt.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *opt.Name})
	}
	if opt.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *opt.Description})
	}
	set = append(set, bson.E{Key: "updatedAt", Value: pkgMongo.Now()})

	var doc itemDoc
	err := r.coll().FindOneAndUpdate(
		ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return item.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return item.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}
	return doc.toItem(), nil
}

// DeleteItem removes an Item by ID. Returns false when nothing was deleted.
func (r *implRepository) DeleteItem(ctx context.Context, id string) (bool, error) {
	oid, ok := pkgMongo.ParseObjectID(id)
	if !ok {
		return false, nil
	}

	res, err := r.coll().DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return false, fmt.Errorf("%w: %v", repo.ErrFailedToDelete, err)
	}
	return res.DeletedCount > 0, nil
}
