package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mongo-crud-api/internal/user"
	repo "mongo-crud-api/internal/user/repository"
	pkgMongo "mongo-crud-api/pkg/mongo"
)

func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (user.User, error) {
	name, email := opt.Name, opt.Email
	if err := user.Normalize(&name, &email); err != nil {
		return user.User{}, err
	}

	now := pkgMongo.Now()
	doc := userDoc{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.coll().InsertOne(ctx, doc); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return user.User{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	return doc.toUser(), nil
}

// GetOneUser returns a zero User when the id is malformed or unknown.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	oid, ok := pkgMongo.ParseObjectID(opt.ID)
	if !ok {
		return user.User{}, nil
	}

	var doc userDoc
	err := r.coll().FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return user.User{}, fmt.Errorf("%w: %v", repo.ErrFailedToGet, err)
	}
	return doc.toUser(), nil
}

// ListUsers returns users in insertion order.
func (r *implRepository) ListUsers(ctx context.Context) ([]user.User, error) {
	cursor, err := r.coll().Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}

	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListUsers"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}

	users := make([]user.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.toUser())
	}
	return users, nil
}

// UpdateUser sets the provided fields and returns the document after the
// update. A zero User means nothing matched.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (user.User, error) {
	oid, ok := pkgMongo.ParseObjectID(opt.ID)
	if !ok {
		return user.User{}, nil
	}

	if err := user.Normalize(opt.Name, opt.Email); err != nil {
		return user.User{}, err
	}

	set := bson.D{}
	if opt.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *opt.Name})
	}
	if opt.Email != nil {
		set = append(set, bson.E{Key: "email", Value: *opt.Email})
	}
	set = append(set, bson.E{Key: "updatedAt", Value: pkgMongo.Now()})

	var doc userDoc
	err := r.coll().FindOneAndUpdate(
		ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return user.User{}, fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}
	return doc.toUser(), nil
}

func (r *implRepository) DeleteUser(ctx context.Context, id string) (bool, error) {
	oid, ok := pkgMongo.ParseObjectID(id)
	if !ok {
		return false, nil
	}

	res, err := r.coll().DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteUser"), err)
		return false, fmt.Errorf("%w: %v", repo.ErrFailedToDelete, err)
	}
	return res.DeletedCount > 0, nil
}
