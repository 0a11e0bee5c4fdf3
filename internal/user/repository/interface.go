package repository

import (
	"context"

	"mongo-crud-api/internal/user"
)

type Repository interface {
	UserRepository
}

// UserRepository is the data access surface for users. Absent documents
// come back as a zero User and DeleteUser reports false.
type UserRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (user.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (user.User, error)
	ListUsers(ctx context.Context) ([]user.User, error)
	UpdateUser(ctx context.Context, opt UpdateUserOptions) (user.User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
}
