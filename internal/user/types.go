package user

import "time"

// User is the account entity served by the users API.
type User struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateUserInput struct {
	Name  string
	Email string
}

// UpdateUserInput carries a partial update; nil fields keep their stored value.
type UpdateUserInput struct {
	ID    string
	Name  *string
	Email *string
}

type CreateUserOutput struct {
	User User
}

type ListUsersOutput struct {
	Users []User
	Count int
}

type DetailUserOutput struct {
	User User
}

type UpdateUserOutput struct {
	User User
}
