package repository

type CreateUserOptions struct {
	Name  string
	Email string
}

type GetOneUserOptions struct {
	ID string
}

// UpdateUserOptions leaves nil fields untouched.
type UpdateUserOptions struct {
	ID    string
	Name  *string
	Email *string
}
