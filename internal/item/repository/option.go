package repository

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	Name        string
	Description string
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
type GetOneItemOptions struct {
	ID string
}

// UpdateItemOptions holds parameters for updating an existing Item.
// Nil fields are left untouched.
type UpdateItemOptions struct {
	ID          string
	Name        *string
	Description *string
}
