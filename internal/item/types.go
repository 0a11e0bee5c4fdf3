package item

import "time"

// --- Item Domain Model ---

// Item is the core domain entity managed by this module.
type Item struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	Name        string
	Description string
}

// UpdateItemInput carries a partial update; nil fields keep their stored value.
type UpdateItemInput struct {
	ID          string
	Name        *string
	Description *string
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}

type ListItemsOutput struct {
	Items []Item
	Count int
}

type DetailItemOutput struct {
	Item Item
}

type UpdateItemOutput struct {
	Item Item
}
