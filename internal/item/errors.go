package item

import "errors"

var (
	ErrItemNotFound   = errors.New("item not found")
	ErrRequiredFields = errors.New("name and description are required")
	ErrInvalidPayload = errors.New("invalid payload")
)
