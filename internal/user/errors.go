package user

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrRequiredFields = errors.New("name and email are required")
	ErrInvalidPayload = errors.New("invalid payload")
)
