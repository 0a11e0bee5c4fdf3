package http

import (
	"context"
	"errors"
	"net/http"

	"mongo-crud-api/internal/user"
	pkgErrors "mongo-crud-api/pkg/errors"
	"mongo-crud-api/pkg/response"
)

const (
	msgUserNotFound   = "User not found"
	msgRequiredFields = "Name and email are required"
	msgInvalidPayload = response.InvalidRequestMessage

	msgUpdated = "User updated successfully"
	msgDeleted = "User deleted successfully"
)

func (h *handler) mapError(ctx context.Context, op string, err error) error {
	var vErr *pkgErrors.ValidationError

	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, msgUserNotFound)
	case errors.Is(err, user.ErrRequiredFields):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, msgRequiredFields)
	case errors.Is(err, user.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, msgInvalidPayload)
	case errors.As(err, &vErr):
		return pkgErrors.NewFieldsError(http.StatusBadRequest, vErr.Fields)
	default:
		h.l.Errorf(ctx, "%s: %v", op, err)
		return err
	}
}
