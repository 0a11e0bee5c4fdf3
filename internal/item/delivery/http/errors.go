package http

import (
	"context"
	"errors"
	"net/http"

	"mongo-crud-api/internal/item"
	pkgErrors "mongo-crud-api/pkg/errors"
	"mongo-crud-api/pkg/response"
)

const (
	msgItemNotFound   = "Item not found"
	msgRequiredFields = "Name and description are required"
	msgInvalidPayload = response.InvalidRequestMessage
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything outside the known set is logged and left for response.Error to
// turn into a generic 500.
func (h *handler) mapError(ctx context.Context, op string, err error) error {
	var vErr *pkgErrors.ValidationError

	switch {
	case errors.Is(err, item.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, msgItemNotFound)
	case errors.Is(err, item.ErrRequiredFields):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, msgRequiredFields)
	case errors.Is(err, item.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, msgInvalidPayload)
	case errors.As(err, &vErr):
		return pkgErrors.NewFieldsError(http.StatusBadRequest, vErr.Fields)
	default:
		h.l.Errorf(ctx, "%s: %v", op, err)
		return err
	}
}
