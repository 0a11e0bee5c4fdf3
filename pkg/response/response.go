package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "mongo-crud-api/pkg/errors"
)

// NewOKResp returns a success envelope wrapping data.
func NewOKResp(data any) Resp {
	return Resp{
		Success: true,
		Data:    data,
	}
}

// NewErrorResp returns a failure envelope. errValue is a string or a list of strings.
func NewErrorResp(errValue any) Resp {
	return Resp{
		Success: false,
		Error:   errValue,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 JSON with the created entity.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, NewOKResp(data))
}

// List sends 200 JSON with data and its element count.
func List(c *gin.Context, data any, count int) {
	resp := NewOKResp(data)
	resp.Count = &count
	c.JSON(http.StatusOK, resp)
}

// Message sends 200 JSON with a human readable message and optional data.
func Message(c *gin.Context, message string, data any) {
	resp := NewOKResp(data)
	resp.Message = message
	c.JSON(http.StatusOK, resp)
}

// Error sends the failure envelope for err.
// HTTPError and FieldsError carry their own status; anything else is a 500
// with a generic message so internal details never reach the caller.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Code, NewErrorResp(httpErr.Message))
		return
	}

	var fieldsErr *pkgErrors.FieldsError
	if errors.As(err, &fieldsErr) {
		c.JSON(fieldsErr.Code, NewErrorResp(fieldsErr.Fields))
		return
	}

	InternalError(c)
}

// NotFound sends the generic 404 body used for unroutable paths.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, NewErrorResp(NotFoundMessage))
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, NewErrorResp(DefaultErrorMessage))
}
