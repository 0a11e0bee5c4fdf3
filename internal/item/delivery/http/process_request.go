package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"mongo-crud-api/internal/item"
)

// bindJSON decodes the body into req. An empty body leaves req untouched.
func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return item.ErrInvalidPayload
	}
	return nil
}

// processCreateReq binds and validates the create item request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds the update item request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, req.validate()
}
