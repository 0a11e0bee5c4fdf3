package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"mongo-crud-api/internal/user"
)

func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		// Empty body: handled as missing fields.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return user.ErrInvalidPayload
	}
	return nil
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, nil
}
