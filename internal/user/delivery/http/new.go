package http

import (
	"github.com/gin-gonic/gin"

	"mongo-crud-api/internal/user"
	"mongo-crud-api/pkg/log"
)

type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc user.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the user domain.
func New(l log.Logger, uc user.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
