package middleware

import (
	"io"

	"github.com/gin-gonic/gin"

	"mongo-crud-api/pkg/response"
)

// Recovery turns a handler panic into the generic 500 envelope.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		m.l.Errorf(c.Request.Context(), "panic recovered: %v", recovered)
		response.InternalError(c)
		c.Abort()
	})
}
