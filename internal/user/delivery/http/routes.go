package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the user endpoints on rg, e.g. /api/users.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Detail)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}
