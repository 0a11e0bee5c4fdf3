package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	itemHTTP "mongo-crud-api/internal/item/delivery/http"
	itemRepo "mongo-crud-api/internal/item/repository/mongo"
	itemUC "mongo-crud-api/internal/item/usecase"
)

// setupItemDomain wires repository, usecase and handler for /api/items.
func (srv HTTPServer) setupItemDomain(ctx context.Context, api *gin.RouterGroup) {
	// 1. Repository
	repo := itemRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := itemUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := itemHTTP.New(srv.l, uc)

	// 4. Routes
	itemHTTP.RegisterRoutes(api.Group("/items"), h)

	srv.l.Infof(ctx, "Item domain registered at /api/items")
}
