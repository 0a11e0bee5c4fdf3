package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	userHTTP "mongo-crud-api/internal/user/delivery/http"
	userRepo "mongo-crud-api/internal/user/repository/mongo"
	userUC "mongo-crud-api/internal/user/usecase"
)

func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup) {
	repo := userRepo.New(srv.db, srv.l)
	uc := userUC.New(repo, srv.l)
	h := userHTTP.New(srv.l, uc)
	userHTTP.RegisterRoutes(api.Group("/users"), h)

	srv.l.Infof(ctx, "User domain registered at /api/users")
}
