package httpserver

import (
	"context"
	"fmt"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"mongo-crud-api/config"
	"mongo-crud-api/internal/middleware"
	"mongo-crud-api/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.allowedOrigins)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	srv.gin.NoRoute(response.NotFound)
	srv.gin.NoMethod(response.NotFound)

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(
		mw.RequestID(),
		mw.AccessLog(),
		mw.Recovery(),
		mw.CORS(),
	)

	srv.l.Infof(context.Background(), "CORS mode: %s, origins: %v", srv.environment, srv.allowedOrigins)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.apiInfo)
	srv.gin.GET("/api/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the enabled resource families under /api.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	for _, r := range srv.service.Resources {
		switch r {
		case config.ResourceItems:
			srv.setupItemDomain(ctx, api)
		case config.ResourceUsers:
			srv.setupUserDomain(ctx, api)
		default:
			return fmt.Errorf("unknown resource %q", r)
		}
	}

	return nil
}
