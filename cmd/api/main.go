package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mongo-crud-api/config"
	_ "mongo-crud-api/docs" // Swagger docs
	"mongo-crud-api/internal/httpserver"
	"mongo-crud-api/pkg/log"
	pkgMongo "mongo-crud-api/pkg/mongo"
)

const closeTimeout = 5 * time.Second

// @title       Backend API
// @description CRUD REST API for items and users backed by MongoDB.
// @version     1.0.0
// @host        localhost:3000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof(ctx, "Starting %s %s...", cfg.Service.Name, cfg.Service.Version)
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Resources: %v", cfg.Service.Resources)

	// 3. MongoDB
	mongoClient := pkgMongo.New(pkgMongo.Config{
		URI:            cfg.Mongo.URI,
		Host:           cfg.Mongo.Host,
		Port:           cfg.Mongo.Port,
		User:           cfg.Mongo.User,
		Password:       cfg.Mongo.Password,
		Database:       cfg.Mongo.Database,
		AuthSource:     cfg.Mongo.AuthSource,
		ConnectTimeout: cfg.Mongo.ConnectTimeout,
	})

	db, err := mongoClient.Connect(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to MongoDB: %v", err)
	}
	logger.Infof(ctx, "MongoDB connected, database: %s", db.Name())

	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := mongoClient.Close(closeCtx); err != nil {
			logger.Errorf(closeCtx, "Failed to close MongoDB connection: %v", err)
			return
		}
		logger.Info(closeCtx, "MongoDB connection closed")
	}()

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ReadTimeout:     cfg.HTTPServer.ReadTimeout,
		WriteTimeout:    cfg.HTTPServer.WriteTimeout,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		Service:         cfg.Service,
		Database:        db,
		Pinger:          mongoClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
