package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mongo-crud-api/config"
	"mongo-crud-api/pkg/response"
)

const (
	healthStatusOK    = "OK"
	dbConnected       = "connected"
	dbDisconnected    = "disconnected"
	healthPingTimeout = 2 * time.Second
	docsHint          = "See /swagger/index.html for API documentation"
)

type healthResp struct {
	Success     bool              `json:"success"`
	Status      string            `json:"status"`
	Service     string            `json:"service"`
	Timestamp   response.DateTime `json:"timestamp" swaggertype:"string"`
	Database    string            `json:"database"`
	Uptime      float64           `json:"uptime"`
	Environment string            `json:"environment"`
	Version     string            `json:"version"`
}

type infoResp struct {
	Success       bool              `json:"success"`
	Message       string            `json:"message"`
	Service       string            `json:"service"`
	Timestamp     response.DateTime `json:"timestamp" swaggertype:"string"`
	Environment   string            `json:"environment"`
	Version       string            `json:"version"`
	Endpoints     map[string]string `json:"endpoints"`
	Documentation string            `json:"documentation"`
}

// databaseStatus pings the store with a short deadline.
func (srv HTTPServer) databaseStatus(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := srv.pinger.Ping(ctx); err != nil {
		srv.l.Warnf(ctx, "health: database ping failed: %v", err)
		return dbDisconnected
	}
	return dbConnected
}

// healthCheck handles health check requests
// @Summary     Health Check
// @Description Reports service status and database connectivity. Always 200.
// @Tags        Health
// @Produce     json
// @Success     200 {object} healthResp
// @Router      /api/health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, healthResp{
		Success:     true,
		Status:      healthStatusOK,
		Service:     srv.service.Name,
		Timestamp:   response.DateTime(time.Now()),
		Database:    srv.databaseStatus(c.Request.Context()),
		Uptime:      time.Since(srv.startedAt).Seconds(),
		Environment: srv.environment,
		Version:     srv.service.Version,
	})
}

// apiInfo describes the running service and its endpoints.
// @Summary     API info
// @Tags        Health
// @Produce     json
// @Success     200 {object} infoResp
// @Router      / [get]
func (srv HTTPServer) apiInfo(c *gin.Context) {
	c.JSON(http.StatusOK, infoResp{
		Success:       true,
		Message:       fmt.Sprintf("%s is running", srv.service.Name),
		Service:       srv.service.Name,
		Timestamp:     response.DateTime(time.Now()),
		Environment:   srv.environment,
		Version:       srv.service.Version,
		Endpoints:     srv.endpoints(),
		Documentation: docsHint,
	})
}

func (srv HTTPServer) endpoints() map[string]string {
	eps := map[string]string{
		"health": "/api/health",
	}
	if srv.service.Serves(config.ResourceItems) {
		eps["items"] = "/api/items"
		eps["createItem"] = "POST /api/items"
		eps["getItem"] = "GET /api/items/:id"
		eps["updateItem"] = "PUT /api/items/:id"
		eps["deleteItem"] = "DELETE /api/items/:id"
	}
	if srv.service.Serves(config.ResourceUsers) {
		eps["users"] = "/api/users"
		eps["createUser"] = "POST /api/users"
		eps["getUser"] = "GET /api/users/:id"
		eps["updateUser"] = "PUT /api/users/:id"
		eps["deleteUser"] = "DELETE /api/users/:id"
	}
	return eps
}

// readyCheck answers 200 only while the database is reachable.
// @Summary     Readiness Check
// @Tags        Health
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     503 {object} response.Resp
// @Router      /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.databaseStatus(c.Request.Context()) != dbConnected {
		c.JSON(http.StatusServiceUnavailable, response.NewErrorResp("Database unavailable"))
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"version": srv.service.Version,
		"service": srv.service.Name,
	})
}

// liveCheck handles liveness check requests
// @Summary     Liveness Check
// @Tags        Health
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": srv.service.Version,
		"service": srv.service.Name,
	})
}
