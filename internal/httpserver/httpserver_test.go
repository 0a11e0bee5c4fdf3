package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mongo-crud-api/config"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(ctx context.Context) error { return p.err }

// lazyDB returns a database handle whose client never dials until used.
func lazyDB(t *testing.T) *mongo.Database {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:1"))
	if err != nil {
		t.Fatalf("mongo.Connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client.Database("test")
}

func newTestServer(t *testing.T, pingErr error, resources ...string) *gin.Engine {
	t.Helper()
	svc := config.ServiceConfig{Name: "Backend API", Version: "1.0.0", Resources: resources}
	srv, err := New(&mockLogger{}, Config{
		Port:        3000,
		Mode:        gin.TestMode,
		Environment: "test",
		Service:     svc,
		Database:    lazyDB(t),
		Pinger:      fakePinger{err: pingErr},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv.Handler()
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name    string
		pingErr error
		wantDB  string
	}{
		{"Connected", nil, "connected"},
		{"Disconnected", errors.New("server selection timeout"), "disconnected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(newTestServer(t, tt.pingErr, "items"), "/api/health")
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}

			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if body["success"] != true || body["status"] != "OK" || body["database"] != tt.wantDB {
				t.Errorf("unexpected body: %v", body)
			}
			if body["environment"] != "test" || body["version"] != "1.0.0" || body["service"] != "Backend API" {
				t.Errorf("unexpected identity: %v", body)
			}
			if _, ok := body["uptime"].(float64); !ok {
				t.Errorf("uptime must be a number: %v", body["uptime"])
			}
		})
	}
}

func TestReadyCheck(t *testing.T) {
	if w := get(newTestServer(t, nil), "/ready"); w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if w := get(newTestServer(t, errors.New("down")), "/ready"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
	if w := get(newTestServer(t, errors.New("down")), "/live"); w.Code != http.StatusOK {
		t.Errorf("liveness must not depend on the database, got %d", w.Code)
	}
}

func TestAPIInfoListsEnabledResources(t *testing.T) {
	w := get(newTestServer(t, nil, "users"), "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body infoResp
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Endpoints["users"] != "/api/users" || body.Endpoints["health"] != "/api/health" {
		t.Errorf("unexpected endpoints: %v", body.Endpoints)
	}
	if _, ok := body.Endpoints["items"]; ok {
		t.Errorf("items must not be listed when disabled: %v", body.Endpoints)
	}
}

func TestBothResourcesRouted(t *testing.T) {
	engine := newTestServer(t, nil, config.ResourceItems, config.ResourceUsers)

	var body infoResp
	if err := json.Unmarshal(get(engine, "/").Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, key := range []string{"items", "createItem", "users", "deleteUser"} {
		if _, ok := body.Endpoints[key]; !ok {
			t.Errorf("expected %q in endpoints: %v", key, body.Endpoints)
		}
	}

	// Unknown ids reach the handlers, so both groups are mounted.
	for _, path := range []string{"/api/items/not-an-id", "/api/users/not-an-id"} {
		w := get(engine, path)
		if w.Code != http.StatusNotFound || w.Body.String() == `{"success":false,"error":"Not Found"}` {
			t.Errorf("%s: expected a domain 404, got %d %s", path, w.Code, w.Body.String())
		}
	}
}

func TestUnroutable(t *testing.T) {
	engine := newTestServer(t, nil, "items")

	for _, path := range []string{"/nope", "/api/users", "/api/items/a/b"} {
		w := get(engine, path)
		if w.Code != http.StatusNotFound || w.Body.String() != `{"success":false,"error":"Not Found"}` {
			t.Errorf("%s: got %d %s", path, w.Code, w.Body.String())
		}
	}
}

func TestRequestIDHeader(t *testing.T) {
	w := get(newTestServer(t, nil), "/live")
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID on every response")
	}
}

func TestNewValidation(t *testing.T) {
	base := Config{Port: 3000, Mode: gin.TestMode, Pinger: fakePinger{}}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"Missing port", func(c *Config) { c.Port = 0 }},
		{"Missing mode", func(c *Config) { c.Mode = "" }},
		{"Missing pinger", func(c *Config) { c.Pinger = nil }},
		{"Resources without database", func(c *Config) { c.Service.Resources = []string{"items"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			if _, err := New(&mockLogger{}, cfg); err == nil {
				t.Error("expected error")
			}
		})
	}

	t.Run("Unknown resource", func(t *testing.T) {
		cfg := base
		cfg.Service.Resources = []string{"orders"}
		cfg.Database = lazyDB(t)
		if _, err := New(&mockLogger{}, cfg); err == nil {
			t.Error("expected error")
		}
	})
}
