package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mongo-crud-api/internal/item"
	itemHTTP "mongo-crud-api/internal/item/delivery/http"
	"mongo-crud-api/internal/item/repository"
	"mongo-crud-api/internal/item/usecase"
	pkgMongo "mongo-crud-api/pkg/mongo"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

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

// memRepo is an in-memory repository.Repository that applies the same schema
// rules as the MongoDB implementation.
type memRepo struct {
	mu    sync.Mutex
	items map[string]item.Item
	fail  error
}

func newMemRepo() *memRepo {
	return &memRepo{items: map[string]item.Item{}}
}

func (m *memRepo) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (item.Item, error) {
	if m.fail != nil {
		return item.Item{}, m.fail
	}
	name, desc := opt.Name, opt.Description
	if err := item.Normalize(&name, &desc); err != nil {
		return item.Item{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := pkgMongo.Now()
	it := item.Item{ID: primitive.NewObjectID().Hex(), Name: name, Description: desc, CreatedAt: now, UpdatedAt: now}
	m.items[it.ID] = it
	return it, nil
}

func (m *memRepo) GetOneItem(ctx context.Context, opt repository.GetOneItemOptions) (item.Item, error) {
	if m.fail != nil {
		return item.Item{}, m.fail
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[opt.ID], nil
}

func (m *memRepo) ListItems(ctx context.Context) ([]item.Item, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]item.Item, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memRepo) UpdateItem(ctx context.Context, opt repository.UpdateItemOptions) (item.Item, error) {
	if err := item.Normalize(opt.Name, opt.Description); err != nil {
		return item.Item{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[opt.ID]
	if !ok {
		return item.Item{}, nil
	}
	if opt.Name != nil {
		it.Name = *opt.Name
	}
	if opt.Description != nil {
		it.Description = *opt.Description
	}
	it.UpdatedAt = pkgMongo.Now()
	m.items[it.ID] = it
	return it, nil
}

func (m *memRepo) DeleteItem(ctx context.Context, id string) (bool, error) {
	if m.fail != nil {
		return false, m.fail
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

// ── Test Helpers ───────────────────────────────────────────────────────────

type envelope struct {
	Success bool            `json:"success"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

type itemBody struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newEngine(repo repository.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := itemHTTP.New(&mockLogger{}, usecase.New(repo, &mockLogger{}))
	itemHTTP.RegisterRoutes(engine.Group("/api/items"), h)
	return engine
}

func do(t *testing.T, engine *gin.Engine, method, path, body string) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: invalid JSON body %q: %v", method, path, w.Body.String(), err)
	}
	return w.Code, env
}

func decodeItem(t *testing.T, raw json.RawMessage) itemBody {
	t.Helper()
	var it itemBody
	if err := json.Unmarshal(raw, &it); err != nil {
		t.Fatalf("decode item: %v", err)
	}
	return it
}

func errorString(raw json.RawMessage) string {
	var s string
	_ = json.Unmarshal(raw, &s)
	return s
}

func errorList(raw json.RawMessage) []string {
	var l []string
	_ = json.Unmarshal(raw, &l)
	return l
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestItemLifecycle(t *testing.T) {
	engine := newEngine(newMemRepo())

	code, env := do(t, engine, http.MethodPost, "/api/items", `{"name":"Widget","description":"A small widget"}`)
	if code != http.StatusCreated || !env.Success {
		t.Fatalf("create: expected 201 success, got %d %+v", code, env)
	}
	created := decodeItem(t, env.Data)
	if created.Name != "Widget" || created.ID == "" {
		t.Fatalf("create: unexpected data %+v", created)
	}

	code, env = do(t, engine, http.MethodGet, "/api/items", "")
	if code != http.StatusOK || env.Count == nil || *env.Count != 1 {
		t.Fatalf("list: expected count 1, got %d %+v", code, env)
	}

	code, env = do(t, engine, http.MethodGet, "/api/items/"+created.ID, "")
	if code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", code)
	}
	got := decodeItem(t, env.Data)
	if got.Name != "Widget" || got.Description != "A small widget" {
		t.Errorf("get: unexpected data %+v", got)
	}

	code, env = do(t, engine, http.MethodPut, "/api/items/"+created.ID, `{"name":"Widget v2"}`)
	if code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", code)
	}
	updated := decodeItem(t, env.Data)
	if updated.Name != "Widget v2" || updated.Description != "A small widget" {
		t.Errorf("update: unexpected data %+v", updated)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) || updated.UpdatedAt.Before(updated.CreatedAt) {
		t.Errorf("update: updatedAt went backwards: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("update: createdAt changed: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}

	code, env = do(t, engine, http.MethodDelete, "/api/items/"+created.ID, "")
	if code != http.StatusOK || string(env.Data) != "{}" {
		t.Fatalf("delete: expected 200 with data {}, got %d %s", code, env.Data)
	}

	code, _ = do(t, engine, http.MethodGet, "/api/items/"+created.ID, "")
	if code != http.StatusNotFound {
		t.Errorf("get after delete: expected 404, got %d", code)
	}

	code, env = do(t, engine, http.MethodGet, "/api/items", "")
	if code != http.StatusOK || env.Count == nil || *env.Count != 0 || string(env.Data) != "[]" {
		t.Errorf("list after delete: expected empty list, got %d %+v", code, env)
	}
}

func TestCreateValidation(t *testing.T) {
	repo := newMemRepo()
	engine := newEngine(repo)

	for _, body := range []string{
		"",
		`{}`,
		`{"description":"A small widget"}`,
		`{"name":"","description":"A small widget"}`,
		`{"name":"   ","description":"A small widget"}`,
		`{"name":"Widget"}`,
	} {
		code, env := do(t, engine, http.MethodPost, "/api/items", body)
		if code != http.StatusBadRequest || env.Success {
			t.Errorf("body %q: expected 400, got %d", body, code)
		}
		if got := errorString(env.Error); got != "Name and description are required" {
			t.Errorf("body %q: unexpected error %q", body, got)
		}
	}

	code, env := do(t, engine, http.MethodPost, "/api/items", `{"name":`)
	if code != http.StatusBadRequest || errorString(env.Error) != "Invalid request body" {
		t.Errorf("malformed JSON: expected 400 invalid body, got %d %s", code, env.Error)
	}

	longName := strings.Repeat("n", item.NameMaxLength+1)
	longDesc := strings.Repeat("d", item.DescriptionMaxLength+1)
	code, env = do(t, engine, http.MethodPost, "/api/items", `{"name":"`+longName+`","description":"`+longDesc+`"}`)
	if code != http.StatusBadRequest {
		t.Fatalf("too long: expected 400, got %d", code)
	}
	if list := errorList(env.Error); len(list) != 2 || list[0] != item.MsgNameTooLong || list[1] != item.MsgDescriptionTooLong {
		t.Errorf("too long: unexpected error list %s", env.Error)
	}

	if len(repo.items) != 0 {
		t.Errorf("rejected creates must not persist anything, found %d", len(repo.items))
	}
}

func TestNotFoundIsUniform(t *testing.T) {
	engine := newEngine(newMemRepo())

	for _, id := range []string{primitive.NewObjectID().Hex(), "not-a-valid-id", "123"} {
		for i := 0; i < 2; i++ {
			for _, tc := range []struct{ method, body string }{
				{http.MethodGet, ""},
				{http.MethodPut, `{"name":"x"}`},
				{http.MethodDelete, ""},
			} {
				code, env := do(t, engine, tc.method, "/api/items/"+id, tc.body)
				if code != http.StatusNotFound || errorString(env.Error) != "Item not found" {
					t.Errorf("%s %s: expected 404 Item not found, got %d %s", tc.method, id, code, env.Error)
				}
			}
		}
	}
}

func TestUpdateValidation(t *testing.T) {
	engine := newEngine(newMemRepo())

	_, env := do(t, engine, http.MethodPost, "/api/items", `{"name":"Widget","description":"A small widget"}`)
	id := decodeItem(t, env.Data).ID

	code, env := do(t, engine, http.MethodPut, "/api/items/"+id, `{"name":""}`)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if list := errorList(env.Error); len(list) != 1 || list[0] != item.MsgNameRequired {
		t.Errorf("unexpected error list %s", env.Error)
	}

	code, env = do(t, engine, http.MethodPut, "/api/items/"+id, "")
	if code != http.StatusOK {
		t.Fatalf("empty update: expected 200, got %d", code)
	}
	if got := decodeItem(t, env.Data); got.Name != "Widget" || got.Description != "A small widget" {
		t.Errorf("empty update changed fields: %+v", got)
	}
}

func TestInfrastructureErrorsAreHidden(t *testing.T) {
	repo := newMemRepo()
	repo.fail = errors.New("server selection error: 10.0.0.5:27017 connection refused")
	engine := newEngine(repo)

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/api/items", ""},
		{http.MethodPost, "/api/items", `{"name":"Widget","description":"A small widget"}`},
		{http.MethodGet, "/api/items/" + primitive.NewObjectID().Hex(), ""},
		{http.MethodDelete, "/api/items/" + primitive.NewObjectID().Hex(), ""},
	} {
		code, env := do(t, engine, tc.method, tc.path, tc.body)
		if code != http.StatusInternalServerError {
			t.Errorf("%s %s: expected 500, got %d", tc.method, tc.path, code)
		}
		if got := errorString(env.Error); got != "Server Error" {
			t.Errorf("%s %s: leaked error %q", tc.method, tc.path, got)
		}
	}
}

func TestListOrderNewestFirst(t *testing.T) {
	engine := newEngine(newMemRepo())

	do(t, engine, http.MethodPost, "/api/items", `{"name":"first","description":"d"}`)
	time.Sleep(2 * time.Millisecond)
	do(t, engine, http.MethodPost, "/api/items", `{"name":"second","description":"d"}`)

	_, env := do(t, engine, http.MethodGet, "/api/items", "")
	var list []itemBody
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 2 || list[0].Name != "second" || list[1].Name != "first" {
		t.Errorf("expected newest first, got %+v", list)
	}
}
