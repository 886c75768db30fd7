package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"taskboard/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testLogger = zap.NewNop()

// testUser is the authenticated user the route middleware attaches.
var testUser = model.PublicUser{
	ID:    primitive.NewObjectID(),
	Name:  "Ada",
	Email: "ada@example.com",
}

func authedRouter() *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(ContextUserKey, testUser)
	})
	return r
}

func perform(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func performRaw(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// Hand-written mocks. Unset function fields panic on use so a test only
// wires the methods it expects to be called.

type mockAuthAPI struct {
	registerFn func(ctx context.Context, name, email, password string) (*model.User, string, error)
	loginFn    func(ctx context.Context, email, password string) (*model.User, string, error)
}

func (m *mockAuthAPI) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	return m.registerFn(ctx, name, email, password)
}

func (m *mockAuthAPI) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	return m.loginFn(ctx, email, password)
}

type mockProjectAPI struct {
	createFn func(ctx context.Context, ownerID primitive.ObjectID, name, description string) (*model.Project, error)
	listFn   func(ctx context.Context, ownerID primitive.ObjectID) ([]model.Project, error)
	getFn    func(ctx context.Context, ownerID primitive.ObjectID, idHex string) (*model.Project, error)
	updateFn func(ctx context.Context, ownerID primitive.ObjectID, idHex string, in model.UpdateProjectInput) (*model.Project, error)
	deleteFn func(ctx context.Context, ownerID primitive.ObjectID, idHex string) (string, error)
}

func (m *mockProjectAPI) Create(ctx context.Context, ownerID primitive.ObjectID, name, description string) (*model.Project, error) {
	return m.createFn(ctx, ownerID, name, description)
}

func (m *mockProjectAPI) List(ctx context.Context, ownerID primitive.ObjectID) ([]model.Project, error) {
	return m.listFn(ctx, ownerID)
}

func (m *mockProjectAPI) Get(ctx context.Context, ownerID primitive.ObjectID, idHex string) (*model.Project, error) {
	return m.getFn(ctx, ownerID, idHex)
}

func (m *mockProjectAPI) Update(ctx context.Context, ownerID primitive.ObjectID, idHex string, in model.UpdateProjectInput) (*model.Project, error) {
	return m.updateFn(ctx, ownerID, idHex, in)
}

func (m *mockProjectAPI) Delete(ctx context.Context, ownerID primitive.ObjectID, idHex string) (string, error) {
	return m.deleteFn(ctx, ownerID, idHex)
}

type mockTaskAPI struct {
	createFn        func(ctx context.Context, ownerID primitive.ObjectID, in model.CreateTaskInput) (*model.Task, error)
	listFn          func(ctx context.Context, ownerID primitive.ObjectID, q model.TaskListQuery) (*model.TaskPage, error)
	listByProjectFn func(ctx context.Context, ownerID primitive.ObjectID, projectIDHex string) ([]model.Task, error)
	getFn           func(ctx context.Context, ownerID primitive.ObjectID, idHex string) (*model.Task, error)
	updateFn        func(ctx context.Context, ownerID primitive.ObjectID, idHex string, in model.UpdateTaskInput) (*model.Task, error)
	deleteFn        func(ctx context.Context, ownerID primitive.ObjectID, idHex string) (string, error)
}

func (m *mockTaskAPI) Create(ctx context.Context, ownerID primitive.ObjectID, in model.CreateTaskInput) (*model.Task, error) {
	return m.createFn(ctx, ownerID, in)
}

func (m *mockTaskAPI) List(ctx context.Context, ownerID primitive.ObjectID, q model.TaskListQuery) (*model.TaskPage, error) {
	return m.listFn(ctx, ownerID, q)
}

func (m *mockTaskAPI) ListByProject(ctx context.Context, ownerID primitive.ObjectID, projectIDHex string) ([]model.Task, error) {
	return m.listByProjectFn(ctx, ownerID, projectIDHex)
}

func (m *mockTaskAPI) Get(ctx context.Context, ownerID primitive.ObjectID, idHex string) (*model.Task, error) {
	return m.getFn(ctx, ownerID, idHex)
}

func (m *mockTaskAPI) Update(ctx context.Context, ownerID primitive.ObjectID, idHex string, in model.UpdateTaskInput) (*model.Task, error) {
	return m.updateFn(ctx, ownerID, idHex, in)
}

func (m *mockTaskAPI) Delete(ctx context.Context, ownerID primitive.ObjectID, idHex string) (string, error) {
	return m.deleteFn(ctx, ownerID, idHex)
}
