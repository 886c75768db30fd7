package handler

import (
	"context"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
)

func TestTaskCreateHandler(t *testing.T) {
	var got model.CreateTaskInput
	tasks := &mockTaskAPI{
		createFn: func(_ context.Context, ownerID primitive.ObjectID, in model.CreateTaskInput) (*model.Task, error) {
			if ownerID != testUser.ID {
				t.Errorf("ownerID = %v", ownerID)
			}
			got = in
			return &model.Task{ID: primitive.NewObjectID(), Title: in.Title, Status: model.StatusPending}, nil
		},
	}
	h := NewTaskHandler(tasks, testLogger)
	r := authedRouter()
	r.POST("/api/tasks", h.Create)

	w := performRaw(t, r, http.MethodPost, "/api/tasks",
		`{"title":"Write docs","projectId":"64f1b2c3d4e5f6a7b8c9d0e1","dueDate":"2026-04-01"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if got.Title != "Write docs" || got.ProjectID != "64f1b2c3d4e5f6a7b8c9d0e1" || got.DueDate != "2026-04-01" {
		t.Errorf("input = %+v", got)
	}
}

func TestTaskCreateHandlerRejectedProject(t *testing.T) {
	tasks := &mockTaskAPI{
		createFn: func(context.Context, primitive.ObjectID, model.CreateTaskInput) (*model.Task, error) {
			return nil, apperr.NotFound("Project not found or does not belong to user")
		},
	}
	h := NewTaskHandler(tasks, testLogger)
	r := authedRouter()
	r.POST("/api/tasks", h.Create)

	w := performRaw(t, r, http.MethodPost, "/api/tasks",
		`{"title":"abc","projectId":"64f1b2c3d4e5f6a7b8c9d0e1"}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if decodeBody(t, w)["message"] != "Project not found or does not belong to user" {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestTaskListHandlerQueryParsing(t *testing.T) {
	var got model.TaskListQuery
	tasks := &mockTaskAPI{
		listFn: func(_ context.Context, _ primitive.ObjectID, q model.TaskListQuery) (*model.TaskPage, error) {
			got = q
			return &model.TaskPage{CurrentPage: q.Page, Tasks: []model.Task{}}, nil
		},
	}
	h := NewTaskHandler(tasks, testLogger)
	r := authedRouter()
	r.GET("/api/tasks", h.List)

	w := perform(t, r, http.MethodGet,
		"/api/tasks?status=pending&dueDate=2026-04-01&sortBy=dueDate:asc&page=2&limit=5", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	want := model.TaskListQuery{
		Status: "pending", DueDate: "2026-04-01", SortBy: "dueDate:asc", Page: 2, Limit: 5,
	}
	if got != want {
		t.Errorf("query = %+v, want %+v", got, want)
	}

	// unparsable page/limit pass through as zero for the service defaults
	w = perform(t, r, http.MethodGet, "/api/tasks?page=abc&limit=-4", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got.Page != 0 || got.Limit != 0 {
		t.Errorf("malformed paging = %+v", got)
	}
}

func TestTaskListByProjectHandler(t *testing.T) {
	tasks := &mockTaskAPI{
		listByProjectFn: func(_ context.Context, _ primitive.ObjectID, projectIDHex string) ([]model.Task, error) {
			if projectIDHex != "64f1b2c3d4e5f6a7b8c9d0e1" {
				t.Errorf("projectID = %q", projectIDHex)
			}
			return []model.Task{{Title: "one"}}, nil
		},
	}
	h := NewTaskHandler(tasks, testLogger)
	r := authedRouter()
	r.GET("/api/projects/:id/tasks", h.ListByProject)

	w := perform(t, r, http.MethodGet, "/api/projects/64f1b2c3d4e5f6a7b8c9d0e1/tasks", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestTaskUpdateHandlerPassesPointers(t *testing.T) {
	var got model.UpdateTaskInput
	tasks := &mockTaskAPI{
		updateFn: func(_ context.Context, _ primitive.ObjectID, _ string, in model.UpdateTaskInput) (*model.Task, error) {
			got = in
			return &model.Task{Title: "x"}, nil
		},
	}
	h := NewTaskHandler(tasks, testLogger)
	r := authedRouter()
	r.PUT("/api/tasks/:id", h.Update)

	// description explicit empty, status present, title omitted
	w := performRaw(t, r, http.MethodPut, "/api/tasks/abc",
		`{"description":"","status":"completed"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got.Title != nil {
		t.Error("omitted title decoded as present")
	}
	if got.Description == nil || *got.Description != "" {
		t.Error("explicit empty description lost")
	}
	if got.Status == nil || *got.Status != "completed" {
		t.Error("status lost")
	}
}

func TestTaskUpdateHandlerUnauthorized(t *testing.T) {
	tasks := &mockTaskAPI{
		updateFn: func(context.Context, primitive.ObjectID, string, model.UpdateTaskInput) (*model.Task, error) {
			return nil, apperr.Unauthorized("User not authorized to update this task")
		},
	}
	h := NewTaskHandler(tasks, testLogger)
	r := authedRouter()
	r.PUT("/api/tasks/:id", h.Update)

	w := performRaw(t, r, http.MethodPut, "/api/tasks/abc", `{"title":"new"}`)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
	if decodeBody(t, w)["message"] != "User not authorized to update this task" {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestTaskDeleteHandler(t *testing.T) {
	id := primitive.NewObjectID().Hex()
	tasks := &mockTaskAPI{
		deleteFn: func(_ context.Context, _ primitive.ObjectID, idHex string) (string, error) {
			return idHex, nil
		},
	}
	h := NewTaskHandler(tasks, testLogger)
	r := authedRouter()
	r.DELETE("/api/tasks/:id", h.Delete)

	w := perform(t, r, http.MethodDelete, "/api/tasks/"+id, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["message"] != "Task deleted successfully" {
		t.Errorf("message = %v", body["message"])
	}
	if body["id"] != id {
		t.Errorf("id = %v", body["id"])
	}
}
