package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
)

// TaskAPI is the slice of the task service the handler needs.
type TaskAPI interface {
	Create(ctx context.Context, ownerID primitive.ObjectID, in model.CreateTaskInput) (*model.Task, error)
	List(ctx context.Context, ownerID primitive.ObjectID, q model.TaskListQuery) (*model.TaskPage, error)
	ListByProject(ctx context.Context, ownerID primitive.ObjectID, projectIDHex string) ([]model.Task, error)
	Get(ctx context.Context, ownerID primitive.ObjectID, idHex string) (*model.Task, error)
	Update(ctx context.Context, ownerID primitive.ObjectID, idHex string, in model.UpdateTaskInput) (*model.Task, error)
	Delete(ctx context.Context, ownerID primitive.ObjectID, idHex string) (string, error)
}

type TaskHandler struct {
	tasks  TaskAPI
	logger *zap.Logger
}

func NewTaskHandler(tasks TaskAPI, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{tasks: tasks, logger: logger}
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req model.CreateTaskInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperr.BadRequest("Invalid request body"))
		return
	}

	t, err := h.tasks.Create(c.Request.Context(), currentUser(c).ID, req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// List serves the filtered, sorted, paginated task listing. Out-of-range
// or unparsable page/limit values fall back to their defaults.
func (h *TaskHandler) List(c *gin.Context) {
	q := model.TaskListQuery{
		Status:  c.Query("status"),
		DueDate: c.Query("dueDate"),
		SortBy:  c.Query("sortBy"),
		Page:    intQuery(c, "page"),
		Limit:   intQuery(c, "limit"),
	}

	page, err := h.tasks.List(c.Request.Context(), currentUser(c).ID, q)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListByProject serves GET /api/projects/:id/tasks.
func (h *TaskHandler) ListByProject(c *gin.Context) {
	tasks, err := h.tasks.ListByProject(c.Request.Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) Get(c *gin.Context) {
	t, err := h.tasks.Get(c.Request.Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TaskHandler) Update(c *gin.Context) {
	var req model.UpdateTaskInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperr.BadRequest("Invalid request body"))
		return
	}

	t, err := h.tasks.Update(c.Request.Context(), currentUser(c).ID, c.Param("id"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := h.tasks.Delete(c.Request.Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
		"id":      id,
	})
}

func intQuery(c *gin.Context, name string) int {
	v := c.Query(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
