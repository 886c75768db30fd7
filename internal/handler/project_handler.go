package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
)

// ProjectAPI is the slice of the project service the handler needs.
type ProjectAPI interface {
	Create(ctx context.Context, ownerID primitive.ObjectID, name, description string) (*model.Project, error)
	List(ctx context.Context, ownerID primitive.ObjectID) ([]model.Project, error)
	Get(ctx context.Context, ownerID primitive.ObjectID, idHex string) (*model.Project, error)
	Update(ctx context.Context, ownerID primitive.ObjectID, idHex string, in model.UpdateProjectInput) (*model.Project, error)
	Delete(ctx context.Context, ownerID primitive.ObjectID, idHex string) (string, error)
}

type ProjectHandler struct {
	projects ProjectAPI
	logger   *zap.Logger
}

func NewProjectHandler(projects ProjectAPI, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{projects: projects, logger: logger}
}

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperr.BadRequest("Invalid request body"))
		return
	}

	p, err := h.projects.Create(c.Request.Context(), currentUser(c).ID, req.Name, req.Description)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.projects.Get(c.Request.Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var req model.UpdateProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperr.BadRequest("Invalid request body"))
		return
	}

	p, err := h.projects.Update(c.Request.Context(), currentUser(c).ID, c.Param("id"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := h.projects.Delete(c.Request.Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Project and task related deleted",
		"id":      id,
	})
}
