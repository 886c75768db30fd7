package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"taskboard/internal/apperr"
	"taskboard/internal/metrics"
	"taskboard/internal/model"
)

type ProjectService struct {
	projectRepo ProjectRepo
	taskRepo    TaskRepo
	logger      *zap.Logger
}

func NewProjectService(projectRepo ProjectRepo, taskRepo TaskRepo, logger *zap.Logger) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		logger:      logger,
	}
}

func (s *ProjectService) Create(ctx context.Context, ownerID primitive.ObjectID, name, description string) (*model.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation(apperr.FieldError{
			Field: "name", Message: "The project name is mandatory.",
		})
	}

	p := &model.Project{
		UserID:      ownerID,
		Name:        name,
		Description: strings.TrimSpace(description),
	}
	if err := s.projectRepo.Insert(ctx, p); err != nil {
		return nil, apperr.Server(err)
	}

	metrics.IncrementProjectMutation("create")
	return p, nil
}

func (s *ProjectService) List(ctx context.Context, ownerID primitive.ObjectID) ([]model.Project, error) {
	projects, err := s.projectRepo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, apperr.Server(err)
	}
	return projects, nil
}

// Get loads a project and enforces ownership. An absent project is 404;
// a project owned by someone else is reported as 401, not 403 or 404.
// Callers depend on that split.
func (s *ProjectService) Get(ctx context.Context, ownerID primitive.ObjectID, idHex string) (*model.Project, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperr.BadRequest("Invalid project ID.")
	}

	p, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Server(err)
	}
	if p == nil {
		return nil, apperr.NotFound("Project not found")
	}
	if p.UserID != ownerID {
		return nil, apperr.Unauthorized("Unauthorized user")
	}
	return p, nil
}

func (s *ProjectService) Update(ctx context.Context, ownerID primitive.ObjectID, idHex string, in model.UpdateProjectInput) (*model.Project, error) {
	p, err := s.Get(ctx, ownerID, idHex)
	if err != nil {
		return nil, err
	}

	// name only changes when sent non-empty; description changes whenever
	// the field is present, including an explicit empty string
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}

	if err := s.projectRepo.Update(ctx, p); err != nil {
		return nil, apperr.Server(err)
	}

	metrics.IncrementProjectMutation("update")
	return p, nil
}

// Delete removes the project and every task under it. The task cascade
// runs first so a mid-failure leaves the project discoverable rather than
// silently orphaning tasks. The two steps are sequential, not atomic.
func (s *ProjectService) Delete(ctx context.Context, ownerID primitive.ObjectID, idHex string) (string, error) {
	p, err := s.Get(ctx, ownerID, idHex)
	if err != nil {
		return "", err
	}

	deleted, err := s.taskRepo.DeleteByProject(ctx, ownerID, p.ID)
	if err != nil {
		return "", apperr.Server(err)
	}

	if err := s.projectRepo.Delete(ctx, p.ID); err != nil {
		return "", apperr.Server(err)
	}

	metrics.IncrementProjectMutation("delete")
	metrics.CascadeDeletedTasks.Add(float64(deleted))
	s.logger.Info("Project deleted with task cascade",
		zap.String("project_id", p.ID.Hex()),
		zap.Int64("tasks_deleted", deleted),
	)
	return p.ID.Hex(), nil
}
