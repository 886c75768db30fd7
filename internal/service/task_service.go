package service

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"taskboard/internal/apperr"
	"taskboard/internal/metrics"
	"taskboard/internal/model"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

type TaskService struct {
	taskRepo    TaskRepo
	projectRepo ProjectRepo
	logger      *zap.Logger
}

func NewTaskService(taskRepo TaskRepo, projectRepo ProjectRepo, logger *zap.Logger) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Create validates the input and inserts a task under the given project.
// The project must exist and belong to the requester; both failures are
// reported identically as 404 so task creation never confirms a foreign
// project's existence.
func (s *TaskService) Create(ctx context.Context, ownerID primitive.ObjectID, in model.CreateTaskInput) (*model.Task, error) {
	title := strings.TrimSpace(in.Title)

	var fields []apperr.FieldError
	if title == "" {
		fields = append(fields, apperr.FieldError{Field: "title", Message: "Title is mandatory."})
	} else if len(title) < 3 {
		fields = append(fields, apperr.FieldError{Field: "title", Message: "Title must be at least 3 characters."})
	}

	if in.Status != "" && !model.ValidStatus(in.Status) {
		fields = append(fields, apperr.FieldError{
			Field: "status", Message: "Invalid status. Allowed: pending, in-progress, completed.",
		})
	}

	var dueDate *time.Time
	if in.DueDate != "" {
		parsed, ok := parseDueDate(in.DueDate)
		if !ok {
			fields = append(fields, apperr.FieldError{
				Field: "dueDate", Message: "Due date must be a valid date (YYYY-MM-DD).",
			})
		} else {
			dueDate = &parsed
		}
	}

	var projectID primitive.ObjectID
	if in.ProjectID == "" {
		fields = append(fields, apperr.FieldError{
			Field: "projectId", Message: "Project ID is mandatory for new tasks.",
		})
	} else {
		var err error
		projectID, err = primitive.ObjectIDFromHex(in.ProjectID)
		if err != nil {
			fields = append(fields, apperr.FieldError{
				Field: "projectId", Message: "Project ID must be a valid ID.",
			})
		}
	}

	if len(fields) > 0 {
		return nil, apperr.Validation(fields...)
	}

	p, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, apperr.Server(err)
	}
	if p == nil || p.UserID != ownerID {
		return nil, apperr.NotFound("Project not found or does not belong to user")
	}

	status := in.Status
	if status == "" {
		status = model.StatusPending
	}

	t := &model.Task{
		UserID:      ownerID,
		ProjectID:   projectID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Status:      status,
		DueDate:     dueDate,
	}
	if err := s.taskRepo.Insert(ctx, t); err != nil {
		return nil, apperr.Server(err)
	}

	metrics.IncrementTaskMutation("create")
	return t, nil
}

// List returns one page of the owner's tasks plus pagination totals.
// Page and limit are normalized here; filter and sort interpretation
// happens in the repository.
func (s *TaskService) List(ctx context.Context, ownerID primitive.ObjectID, q model.TaskListQuery) (*model.TaskPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageLimit
	}
	if q.Limit > maxPageLimit {
		q.Limit = maxPageLimit
	}

	tasks, total, err := s.taskRepo.List(ctx, ownerID, q)
	if err != nil {
		return nil, apperr.Server(err)
	}

	totalPages := int(total) / q.Limit
	if int(total)%q.Limit != 0 {
		totalPages++
	}

	return &model.TaskPage{
		CurrentPage: q.Page,
		TotalPages:  totalPages,
		TotalTasks:  total,
		CountOnPage: len(tasks),
		Tasks:       tasks,
	}, nil
}

// ListByProject returns every task under a project the owner holds.
func (s *TaskService) ListByProject(ctx context.Context, ownerID primitive.ObjectID, projectIDHex string) ([]model.Task, error) {
	projectID, err := primitive.ObjectIDFromHex(projectIDHex)
	if err != nil {
		return nil, apperr.BadRequest("Invalid project ID.")
	}

	p, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, apperr.Server(err)
	}
	if p == nil || p.UserID != ownerID {
		return nil, apperr.NotFound("Project not found or does not belong to user")
	}

	tasks, err := s.taskRepo.ListByProject(ctx, ownerID, projectID)
	if err != nil {
		return nil, apperr.Server(err)
	}
	return tasks, nil
}

func (s *TaskService) Get(ctx context.Context, ownerID primitive.ObjectID, idHex string) (*model.Task, error) {
	return s.getOwned(ctx, ownerID, idHex, "User not authorized to access this task")
}

func (s *TaskService) Update(ctx context.Context, ownerID primitive.ObjectID, idHex string, in model.UpdateTaskInput) (*model.Task, error) {
	t, err := s.getOwned(ctx, ownerID, idHex, "User not authorized to update this task")
	if err != nil {
		return nil, err
	}

	var fields []apperr.FieldError
	if in.Title != nil && strings.TrimSpace(*in.Title) != "" && len(strings.TrimSpace(*in.Title)) < 3 {
		fields = append(fields, apperr.FieldError{Field: "title", Message: "Title must be at least 3 characters."})
	}
	if in.Status != nil && *in.Status != "" && !model.ValidStatus(*in.Status) {
		fields = append(fields, apperr.FieldError{
			Field: "status", Message: "Invalid status. Allowed: pending, in-progress, completed.",
		})
	}
	var newDue *time.Time
	if in.DueDate != nil && *in.DueDate != "" {
		parsed, ok := parseDueDate(*in.DueDate)
		if !ok {
			fields = append(fields, apperr.FieldError{
				Field: "dueDate", Message: "Due date must be a valid date (YYYY-MM-DD).",
			})
		} else {
			newDue = &parsed
		}
	}
	if len(fields) > 0 {
		return nil, apperr.Validation(fields...)
	}

	// title/status/dueDate only overwrite when sent non-empty;
	// description overwrites whenever present, empty included
	if in.Title != nil && strings.TrimSpace(*in.Title) != "" {
		t.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		t.Description = strings.TrimSpace(*in.Description)
	}
	if in.Status != nil && *in.Status != "" {
		t.Status = *in.Status
	}
	if newDue != nil {
		t.DueDate = newDue
	}

	if err := s.taskRepo.Update(ctx, t); err != nil {
		return nil, apperr.Server(err)
	}

	metrics.IncrementTaskMutation("update")
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, ownerID primitive.ObjectID, idHex string) (string, error) {
	t, err := s.getOwned(ctx, ownerID, idHex, "User not authorized to delete this task")
	if err != nil {
		return "", err
	}

	if err := s.taskRepo.Delete(ctx, t.ID); err != nil {
		return "", apperr.Server(err)
	}

	metrics.IncrementTaskMutation("delete")
	return t.ID.Hex(), nil
}

func (s *TaskService) getOwned(ctx context.Context, ownerID primitive.ObjectID, idHex, unauthorizedMsg string) (*model.Task, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperr.BadRequest("Invalid task ID.")
	}

	t, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Server(err)
	}
	if t == nil {
		return nil, apperr.NotFound("Task not found")
	}
	if t.UserID != ownerID {
		return nil, apperr.Unauthorized(unauthorizedMsg)
	}
	return t, nil
}

func parseDueDate(value string) (time.Time, bool) {
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed.UTC(), true
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed.UTC(), true
	}
	return time.Time{}, false
}
