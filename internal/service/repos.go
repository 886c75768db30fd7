package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskboard/internal/model"
)

// Storage interfaces consumed by the services. The mongo-backed
// implementations live in internal/repository; tests supply in-memory
// fakes. Find methods return nil (no error) when the document is absent.

type UserRepo interface {
	Create(ctx context.Context, u *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
}

type ProjectRepo interface {
	Insert(ctx context.Context, p *model.Project) error
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Project, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Project, error)
	Update(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type TaskRepo interface {
	Insert(ctx context.Context, t *model.Task) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Task, error)
	List(ctx context.Context, userID primitive.ObjectID, q model.TaskListQuery) ([]model.Task, int64, error)
	ListByProject(ctx context.Context, userID, projectID primitive.ObjectID) ([]model.Task, error)
	Update(ctx context.Context, t *model.Task) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByProject(ctx context.Context, userID, projectID primitive.ObjectID) (int64, error)
}
