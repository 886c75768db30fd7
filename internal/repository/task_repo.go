package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"taskboard/internal/model"
)

type TaskRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewTaskRepository(database *mongo.Database, logger *zap.Logger) *TaskRepository {
	return &TaskRepository{coll: database.Collection("tasks"), logger: logger}
}

func (r *TaskRepository) Insert(ctx context.Context, t *model.Task) error {
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, t)
	if err != nil {
		r.logger.Error("Failed to insert task",
			zap.String("user_id", t.UserID.Hex()),
			zap.String("project_id", t.ProjectID.Hex()),
			zap.Error(err),
		)
		return err
	}
	t.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID returns the task with the given id, or nil when absent.
func (r *TaskRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Task, error) {
	var t model.Task
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List runs the filtered, sorted, paginated task query. The total count is
// taken against the filtered set before skip/limit is applied.
func (r *TaskRepository) List(ctx context.Context, userID primitive.ObjectID, q model.TaskListQuery) ([]model.Task, int64, error) {
	filter := taskFilter(userID, q)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		r.logger.Error("Failed to count tasks",
			zap.String("user_id", userID.Hex()),
			zap.Error(err),
		)
		return nil, 0, err
	}

	skip := int64(q.Page-1) * int64(q.Limit)
	opts := options.Find().
		SetSort(taskSort(q.SortBy)).
		SetSkip(skip).
		SetLimit(int64(q.Limit))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		r.logger.Error("Failed to query tasks",
			zap.String("user_id", userID.Hex()),
			zap.Error(err),
		)
		return nil, 0, err
	}
	defer cur.Close(ctx)

	tasks := []model.Task{}
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// ListByProject returns every task under the project for the user,
// newest first, unpaginated.
func (r *TaskRepository) ListByProject(ctx context.Context, userID, projectID primitive.ObjectID) ([]model.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"user": userID, "project": projectID}, opts)
	if err != nil {
		r.logger.Error("Failed to query project tasks",
			zap.String("user_id", userID.Hex()),
			zap.String("project_id", projectID.Hex()),
			zap.Error(err),
		)
		return nil, err
	}
	defer cur.Close(ctx)

	tasks := []model.Task{}
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, t *model.Task) error {
	t.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"title":       t.Title,
		"description": t.Description,
		"status":      t.Status,
		"dueDate":     t.DueDate,
		"updatedAt":   t.UpdatedAt,
	}}
	_, err := r.coll.UpdateByID(ctx, t.ID, update)
	if err != nil {
		r.logger.Error("Failed to update task",
			zap.String("task_id", t.ID.Hex()),
			zap.Error(err),
		)
	}
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("Failed to delete task",
			zap.String("task_id", id.Hex()),
			zap.Error(err),
		)
	}
	return err
}

// DeleteByProject removes every task under the project for the user and
// returns how many documents went away. This is the cascade step and runs
// strictly before the project document itself is deleted.
func (r *TaskRepository) DeleteByProject(ctx context.Context, userID, projectID primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"user": userID, "project": projectID})
	if err != nil {
		r.logger.Error("Failed cascade delete of project tasks",
			zap.String("user_id", userID.Hex()),
			zap.String("project_id", projectID.Hex()),
			zap.Error(err),
		)
		return 0, err
	}
	return res.DeletedCount, nil
}
