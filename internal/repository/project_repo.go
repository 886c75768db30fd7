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

type ProjectRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewProjectRepository(database *mongo.Database, logger *zap.Logger) *ProjectRepository {
	return &ProjectRepository{coll: database.Collection("projects"), logger: logger}
}

func (r *ProjectRepository) Insert(ctx context.Context, p *model.Project) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		r.logger.Error("Failed to insert project",
			zap.String("user_id", p.UserID.Hex()),
			zap.Error(err),
		)
		return err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListByUser returns the user's projects, newest created first.
func (r *ProjectRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		r.logger.Error("Failed to query projects",
			zap.String("user_id", userID.Hex()),
			zap.Error(err),
		)
		return nil, err
	}
	defer cur.Close(ctx)

	projects := []model.Project{}
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByID returns the project with the given id, or nil when absent.
// Ownership is checked by the service layer, not here.
func (r *ProjectRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Project, error) {
	var p model.Project
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *model.Project) error {
	p.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"name":        p.Name,
		"description": p.Description,
		"updatedAt":   p.UpdatedAt,
	}}
	_, err := r.coll.UpdateByID(ctx, p.ID, update)
	if err != nil {
		r.logger.Error("Failed to update project",
			zap.String("project_id", p.ID.Hex()),
			zap.Error(err),
		)
	}
	return err
}

func (r *ProjectRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("Failed to delete project",
			zap.String("project_id", id.Hex()),
			zap.Error(err),
		)
	}
	return err
}
