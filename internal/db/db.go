package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"taskboard/config"
)

// NewConnection connects to MongoDB and returns the application database.
// Unique index on users.email backs the duplicate-registration check.
func NewConnection(cfg config.MongoConfig, logger *zap.Logger) (*mongo.Database, error) {
	logger.Info("Initializing MongoDB connection",
		zap.String("uri", cfg.URI),
		zap.String("database", cfg.Database),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		logger.Error("MongoDB connection failed", zap.Error(err))
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		logger.Error("MongoDB ping failed", zap.Error(err))
		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	database := client.Database(cfg.Database)

	if err := ensureIndexes(database); err != nil {
		logger.Error("Failed to create indexes", zap.Error(err))
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	logger.Info("MongoDB connection established successfully")
	return database, nil
}

func ensureIndexes(database *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	unique := true
	_, err := database.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: &options.IndexOptions{Unique: &unique},
	})
	if err != nil {
		return err
	}

	_, err = database.Collection("tasks").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}, {Key: "project", Value: 1}},
	})
	return err
}
