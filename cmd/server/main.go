package main

import (
	"go.uber.org/zap"

	"taskboard/config"
	"taskboard/internal/db"
	"taskboard/internal/handler"
	"taskboard/internal/httpserver"
	redisclient "taskboard/internal/redis"
	"taskboard/internal/repository"
	"taskboard/internal/service"
	"taskboard/internal/util"
)

func main() {
	cfg := config.Load()

	logger := util.NewLogger()
	defer logger.Sync()

	database, err := db.NewConnection(cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("DB initialization failed", zap.Error(err))
	}

	rdb := redisclient.NewClient(cfg.Redis)
	if rdb != nil {
		defer rdb.Close()
	}

	// Repositories
	userRepo := repository.NewUserRepository(database)
	projectRepo := repository.NewProjectRepository(database, logger)
	taskRepo := repository.NewTaskRepository(database, logger)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, logger)
	projectService := service.NewProjectService(projectRepo, taskRepo, logger)
	taskService := service.NewTaskService(taskRepo, projectRepo, logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	projectHandler := handler.NewProjectHandler(projectService, logger)
	taskHandler := handler.NewTaskHandler(taskService, logger)

	limiter := httpserver.NewRateLimiter(rdb, cfg.RateLimit, logger)

	router := httpserver.NewRouter(authHandler, projectHandler, taskHandler, authService, limiter, database)

	if err := router.Run(cfg.Server.Port); err != nil {
		logger.Fatal("server start failed", zap.Error(err))
	}
}
