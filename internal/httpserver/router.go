package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"

	"taskboard/internal/handler"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	authHandler *handler.AuthHandler,
	projectHandler *handler.ProjectHandler,
	taskHandler *handler.TaskHandler,
	verifier TokenVerifier,
	limiter *RateLimiter,
	database *mongo.Database,
) *Router {
	r := gin.Default()
	r.Use(MetricsMiddleware())

	// Health endpoints
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(200)
	})
	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, 1*time.Second)
		defer cancel()

		if err := database.Client().Ping(ctx, nil); err != nil {
			c.JSON(500, gin.H{"status": "db_not_ready"})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// Public
	rl := limiter.Middleware()
	api.POST("/users/register", rl, authHandler.Register)
	api.POST("/users/login", rl, authHandler.Login)

	// Protected
	auth := api.Group("")
	auth.Use(AuthMiddleware(verifier))
	{
		auth.GET("/users/profile", authHandler.Profile)

		auth.POST("/projects", projectHandler.Create)
		auth.GET("/projects", projectHandler.List)
		auth.GET("/projects/:id", projectHandler.Get)
		auth.PUT("/projects/:id", projectHandler.Update)
		auth.DELETE("/projects/:id", projectHandler.Delete)
		auth.GET("/projects/:id/tasks", taskHandler.ListByProject)

		auth.POST("/tasks", taskHandler.Create)
		auth.GET("/tasks", taskHandler.List)
		auth.GET("/tasks/:id", taskHandler.Get)
		auth.PUT("/tasks/:id", taskHandler.Update)
		auth.DELETE("/tasks/:id", taskHandler.Delete)
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
