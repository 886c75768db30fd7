package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/apperr"
	"taskboard/internal/handler"
	"taskboard/internal/metrics"
	"taskboard/internal/model"
	"taskboard/internal/util"
)

// TokenVerifier resolves a bearer token to the user it belongs to.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*model.PublicUser, error)
}

// AuthMiddleware guards every protected route. A missing header or wrong
// scheme short-circuits before any store is touched; on success the
// sanitized user is attached to the request context.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := util.ExtractToken(c.Request)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No authorization, token not found or invalid format"})
			c.Abort()
			return
		}

		user, err := verifier.VerifyToken(c.Request.Context(), token)
		if err != nil {
			respondAbort(c, err)
			return
		}

		c.Set(handler.ContextUserKey, *user)
		c.Next()
	}
}

func respondAbort(c *gin.Context, err error) {
	e := apperr.As(err)
	c.JSON(e.Status(), gin.H{"message": e.Message})
	c.Abort()
}

// MetricsMiddleware records per-request duration observations.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequestDuration(
			c.Request.Method,
			path,
			http.StatusText(c.Writer.Status()),
			time.Since(start),
		)
	}
}
