package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
)

const ContextUserKey = "user"

// respondError translates a service error into the uniform JSON envelope.
// Field-level validation errors ride along under "errors"; anything
// unexpected is logged and reported as a bare server error.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	e := apperr.As(err)

	if e.Kind == apperr.KindServer {
		logger.Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(e.Err),
		)
	}

	body := gin.H{"message": e.Message}
	if len(e.Fields) > 0 {
		body["errors"] = e.Fields
	}
	c.JSON(e.Status(), body)
}

// currentUser reads the authenticated user the middleware attached.
func currentUser(c *gin.Context) model.PublicUser {
	u, _ := c.Get(ContextUserKey)
	pub, _ := u.(model.PublicUser)
	return pub
}
