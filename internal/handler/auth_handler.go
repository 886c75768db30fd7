package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/apperr"
	"taskboard/internal/metrics"
	"taskboard/internal/model"
)

// AuthAPI is the slice of the auth service the handler needs.
type AuthAPI interface {
	Register(ctx context.Context, name, email, password string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
}

type AuthHandler struct {
	auth   AuthAPI
	logger *zap.Logger
}

func NewAuthHandler(auth AuthAPI, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperr.BadRequest("Invalid request body"))
		return
	}

	u, token, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		metrics.IncrementAuthAttempt("register", "failure")
		respondError(c, h.logger, err)
		return
	}

	metrics.IncrementAuthAttempt("register", "success")
	c.JSON(http.StatusCreated, gin.H{
		"id":      u.ID.Hex(),
		"name":    u.Name,
		"email":   u.Email,
		"token":   token,
		"message": "User registered successfully",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperr.BadRequest("Invalid request body"))
		return
	}

	u, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		metrics.IncrementAuthAttempt("login", "failure")
		respondError(c, h.logger, err)
		return
	}

	metrics.IncrementAuthAttempt("login", "success")
	c.JSON(http.StatusOK, gin.H{
		"id":      u.ID.Hex(),
		"name":    u.Name,
		"email":   u.Email,
		"token":   token,
		"message": "User login successfull",
	})
}

// Profile returns the authenticated user, password excluded.
func (h *AuthHandler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}
