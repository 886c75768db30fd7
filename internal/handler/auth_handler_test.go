package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
)

func TestRegisterHandler(t *testing.T) {
	uid := primitive.NewObjectID()
	auth := &mockAuthAPI{
		registerFn: func(_ context.Context, name, email, password string) (*model.User, string, error) {
			if name != "Ada" || email != "ada@example.com" || password != "secret1" {
				t.Errorf("register called with %q %q %q", name, email, password)
			}
			return &model.User{ID: uid, Name: name, Email: email}, "tok123", nil
		},
	}
	h := NewAuthHandler(auth, testLogger)
	r := gin.New()
	r.POST("/api/users/register", h.Register)

	w := perform(t, r, http.MethodPost, "/api/users/register", gin.H{
		"name": "Ada", "email": "ada@example.com", "password": "secret1",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["id"] != uid.Hex() {
		t.Errorf("id = %v", body["id"])
	}
	if body["token"] != "tok123" {
		t.Errorf("token = %v", body["token"])
	}
	if body["message"] != "User registered successfully" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestRegisterHandlerBadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthAPI{}, testLogger)
	r := gin.New()
	r.POST("/api/users/register", h.Register)

	w := performRaw(t, r, http.MethodPost, "/api/users/register", "{not json")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if decodeBody(t, w)["message"] != "Invalid request body" {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestRegisterHandlerValidationErrors(t *testing.T) {
	auth := &mockAuthAPI{
		registerFn: func(context.Context, string, string, string) (*model.User, string, error) {
			return nil, "", apperr.Validation(
				apperr.FieldError{Field: "password", Message: "Password must be at least 6 characters."},
			)
		},
	}
	h := NewAuthHandler(auth, testLogger)
	r := gin.New()
	r.POST("/api/users/register", h.Register)

	w := perform(t, r, http.MethodPost, "/api/users/register", gin.H{
		"name": "Ada", "email": "ada@example.com", "password": "abc",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	errs, ok := body["errors"].([]any)
	if !ok || len(errs) != 1 {
		t.Fatalf("errors = %v", body["errors"])
	}
	first := errs[0].(map[string]any)
	if first["field"] != "password" {
		t.Errorf("field = %v", first["field"])
	}
}

func TestLoginHandler(t *testing.T) {
	uid := primitive.NewObjectID()
	auth := &mockAuthAPI{
		loginFn: func(_ context.Context, email, password string) (*model.User, string, error) {
			return &model.User{ID: uid, Name: "Ada", Email: email}, "tok456", nil
		},
	}
	h := NewAuthHandler(auth, testLogger)
	r := gin.New()
	r.POST("/api/users/login", h.Login)

	w := perform(t, r, http.MethodPost, "/api/users/login", gin.H{
		"email": "ada@example.com", "password": "secret1",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["message"] != "User login successfull" {
		t.Errorf("message = %v", body["message"])
	}
	if body["token"] != "tok456" {
		t.Errorf("token = %v", body["token"])
	}
}

func TestLoginHandlerRejected(t *testing.T) {
	auth := &mockAuthAPI{
		loginFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", apperr.Unauthorized("Invalid email or password")
		},
	}
	h := NewAuthHandler(auth, testLogger)
	r := gin.New()
	r.POST("/api/users/login", h.Login)

	w := perform(t, r, http.MethodPost, "/api/users/login", gin.H{
		"email": "ada@example.com", "password": "wrong",
	})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
	if decodeBody(t, w)["message"] != "Invalid email or password" {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestProfileHandler(t *testing.T) {
	h := NewAuthHandler(&mockAuthAPI{}, testLogger)
	r := authedRouter()
	r.GET("/api/users/profile", h.Profile)

	w := perform(t, r, http.MethodGet, "/api/users/profile", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["email"] != testUser.Email {
		t.Errorf("email = %v", body["email"])
	}
	if _, leaked := body["password"]; leaked {
		t.Error("password field present in profile")
	}
}
