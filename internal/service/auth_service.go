package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
	"taskboard/internal/util"
)

type AuthService struct {
	userRepo  UserRepo
	jwtSecret string
	logger    *zap.Logger
}

func NewAuthService(userRepo UserRepo, jwtSecret string, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// Register creates a new user and returns it with a fresh token.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	var fields []apperr.FieldError
	if name == "" {
		fields = append(fields, apperr.FieldError{Field: "name", Message: "Name is mandatory."})
	}
	if email == "" {
		fields = append(fields, apperr.FieldError{Field: "email", Message: "Email is mandatory."})
	} else if !strings.Contains(email, "@") {
		fields = append(fields, apperr.FieldError{Field: "email", Message: "Email must be a valid address."})
	}
	if password == "" {
		fields = append(fields, apperr.FieldError{Field: "password", Message: "Password is mandatory."})
	} else if len(password) < 6 {
		fields = append(fields, apperr.FieldError{Field: "password", Message: "Password must be at least 6 characters."})
	}
	if len(fields) > 0 {
		return nil, "", apperr.Validation(fields...)
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", apperr.Server(err)
	}
	if existing != nil {
		return nil, "", apperr.Conflict("User already exists")
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, "", apperr.Server(err)
	}

	u := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		// unique index on email backstops the FindByEmail check
		return nil, "", apperr.Server(err)
	}

	token, err := util.GenerateJWT(u.ID.Hex(), s.jwtSecret)
	if err != nil {
		return nil, "", apperr.Server(err)
	}

	s.logger.Info("User registered",
		zap.String("user_id", u.ID.Hex()),
		zap.String("email", u.Email),
	)
	return u, token, nil
}

// Login checks credentials and returns the user with a fresh token. The
// same error covers unknown email and wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	u, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, "", apperr.Server(err)
	}
	if u == nil || !util.CheckPassword(password, u.PasswordHash) {
		return nil, "", apperr.Unauthorized("Invalid email or password")
	}

	token, err := util.GenerateJWT(u.ID.Hex(), s.jwtSecret)
	if err != nil {
		return nil, "", apperr.Server(err)
	}

	s.logger.Info("User logged in", zap.String("user_id", u.ID.Hex()))
	return u, token, nil
}

// VerifyToken resolves a bearer token to its user, rejecting tokens whose
// signature fails, that have expired, or whose user no longer exists.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*model.PublicUser, error) {
	userID, err := util.ParseJWT(token, s.jwtSecret)
	if err != nil {
		return nil, apperr.Unauthorized("No authorization, token fail")
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperr.Unauthorized("No authorization, token fail")
	}

	u, err := s.userRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, apperr.Server(err)
	}
	if u == nil {
		return nil, apperr.Unauthorized("No authorization, user not found")
	}

	pub := u.Public()
	return &pub, nil
}
