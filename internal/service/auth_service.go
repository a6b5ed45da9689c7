package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tabscan/tabscan/internal/auth"
	"github.com/tabscan/tabscan/internal/models"
)

// ErrMissingFields is returned when a register/login request lacks required
// fields.
var ErrMissingFields = errors.New("email, name, and password are required")

// Session is the result of a successful registration or login.
type Session struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// AuthService handles registration and login.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
	}
}

// Register creates a new user account and returns a session token.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (*Session, error) {
	if email == "" || name == "" {
		return nil, ErrMissingFields
	}

	user, err := s.authenticator.Register(ctx, email, name, password)
	if err != nil {
		slog.Warn("Registration failed", "email", email, "error", err)
		return nil, err
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		slog.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, err
	}

	slog.Info("User registered", "user_id", user.ID, "email", user.Email)
	return &Session{User: user, Token: token}, nil
}

// Login authenticates a user and returns a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" {
		return nil, ErrMissingFields
	}

	user, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		slog.Warn("Login failed", "email", email)
		return nil, err
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		slog.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, err
	}

	slog.Info("User logged in", "user_id", user.ID)
	return &Session{User: user, Token: token}, nil
}
