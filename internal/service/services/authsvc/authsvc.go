package authsvc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/corray333/backend-labs/cafe/internal/dal/cafeapi"
	"github.com/corray333/backend-labs/cafe/internal/dal/interfaces/icafeapi"
	"github.com/corray333/backend-labs/cafe/internal/service/models/user"
)

const fallbackDetail = "Authentication failed"

var (
	ErrAuthFailed    = errors.New("authentication failed")
	ErrInvalidSignup = errors.New("invalid signup")
)

// FailedError carries the reason the café API gave for rejecting the request.
type FailedError struct {
	Detail string
}

func (e *FailedError) Error() string {
	return e.Detail
}

func (e *FailedError) Is(target error) bool {
	return target == ErrAuthFailed
}

// Session is the outcome of a successful login.
type Session struct {
	User     user.User `json:"user"`
	Redirect string    `json:"redirect"`
}

// AuthService authenticates café users against the café API.
type AuthService struct {
	api icafeapi.IAuthAPI
}

// option is a function that configures the AuthService.
type option func(*AuthService)

// MustNewAuthService creates a new AuthService.
func MustNewAuthService(opts ...option) *AuthService {
	s := &AuthService{}
	for _, opt := range opts {
		opt(s)
	}
	if s.api == nil {
		panic("authsvc: auth api is required")
	}

	return s
}

// WithAuthAPI sets the café API client.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithAuthAPI(api icafeapi.IAuthAPI) option {
	return func(s *AuthService) {
		s.api = api
	}
}

// Login authenticates the user and resolves the landing route for their role.
func (s *AuthService) Login(ctx context.Context, creds user.Credentials) (Session, error) {
	u, err := s.api.Login(ctx, creds)
	if err != nil {
		return Session{}, failed(err)
	}

	route, err := u.Role.Route()
	if err != nil {
		slog.Warn("Login with unknown role", "email", creds.Email, "role", u.Role)
		return Session{}, err
	}

	slog.Info("User logged in", "user_id", u.ID, "role", u.Role)

	return Session{User: u, Redirect: route}, nil
}

// Signup registers a customer and returns the new user id.
func (s *AuthService) Signup(ctx context.Context, req user.Signup) (string, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Password == "" {
		return "", fmt.Errorf("%w: name and password are required", ErrInvalidSignup)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return "", fmt.Errorf("%w: bad email %q", ErrInvalidSignup, req.Email)
	}

	id, err := s.api.Signup(ctx, req)
	if err != nil {
		return "", failed(err)
	}

	slog.Info("User signed up", "user_id", id)

	return id, nil
}

func failed(err error) error {
	if se, ok := cafeapi.AsStatusError(err); ok {
		detail := se.Detail
		if detail == "" {
			detail = fallbackDetail
		}
		return &FailedError{Detail: detail}
	}

	return fmt.Errorf("call auth api: %w", err)
}
