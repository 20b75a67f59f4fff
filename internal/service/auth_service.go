package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/post-service/internal/auth"
	"github.com/spec-kit/post-service/internal/config"
	"github.com/spec-kit/post-service/internal/domain"
	"github.com/spec-kit/post-service/internal/events"
	"github.com/spec-kit/post-service/internal/repository"
	apperrors "github.com/spec-kit/post-service/pkg/util"
)

// AuthService coordinates registration and session issuance.
type AuthService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	hashParams auth.Params
	dispatcher events.Dispatcher
}

// AuthDependencies encapsulates collaborator requirements for auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
	HashParams auth.Params
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	params := deps.HashParams
	if params.Memory == 0 {
		params = auth.DefaultParams()
	}
	return &AuthService{
		users:      deps.UserRepo,
		tokens:     auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		hashParams: params,
		dispatcher: deps.Dispatcher,
	}
}

// Register creates a new account with a salted argon2id hash and returns the
// created identity. No token is issued on registration; login is a separate
// step.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	hash, err := auth.HashPassword(password, s.hashParams)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewConflict("user with that email already exists")
		}
		return nil, err
	}

	s.publish(ctx, events.EventUserRegistered, user.ID, events.UserRegisteredPayload{
		UserID: user.ID,
		Email:  user.Email,
	})
	return user, nil
}

// Login verifies the supplied credential against the stored hash and mints a
// session token. A lookup miss and a password mismatch return the same error
// value so the two cases cannot be told apart.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, invalidCredentials()
		}
		return "", time.Time{}, err
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, invalidCredentials()
	}

	token, expiresAt, err := s.tokens.Mint(user.ID, user.Email, time.Now())
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, subjectID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

func invalidCredentials() error {
	return apperrors.NewUnauthorized("invalid email or password")
}
