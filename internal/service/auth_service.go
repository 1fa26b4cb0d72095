package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/visualpath/visualpath-api/internal/auth"
	"github.com/visualpath/visualpath-api/internal/config"
	"github.com/visualpath/visualpath-api/internal/domain"
	"github.com/visualpath/visualpath-api/internal/repository"
	"github.com/visualpath/visualpath-api/internal/validate"
	apperrors "github.com/visualpath/visualpath-api/pkg/util"
)

// AuthService handles admin login.
type AuthService struct {
	admins repository.AdminRepository
	tokens *auth.TokenManager
}

// NewAuthService constructs the service.
func NewAuthService(cfg config.AuthConfig, admins repository.AdminRepository) *AuthService {
	return &AuthService{
		admins: admins,
		tokens: auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
	}
}

// LoginResult carries the issued credential.
type LoginResult struct {
	Admin     *domain.Admin
	Token     string
	ExpiresAt time.Time
}

// Login verifies credentials and issues an access token. Lookup failures
// and bad passwords report the same error so the response does not reveal
// which admin emails exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	admin, err := s.admins.GetByEmail(ctx, validate.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}
	if err := auth.ComparePassword(admin.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.tokens.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Admin: admin, Token: token, ExpiresAt: expiresAt}, nil
}

// TokenManager exposes token validation for the auth middleware.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}
