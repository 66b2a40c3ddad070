// Package adminauth implements the single shared-credential dashboard login.
// There are no per-user accounts; one Argon2id hash guards the whole admin
// surface and every successful login opens its own revocable session.
package adminauth

import (
	"context"
	"fmt"
	"time"

	"github.com/yourbrand/tours-backend/pkg/auth"
	"github.com/yourbrand/tours-backend/pkg/auth/session"
	"github.com/yourbrand/tours-backend/pkg/config"
	pkgerrors "github.com/yourbrand/tours-backend/pkg/errors"
	"github.com/yourbrand/tours-backend/pkg/security"
)

type sessionManager interface {
	Start(ctx context.Context, tokenID string, now time.Time) error
	Revoke(ctx context.Context, tokenID string) error
}

// LoginResult is handed back to the dashboard after a successful login.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Service authenticates dashboard operators.
type Service interface {
	Login(ctx context.Context, password string) (*LoginResult, error)
	Logout(ctx context.Context, tokenID string) error
}

type service struct {
	sessions sessionManager
	jwt      config.JWTConfig
	admin    config.AdminConfig
	now      func() time.Time
}

func NewService(sessions sessionManager, jwtCfg config.JWTConfig, adminCfg config.AdminConfig) (Service, error) {
	if sessions == nil {
		return nil, fmt.Errorf("session manager required")
	}
	if adminCfg.PasswordHash == "" {
		return nil, fmt.Errorf("admin password hash required")
	}

	return &service{
		sessions: sessions,
		jwt:      jwtCfg,
		admin:    adminCfg,
		now:      time.Now,
	}, nil
}

func (s *service) Login(ctx context.Context, password string) (*LoginResult, error) {
	ok, err := security.VerifyPassword(password, s.admin.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify admin password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	now := s.now()
	tokenID := session.NewTokenID()

	token, err := auth.MintAdminToken(s.jwt, now, auth.AdminTokenPayload{JTI: tokenID})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint admin token")
	}

	if err := s.sessions.Start(ctx, tokenID, now); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "start admin session")
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: now.Add(time.Duration(s.jwt.ExpirationMinutes) * time.Minute),
	}, nil
}

func (s *service) Logout(ctx context.Context, tokenID string) error {
	if tokenID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "missing token id")
	}
	if err := s.sessions.Revoke(ctx, tokenID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke admin session")
	}
	return nil
}
