package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/stacksapp/stacks/internal/domain"
)

// ErrInvalidCredentials indicates the credentials did not pass client-side
// validation and were never sent to the backend.
var ErrInvalidCredentials = errors.New("credentials failed validation")

// AuthService handles role discovery and sign-in.
type AuthService struct {
	accounts domain.AccountRepository
	logger   *slog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(accounts domain.AccountRepository, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{accounts: accounts, logger: logger}
}

// Roles returns the selectable roles.
func (s *AuthService) Roles(ctx context.Context) ([]domain.RoleOption, error) {
	roles, err := s.accounts.GetRoles(ctx)
	if err != nil {
		s.logger.Error("failed to load roles", "error", err)
		return nil, err
	}
	return roles, nil
}

// Usernames returns every registered username, used by the sign-in form to
// hint that a typed username already has an account.
func (s *AuthService) Usernames(ctx context.Context) ([]string, error) {
	return s.accounts.ListUsernames(ctx)
}

// SignIn validates the credentials client-side, then submits them. The
// backend decides whether this is a login or a new registration.
func (s *AuthService) SignIn(ctx context.Context, creds domain.Credentials) (*domain.AuthGrant, error) {
	if !creds.CanSubmit() {
		return nil, ErrInvalidCredentials
	}

	grant, err := s.accounts.SignIn(ctx, creds)
	if err != nil {
		s.logger.Warn("sign-in rejected", "userID", creds.UserID, "error", err)
		return nil, err
	}

	s.logger.Info("signed in", "userID", grant.UserID, "role", creds.Role.String(),
		"checkedOut", len(grant.CheckedOutBooks))
	return grant, nil
}
