package service

import (
	"context"
	"log/slog"

	"github.com/stacksapp/stacks/internal/domain"
)

// DirectoryService backs the librarian dashboard: filtered account
// listings and activation toggles.
type DirectoryService struct {
	accounts domain.AccountRepository
	logger   *slog.Logger
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(accounts domain.AccountRepository, logger *slog.Logger) *DirectoryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DirectoryService{accounts: accounts, logger: logger}
}

// Users returns accounts matching the dashboard filter.
func (s *DirectoryService) Users(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	users, err := s.accounts.ListUsers(ctx, filter)
	if err != nil {
		s.logger.Error("failed to load users", "filter", filter.String(), "error", err)
		return nil, err
	}
	return users, nil
}

// SetActiveStatus activates or deactivates an account. The listing is not
// refreshed here; the dashboard's manual refresh control re-fetches.
func (s *DirectoryService) SetActiveStatus(ctx context.Context, actor domain.Role, userID string, active bool) (string, error) {
	msg, err := s.accounts.SetActiveStatus(ctx, actor, userID, active)
	if err != nil {
		s.logger.Error("failed to update active status", "userID", userID, "active", active, "error", err)
		return "", err
	}
	s.logger.Info("active status updated", "userID", userID, "active", active)
	return msg, nil
}
