package service

import (
	"context"
	"log/slog"

	"github.com/stacksapp/stacks/internal/domain"
)

// CirculationService handles student borrow and return. Both mutate the
// catalog's availability counts server-side, so both reload the catalog the
// same way as catalog mutations.
type CirculationService struct {
	circulation domain.CirculationRepository
	catalog     domain.CatalogRepository
	logger      *slog.Logger
}

// NewCirculationService creates a new circulation service
func NewCirculationService(circulation domain.CirculationRepository, catalog domain.CatalogRepository, logger *slog.Logger) *CirculationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CirculationService{circulation: circulation, catalog: catalog, logger: logger}
}

// Borrow checks a book out to the user and reloads the catalog.
func (s *CirculationService) Borrow(ctx context.Context, role domain.Role, userID, isbn string) ([]domain.Book, string, error) {
	return reloadAfter(ctx, s.logger,
		func(ctx context.Context) (string, error) {
			return s.circulation.BorrowBook(ctx, role, userID, isbn)
		},
		func(ctx context.Context) ([]domain.Book, error) {
			return s.catalog.ListBooks(ctx, role)
		})
}

// Return gives a checked-out book back and reloads the catalog.
func (s *CirculationService) Return(ctx context.Context, role domain.Role, userID, isbn string) ([]domain.Book, string, error) {
	return reloadAfter(ctx, s.logger,
		func(ctx context.Context) (string, error) {
			return s.circulation.ReturnBook(ctx, role, userID, isbn)
		},
		func(ctx context.Context) ([]domain.Book, error) {
			return s.catalog.ListBooks(ctx, role)
		})
}
