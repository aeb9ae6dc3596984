package service

import (
	"context"
	"log/slog"

	"github.com/stacksapp/stacks/internal/domain"
)

// CatalogService handles the book catalog screen's operations. Mutations
// follow a single invalidate-and-refetch flow: the screen clears its list,
// the mutation runs, and the catalog is reloaded regardless of outcome.
type CatalogService struct {
	catalog domain.CatalogRepository
	logger  *slog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalog domain.CatalogRepository, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{catalog: catalog, logger: logger}
}

// List returns the catalog visible to the given role.
func (s *CatalogService) List(ctx context.Context, role domain.Role) ([]domain.Book, error) {
	return s.catalog.ListBooks(ctx, role)
}

// Delete removes a book and reloads the catalog.
func (s *CatalogService) Delete(ctx context.Context, role domain.Role, isbn string) ([]domain.Book, string, error) {
	return reloadAfter(ctx, s.logger,
		func(ctx context.Context) (string, error) {
			return s.catalog.DeleteBook(ctx, role, isbn)
		},
		func(ctx context.Context) ([]domain.Book, error) {
			return s.catalog.ListBooks(ctx, role)
		})
}

// Add creates a new catalog entry and reloads the catalog.
func (s *CatalogService) Add(ctx context.Context, role domain.Role, book domain.Book) ([]domain.Book, string, error) {
	return reloadAfter(ctx, s.logger,
		func(ctx context.Context) (string, error) {
			return s.catalog.AddBook(ctx, role, book)
		},
		func(ctx context.Context) ([]domain.Book, error) {
			return s.catalog.ListBooks(ctx, role)
		})
}

// Update patches a catalog entry and reloads the catalog.
func (s *CatalogService) Update(ctx context.Context, role domain.Role, isbn string, upd domain.BookUpdate) ([]domain.Book, string, error) {
	return reloadAfter(ctx, s.logger,
		func(ctx context.Context) (string, error) {
			return s.catalog.UpdateBook(ctx, role, isbn, upd)
		},
		func(ctx context.Context) ([]domain.Book, error) {
			return s.catalog.ListBooks(ctx, role)
		})
}
