package domain

import "context"

// AccountRepository provides role discovery, sign-in, and the
// librarian-facing account listings.
type AccountRepository interface {
	GetRoles(ctx context.Context) ([]RoleOption, error)
	SignIn(ctx context.Context, creds Credentials) (*AuthGrant, error)
	ListUsernames(ctx context.Context) ([]string, error)
	ListUsers(ctx context.Context, filter UserFilter) ([]User, error)
	SetActiveStatus(ctx context.Context, actor Role, userID string, active bool) (string, error)
}

// CatalogRepository provides access to the book catalog. Every operation
// carries the caller's role; the backend enforces the actual permissions.
type CatalogRepository interface {
	ListBooks(ctx context.Context, role Role) ([]Book, error)
	AddBook(ctx context.Context, role Role, book Book) (string, error)
	UpdateBook(ctx context.Context, role Role, isbn string, upd BookUpdate) (string, error)
	DeleteBook(ctx context.Context, role Role, isbn string) (string, error)
}

// CirculationRepository handles borrow and return of catalog books.
type CirculationRepository interface {
	BorrowBook(ctx context.Context, role Role, userID, isbn string) (string, error)
	ReturnBook(ctx context.Context, role Role, userID, isbn string) (string, error)
}
