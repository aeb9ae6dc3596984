package tui

import (
	"time"

	"github.com/stacksapp/stacks/internal/domain"
)

// TickMsg drives the spinner animation.
type TickMsg time.Time

// RolesLoadedMsg carries the role options for the sign-in selector. An
// empty slice means the fetch failed; the selector simply stays empty.
type RolesLoadedMsg struct {
	Options []domain.RoleOption
}

// UsernamesLoadedMsg carries the known usernames used for the
// existing-account hint on the sign-in form.
type UsernamesLoadedMsg struct {
	Names []string
}

// SignedInMsg reports a successful authentication.
type SignedInMsg struct {
	Grant domain.AuthGrant
}

// SignInFailedMsg reports a rejected authentication attempt. Message is
// the server's explanation when one was given.
type SignInFailedMsg struct {
	Message string
}

// BooksLoadedMsg carries a fresh catalog listing.
type BooksLoadedMsg struct {
	Books []domain.Book
}

// CatalogReloadedMsg reports the outcome of a catalog mutation together
// with the post-mutation listing.
type CatalogReloadedMsg struct {
	Books  []domain.Book
	Notice string
	Err    error
}

// CirculationDoneMsg reports the outcome of a borrow or return together
// with the post-mutation listing. Returned distinguishes the two so the
// session's checked-out list can be updated.
type CirculationDoneMsg struct {
	Books    []domain.Book
	Notice   string
	ISBN     string
	Returned bool
	Err      error
}

// UsersLoadedMsg carries a user listing for the dashboard. Filter names
// the view the listing was fetched for.
type UsersLoadedMsg struct {
	Users  []domain.User
	Filter domain.UserFilter
}

// UsersLoadFailedMsg reports a failed dashboard fetch.
type UsersLoadFailedMsg struct {
	Filter domain.UserFilter
	Err    error
}

// StatusUpdatedMsg reports the outcome of an account activation toggle.
type StatusUpdatedMsg struct {
	Message string
	Err     error
}

// StatusMsg sets the transient status line.
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status line after its display window.
type ClearStatusMsg struct{}
