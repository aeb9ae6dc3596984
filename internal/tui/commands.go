package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stacksapp/stacks/internal/domain"
	"github.com/stacksapp/stacks/internal/service"
)

const requestTimeout = 30 * time.Second

// TickCmd schedules the next spinner frame.
func TickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ClearStatusCmd clears the status line after a short display window.
func ClearStatusCmd() tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// LoadRolesCmd fetches the role options for the sign-in selector. A
// failure is already logged by the service; the selector stays empty.
func LoadRolesCmd(auth *service.AuthService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		options, err := auth.Roles(ctx)
		if err != nil {
			return RolesLoadedMsg{}
		}
		return RolesLoadedMsg{Options: options}
	}
}

// LoadUsernamesCmd fetches the known usernames for the sign-in hint.
func LoadUsernamesCmd(auth *service.AuthService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		names, err := auth.Usernames(ctx)
		if err != nil {
			return UsernamesLoadedMsg{}
		}
		return UsernamesLoadedMsg{Names: names}
	}
}

// SignInCmd submits credentials for verification.
func SignInCmd(auth *service.AuthService, creds domain.Credentials) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		grant, err := auth.SignIn(ctx, creds)
		if err != nil {
			return SignInFailedMsg{Message: domain.UserMessage(err, "Sign in failed. Please try again.")}
		}
		return SignedInMsg{Grant: *grant}
	}
}

// LoadBooksCmd fetches the catalog listing.
func LoadBooksCmd(catalog *service.CatalogService, role domain.Role) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		books, err := catalog.List(ctx, role)
		if err != nil {
			return CatalogReloadedMsg{Err: err}
		}
		return BooksLoadedMsg{Books: books}
	}
}

// DeleteBookCmd removes a book and refetches the catalog.
func DeleteBookCmd(catalog *service.CatalogService, role domain.Role, isbn string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		books, notice, err := catalog.Delete(ctx, role, isbn)
		return CatalogReloadedMsg{Books: books, Notice: notice, Err: err}
	}
}

// AddBookCmd registers a new book and refetches the catalog.
func AddBookCmd(catalog *service.CatalogService, role domain.Role, book domain.Book) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		books, notice, err := catalog.Add(ctx, role, book)
		return CatalogReloadedMsg{Books: books, Notice: notice, Err: err}
	}
}

// UpdateBookCmd applies a partial edit to a book and refetches the
// catalog.
func UpdateBookCmd(catalog *service.CatalogService, role domain.Role, isbn string, upd domain.BookUpdate) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		books, notice, err := catalog.Update(ctx, role, isbn, upd)
		return CatalogReloadedMsg{Books: books, Notice: notice, Err: err}
	}
}

// BorrowBookCmd checks a book out to the signed-in student and
// refetches the catalog.
func BorrowBookCmd(circ *service.CirculationService, role domain.Role, userID, isbn string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		books, notice, err := circ.Borrow(ctx, role, userID, isbn)
		return CirculationDoneMsg{Books: books, Notice: notice, ISBN: isbn, Err: err}
	}
}

// ReturnBookCmd checks a book back in and refetches the catalog.
func ReturnBookCmd(circ *service.CirculationService, role domain.Role, userID, isbn string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		books, notice, err := circ.Return(ctx, role, userID, isbn)
		return CirculationDoneMsg{Books: books, Notice: notice, ISBN: isbn, Returned: true, Err: err}
	}
}

// LoadUsersCmd fetches the dashboard listing for a filter.
func LoadUsersCmd(dir *service.DirectoryService, filter domain.UserFilter) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		users, err := dir.Users(ctx, filter)
		if err != nil {
			return UsersLoadFailedMsg{Filter: filter, Err: err}
		}
		return UsersLoadedMsg{Users: users, Filter: filter}
	}
}

// SetActiveStatusCmd toggles an account's active flag. The listing is
// not refetched; a manual refresh picks up the change.
func SetActiveStatusCmd(dir *service.DirectoryService, actor domain.Role, userID string, active bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		msg, err := dir.SetActiveStatus(ctx, actor, userID, active)
		return StatusUpdatedMsg{Message: msg, Err: err}
	}
}
