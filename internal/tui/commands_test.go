package tui

import (
	"testing"

	"github.com/stacksapp/stacks/internal/domain"
	"github.com/stacksapp/stacks/internal/service"
)

func TestUpdateBookCmdReloadsCatalog(t *testing.T) {
	backend := &stubBackend{books: []domain.Book{
		{ISBN: "978-1", Title: "Dune", Author: "Herbert"},
	}}
	catalog := service.NewCatalogService(backend, nil)

	title := "Dune Messiah"
	cmd := UpdateBookCmd(catalog, domain.RoleLibrarian, "978-1", domain.BookUpdate{Title: &title})
	raw := cmd()
	msg, ok := raw.(CatalogReloadedMsg)
	if !ok {
		t.Fatalf("want CatalogReloadedMsg, got %T", raw)
	}
	if msg.Err != nil {
		t.Fatalf("update: %v", msg.Err)
	}
	if msg.Notice != "Book updated successfully." {
		t.Fatalf("notice: got %q", msg.Notice)
	}
	if len(msg.Books) != 1 {
		t.Fatalf("reload: got %d books", len(msg.Books))
	}
}

func TestSignInCmdMapsRejection(t *testing.T) {
	auth := service.NewAuthService(&stubBackend{}, nil)

	// Client-side validation failures never reach the wire; the command
	// reports a generic failure message.
	cmd := SignInCmd(auth, domain.Credentials{Role: domain.RoleLibrarian, UserID: "12"})
	raw := cmd()
	msg, ok := raw.(SignInFailedMsg)
	if !ok {
		t.Fatalf("want SignInFailedMsg, got %T", raw)
	}
	if msg.Message == "" {
		t.Fatal("failure message must not be empty")
	}
}
