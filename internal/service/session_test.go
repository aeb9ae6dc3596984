package service

import (
	"testing"

	"github.com/stacksapp/stacks/internal/domain"
)

func TestSessionSignedIn(t *testing.T) {
	svc := NewSessionService()
	svc.SetRole(domain.RoleStudent)
	svc.SignedIn(domain.AuthGrant{
		Message:         "Welcome back!",
		UserID:          "123456789",
		CheckedOutBooks: []string{"978-1", "978-2"},
	})

	s := svc.Session()
	if !s.Authenticated {
		t.Fatal("session should be authenticated")
	}
	if s.UserID != "123456789" {
		t.Fatalf("user id: got %q", s.UserID)
	}
	if len(s.CheckedOutBooks) != 2 {
		t.Fatalf("checkouts: got %d", len(s.CheckedOutBooks))
	}

	// The returned session is a snapshot; mutating it must not touch
	// the service's state.
	s.CheckedOutBooks[0] = "mutated"
	if svc.Session().CheckedOutBooks[0] != "978-1" {
		t.Fatal("session snapshot leaked internal slice")
	}
}

func TestSessionCheckedOutBooks(t *testing.T) {
	svc := NewSessionService()
	svc.SignedIn(domain.AuthGrant{UserID: "123456789"})

	svc.AddCheckedOut("978-1")
	svc.AddCheckedOut("978-1") // duplicate borrow is a single entry
	svc.AddCheckedOut("978-2")
	if got := len(svc.Session().CheckedOutBooks); got != 2 {
		t.Fatalf("want 2 checkouts, got %d", got)
	}
	if !svc.HasCheckedOut("978-1") {
		t.Fatal("978-1 should be checked out")
	}

	svc.RemoveCheckedOut("978-1")
	if svc.HasCheckedOut("978-1") {
		t.Fatal("978-1 should be returned")
	}
	if !svc.HasCheckedOut("978-2") {
		t.Fatal("978-2 should remain checked out")
	}
}

func TestNoticeIsOneShot(t *testing.T) {
	svc := NewSessionService()

	if got := svc.ConsumeNotice(); got != "" {
		t.Fatalf("fresh session has no notice, got %q", got)
	}

	svc.PostNotice("Book deleted successfully.")
	if got := svc.ConsumeNotice(); got != "Book deleted successfully." {
		t.Fatalf("got %q", got)
	}
	if got := svc.ConsumeNotice(); got != "" {
		t.Fatalf("notice must clear once consumed, got %q", got)
	}

	// Posting the same text again re-arms the notice.
	svc.PostNotice("Book deleted successfully.")
	if got := svc.ConsumeNotice(); got != "Book deleted successfully." {
		t.Fatalf("repeat notice: got %q", got)
	}
}
