package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stacksapp/stacks/internal/domain"
)

func roleOptions() []domain.RoleOption {
	return []domain.RoleOption{
		{Name: "librarian", ID: 1},
		{Name: "student", ID: 2},
	}
}

func typeString(f SignInForm, s string) SignInForm {
	for _, r := range s {
		f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return f
}

func press(f SignInForm, key tea.KeyType) (SignInForm, *domain.Credentials) {
	f, _, creds := f.Update(tea.KeyMsg{Type: key})
	return f, creds
}

func TestRoleSelection(t *testing.T) {
	f := NewSignInForm()
	f.SetRoleOptions(roleOptions())

	if f.Role() != domain.RoleUnselected {
		t.Fatalf("initial role: got %v", f.Role())
	}

	f, _ = press(f, tea.KeyRight)
	if f.Role() != domain.RoleLibrarian {
		t.Fatalf("after right: got %v", f.Role())
	}

	f, _ = press(f, tea.KeyRight)
	if f.Role() != domain.RoleStudent {
		t.Fatalf("after second right: got %v", f.Role())
	}

	// Number keys pick a role directly while the selector is focused.
	f = typeString(f, "1")
	if f.Role() != domain.RoleLibrarian {
		t.Fatalf("after 1: got %v", f.Role())
	}
}

func TestUserIDErrorTracksKeystrokes(t *testing.T) {
	f := NewSignInForm()
	f.SetRoleOptions(roleOptions())
	f, _ = press(f, tea.KeyRight) // librarian
	f, _ = press(f, tea.KeyTab)   // focus user id

	f = typeString(f, "12")
	if !strings.Contains(f.View(), "User ID must be exactly 4 digits for Librarians") {
		t.Fatal("partial id should show the librarian digit rule")
	}

	f = typeString(f, "34")
	if strings.Contains(f.View(), "User ID must be exactly 4 digits") {
		t.Fatal("valid id should clear the error")
	}
}

func TestRoleRequiredBeforeUserID(t *testing.T) {
	f := NewSignInForm()
	f.SetRoleOptions(roleOptions())
	f, _ = press(f, tea.KeyTab) // skip role selection
	f = typeString(f, "1")

	if !strings.Contains(f.View(), "Please select a role first") {
		t.Fatal("typing a user id without a role should prompt for one")
	}
}

func TestSubmitGating(t *testing.T) {
	f := NewSignInForm()
	f.SetRoleOptions(roleOptions())
	f, _ = press(f, tea.KeyRight) // librarian
	f, _ = press(f, tea.KeyTab)
	f = typeString(f, "1234")
	f, _ = press(f, tea.KeyTab)
	f = typeString(f, "ann")
	f, _ = press(f, tea.KeyTab)

	if f.CanSubmit() {
		t.Fatal("empty password must block submission")
	}
	f, creds := press(f, tea.KeyEnter)
	if creds != nil {
		t.Fatal("enter with an invalid form must not submit")
	}

	f = typeString(f, "secret")
	if !f.CanSubmit() {
		t.Fatal("complete form should submit")
	}
	_, creds = press(f, tea.KeyEnter)
	if creds == nil {
		t.Fatal("enter on a valid form should submit")
	}
	if creds.Role != domain.RoleLibrarian || creds.UserID != "1234" ||
		creds.Username != "ann" || creds.Password != "secret" {
		t.Fatalf("credentials: got %+v", creds)
	}
}

func TestExistingUsernameHint(t *testing.T) {
	f := NewSignInForm()
	f.SetRoleOptions(roleOptions())
	f.SetKnownUsernames([]string{"ann"})
	f, _ = press(f, tea.KeyRight)
	f, _ = press(f, tea.KeyTab)
	f = typeString(f, "1234")
	f, _ = press(f, tea.KeyTab)

	f = typeString(f, "an")
	if strings.Contains(f.View(), "existing account") {
		t.Fatal("partial name must not hint")
	}
	f = typeString(f, "n")
	if !strings.Contains(f.View(), "existing account") {
		t.Fatal("known name should hint")
	}
}
