package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stacksapp/stacks/internal/domain"
)

func sampleUsers() []domain.User {
	return []domain.User{
		{ID: "123456789", Role: domain.RoleStudent, Name: "Bob Chen", Active: true},
		{ID: "987654321", Role: domain.RoleStudent, Name: "Dana Cruz", Active: false,
			OverdueBooks: []string{"978-1", "978-2", "978-3"}},
	}
}

func TestAllUsersViewShowsEveryField(t *testing.T) {
	l := NewUserList()
	l.SetSize(80, 24)
	l.SetUsers(sampleUsers(), domain.FilterAllUsers)

	view := l.View(0)
	for _, want := range []string{"123456789", "Bob Chen", "Role:", "Account:"} {
		if !strings.Contains(view, want) {
			t.Fatalf("all users view missing %q", want)
		}
	}
}

func TestOverdueViewSuppressesRoleAndStatus(t *testing.T) {
	l := NewUserList()
	l.SetSize(80, 24)
	l.SetUsers(sampleUsers(), domain.FilterExcessiveOverdue)

	view := l.View(0)
	if strings.Contains(view, "Role:") || strings.Contains(view, "Account:") {
		t.Fatal("overdue view must hide role and active status")
	}
	if !strings.Contains(view, "Overdue books:") {
		t.Fatal("overdue view should list overdue counts")
	}
}

func TestClearDropsRowsImmediately(t *testing.T) {
	l := NewUserList()
	l.SetSize(80, 24)
	l.SetUsers(sampleUsers(), domain.FilterAllUsers)
	if l.SelectedUser() == nil {
		t.Fatal("listing should be populated")
	}

	l.Clear(domain.FilterNeedsApproval)
	if l.SelectedUser() != nil {
		t.Fatal("clear must drop rows before the next fetch lands")
	}
	if !l.Loading() {
		t.Fatal("cleared list should report loading")
	}
	if l.ActiveFilter() != domain.FilterNeedsApproval {
		t.Fatalf("filter: got %v", l.ActiveFilter())
	}
}

func TestLatestResponseWins(t *testing.T) {
	l := NewUserList()
	l.SetSize(80, 24)
	l.Clear(domain.FilterNeedsApproval)

	// A slow response for the previous filter lands after the switch;
	// it still replaces the listing, and a later response replaces it
	// again.
	l.SetUsers(sampleUsers(), domain.FilterAllUsers)
	if l.ActiveFilter() != domain.FilterAllUsers {
		t.Fatal("late response should still land")
	}

	l.SetUsers(sampleUsers()[:1], domain.FilterNeedsApproval)
	if l.ActiveFilter() != domain.FilterNeedsApproval {
		t.Fatal("latest response should win")
	}
}

func TestNameFilter(t *testing.T) {
	l := NewUserList()
	l.SetSize(80, 24)
	l.SetUsers(sampleUsers(), domain.FilterAllUsers)

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	for _, r := range "dana" {
		l, _ = l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	sel := l.SelectedUser()
	if sel == nil || sel.Name != "Dana Cruz" {
		t.Fatalf("filtered selection: got %+v", sel)
	}

	// esc clears the filter and restores the full listing.
	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyEsc})
	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	if sel := l.SelectedUser(); sel == nil || sel.Name != "Dana Cruz" {
		t.Fatalf("full listing after esc: got %+v", sel)
	}
}
