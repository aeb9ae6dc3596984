package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stacksapp/stacks/internal/domain"
	"github.com/stacksapp/stacks/internal/tui/styles"
)

// Navbar renders the top navigation. Students only ever see the
// catalog link; the users link is librarian-only.
func Navbar(role domain.Role, usersActive bool, width int) string {
	catalog := styles.NavActiveStyle.Render("Catalog")
	if usersActive {
		catalog = styles.NavInactiveStyle.Render("Catalog")
	}
	items := []string{styles.TitleStyle.Render("Stacks"), catalog}

	if role == domain.RoleLibrarian {
		users := styles.NavInactiveStyle.Render("Users")
		if usersActive {
			users = styles.NavActiveStyle.Render("Users")
		}
		items = append(items, users)
	}

	bar := strings.Join(items, "  ")
	if width > 0 {
		return lipgloss.NewStyle().Width(width).Render(bar)
	}
	return bar
}
