package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/stacksapp/stacks/internal/domain"
	"github.com/stacksapp/stacks/internal/tui/styles"
)

// UserList renders the librarian dashboard. The active filter decides
// which fields and actions each row exposes.
type UserList struct {
	users      []domain.User
	visible    []int
	cursor     int
	offset     int
	loading    bool
	activeView domain.UserFilter
	nameFilter textinput.Model
	width      int
	height     int
	loaded     bool
}

func NewUserList() UserList {
	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter by name"
	filter.CharLimit = 64
	return UserList{
		activeView: domain.FilterAllUsers,
		nameFilter: filter,
	}
}

func (l *UserList) SetSize(w, h int) {
	l.width = w
	l.height = h
	l.nameFilter.Width = w - 4
}

// ActiveFilter reports the view the listing was last fetched for.
func (l *UserList) ActiveFilter() domain.UserFilter { return l.activeView }

// SetUsers installs a listing fetched for filter. A response for a
// filter the user has already navigated away from still lands; the
// latest response wins.
func (l *UserList) SetUsers(users []domain.User, filter domain.UserFilter) {
	l.users = users
	l.activeView = filter
	l.loading = false
	l.loaded = true
	l.applyFilter()
	l.clampCursor()
}

// Clear drops the listing before a refetch so rows from the previous
// filter never flash under the new heading.
func (l *UserList) Clear(filter domain.UserFilter) {
	l.users = nil
	l.visible = nil
	l.cursor = 0
	l.offset = 0
	l.activeView = filter
	l.loading = true
}

func (l *UserList) Loading() bool { return l.loading }

// SelectedUser reports the user under the cursor, nil when the visible
// listing is empty.
func (l *UserList) SelectedUser() *domain.User {
	if l.cursor < 0 || l.cursor >= len(l.visible) {
		return nil
	}
	u := l.users[l.visible[l.cursor]]
	return &u
}

func (l *UserList) Filtering() bool { return l.nameFilter.Focused() }

func (l UserList) Update(msg tea.KeyMsg) (UserList, tea.Cmd) {
	if l.nameFilter.Focused() {
		switch msg.String() {
		case "enter", "esc":
			l.nameFilter.Blur()
			if msg.String() == "esc" {
				l.nameFilter.SetValue("")
				l.applyFilter()
			}
			return l, nil
		}
		var cmd tea.Cmd
		l.nameFilter, cmd = l.nameFilter.Update(msg)
		l.applyFilter()
		l.clampCursor()
		return l, cmd
	}

	switch msg.String() {
	case "j", "down":
		if l.cursor < len(l.visible)-1 {
			l.cursor++
		}
	case "k", "up":
		if l.cursor > 0 {
			l.cursor--
		}
	case "g", "home":
		l.cursor = 0
	case "G", "end":
		l.cursor = len(l.visible) - 1
		if l.cursor < 0 {
			l.cursor = 0
		}
	case "/":
		l.nameFilter.Focus()
		return l, textinput.Blink
	}
	l.scrollToCursor()
	return l, nil
}

func (l *UserList) applyFilter() {
	query := strings.TrimSpace(l.nameFilter.Value())
	l.visible = l.visible[:0]
	for i, u := range l.users {
		if query == "" || fuzzy.MatchNormalizedFold(query, u.Name) {
			l.visible = append(l.visible, i)
		}
	}
}

func (l *UserList) clampCursor() {
	if l.cursor >= len(l.visible) {
		l.cursor = len(l.visible) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.scrollToCursor()
}

func (l *UserList) scrollToCursor() {
	rows := l.rowBudget()
	if rows <= 0 {
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+rows {
		l.offset = l.cursor - rows + 1
	}
}

func (l *UserList) rowBudget() int {
	budget := l.height - 9
	if budget < 3 {
		budget = 3
	}
	return budget
}

func (l UserList) View(spinnerFrame int) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Users"))
	b.WriteString("\n")
	b.WriteString(l.filterTabs())
	b.WriteString("\n")

	if l.nameFilter.Focused() || l.nameFilter.Value() != "" {
		b.WriteString(l.nameFilter.View())
		b.WriteString("\n")
	}

	switch {
	case l.loading:
		frame := styles.SpinnerFrames[spinnerFrame%len(styles.SpinnerFrames)]
		b.WriteString("\n  " + frame + " Fetching users...\n")
	case len(l.visible) == 0 && l.loaded:
		b.WriteString("\n" + styles.HintStyle.Render("  No users in this view.") + "\n")
	default:
		rows := l.rowBudget()
		end := l.offset + rows
		if end > len(l.visible) {
			end = len(l.visible)
		}
		for i := l.offset; i < end; i++ {
			b.WriteString(l.rowView(i))
			b.WriteString("\n")
		}
	}

	if sel := l.SelectedUser(); sel != nil && !l.loading {
		b.WriteString("\n")
		b.WriteString(l.detailView(*sel))
	}
	return b.String()
}

func (l UserList) filterTabs() string {
	filters := []domain.UserFilter{
		domain.FilterAllUsers,
		domain.FilterNeedsApproval,
		domain.FilterExcessiveOverdue,
	}
	parts := make([]string, len(filters))
	for i, f := range filters {
		label := fmt.Sprintf("%d %s", i+1, f)
		if f == l.activeView {
			parts[i] = styles.NavActiveStyle.Render(label)
		} else {
			parts[i] = styles.NavInactiveStyle.Render(label)
		}
	}
	return strings.Join(parts, " ")
}

func (l UserList) rowView(i int) string {
	u := l.users[l.visible[i]]
	line := fmt.Sprintf("  %-11s %-24s %s", u.ID, truncate(u.Name, 24), l.rowSummary(u))
	if i == l.cursor {
		return styles.SelectedStyle.Render(line)
	}
	return line
}

func (l UserList) rowSummary(u domain.User) string {
	if l.activeView == domain.FilterExcessiveOverdue {
		return fmt.Sprintf("%d overdue", len(u.OverdueBooks))
	}
	if u.Active {
		return "active"
	}
	return "inactive"
}

// detailView shows the field set the active view calls for. The
// overdue view hides role and active status; the other views show
// every field.
func (l UserList) detailView(u domain.User) string {
	lines := []string{
		styles.LabelStyle.Render("User ID: ") + u.ID,
		styles.LabelStyle.Render("Name: ") + u.Name,
	}
	if l.activeView != domain.FilterExcessiveOverdue {
		lines = append(lines, styles.LabelStyle.Render("Role: ")+u.Role.String())
		status := styles.NoticeStyle.Render("active")
		if !u.Active {
			status = styles.ErrorStyle.Render("inactive")
		}
		lines = append(lines, styles.LabelStyle.Render("Account: ")+status)
	}
	overdue := "N/A"
	if len(u.OverdueBooks) > 0 {
		overdue = fmt.Sprintf("%d (%s)", len(u.OverdueBooks), strings.Join(u.OverdueBooks, ", "))
	}
	lines = append(lines, styles.LabelStyle.Render("Overdue books: ")+overdue)
	return styles.BorderStyle.Render(strings.Join(lines, "\n"))
}
