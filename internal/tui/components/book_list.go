package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/stacksapp/stacks/internal/domain"
	"github.com/stacksapp/stacks/internal/tui/styles"
)

// BookList renders the catalog with cursor navigation and an optional
// fuzzy title/author filter.
type BookList struct {
	books    []domain.Book
	visible  []int
	cursor   int
	offset   int
	loading  bool
	filter   textinput.Model
	checked  map[string]struct{}
	width    int
	height   int
	loaded   bool
}

func NewBookList() BookList {
	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter by title or author"
	filter.CharLimit = 64
	return BookList{
		filter:  filter,
		checked: make(map[string]struct{}),
	}
}

func (l *BookList) SetSize(w, h int) {
	l.width = w
	l.height = h
	l.filter.Width = w - 4
}

// SetBooks installs a fresh listing and re-applies any active filter.
func (l *BookList) SetBooks(books []domain.Book) {
	l.books = books
	l.loading = false
	l.loaded = true
	l.applyFilter()
	l.clampCursor()
}

// Clear drops the listing ahead of a refetch so a stale catalog never
// lingers behind the spinner.
func (l *BookList) Clear() {
	l.books = nil
	l.visible = nil
	l.cursor = 0
	l.offset = 0
	l.loading = true
}

func (l *BookList) Loading() bool { return l.loading }

// SetCheckedOut installs the signed-in student's checked-out ISBNs so
// borrowed copies can be marked.
func (l *BookList) SetCheckedOut(isbns []string) {
	l.checked = make(map[string]struct{}, len(isbns))
	for _, isbn := range isbns {
		l.checked[isbn] = struct{}{}
	}
}

// SelectedBook reports the book under the cursor, nil when the visible
// listing is empty.
func (l *BookList) SelectedBook() *domain.Book {
	if l.cursor < 0 || l.cursor >= len(l.visible) {
		return nil
	}
	b := l.books[l.visible[l.cursor]]
	return &b
}

// Filtering reports whether the filter input is capturing keystrokes.
func (l *BookList) Filtering() bool { return l.filter.Focused() }

// Update handles navigation and filter editing. Action keys are handled
// by the app, which queries SelectedBook.
func (l BookList) Update(msg tea.KeyMsg) (BookList, tea.Cmd) {
	if l.filter.Focused() {
		switch msg.String() {
		case "enter", "esc":
			l.filter.Blur()
			if msg.String() == "esc" {
				l.filter.SetValue("")
				l.applyFilter()
			}
			return l, nil
		}
		var cmd tea.Cmd
		l.filter, cmd = l.filter.Update(msg)
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
		l.filter.Focus()
		return l, textinput.Blink
	}
	l.scrollToCursor()
	return l, nil
}

func (l *BookList) applyFilter() {
	query := strings.TrimSpace(l.filter.Value())
	if query == "" {
		l.visible = make([]int, len(l.books))
		for i := range l.books {
			l.visible[i] = i
		}
		return
	}
	haystack := make([]string, len(l.books))
	for i, b := range l.books {
		haystack[i] = b.Title + " " + b.Author
	}
	matches := fuzzy.Find(query, haystack)
	l.visible = make([]int, len(matches))
	for i, m := range matches {
		l.visible[i] = m.Index
	}
}

func (l *BookList) clampCursor() {
	if l.cursor >= len(l.visible) {
		l.cursor = len(l.visible) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.scrollToCursor()
}

func (l *BookList) scrollToCursor() {
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

func (l *BookList) rowBudget() int {
	// Header, filter line and detail panel take a fixed slice.
	budget := l.height - 8
	if budget < 3 {
		budget = 3
	}
	return budget
}

func (l BookList) View(spinnerFrame int) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Catalog"))
	b.WriteString(styles.LabelStyle.Render(fmt.Sprintf("  %d books", len(l.visible))))
	b.WriteString("\n")

	if l.filter.Focused() || l.filter.Value() != "" {
		b.WriteString(l.filter.View())
		b.WriteString("\n")
	}

	switch {
	case l.loading:
		frame := styles.SpinnerFrames[spinnerFrame%len(styles.SpinnerFrames)]
		b.WriteString("\n  " + frame + " Fetching catalog...\n")
	case len(l.visible) == 0 && l.loaded:
		b.WriteString("\n" + styles.HintStyle.Render("  No books to show.") + "\n")
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

	if sel := l.SelectedBook(); sel != nil && !l.loading {
		b.WriteString("\n")
		b.WriteString(l.detailView(*sel))
	}
	return b.String()
}

func (l BookList) rowView(i int) string {
	book := l.books[l.visible[i]]
	marker := "  "
	if _, ok := l.checked[book.ISBN]; ok {
		marker = styles.NoticeStyle.Render("● ")
	}
	line := fmt.Sprintf("%s%-16s %-32s %s", marker, book.ISBN, truncate(book.Title, 32), book.Author)
	if i == l.cursor {
		return styles.SelectedStyle.Render(line)
	}
	return line
}

func (l BookList) detailView(book domain.Book) string {
	avail := fmt.Sprintf("%d of %d available", book.AvailableCopies, book.TotalCopies)
	style := styles.NoticeStyle
	if book.AvailableCopies == 0 {
		style = styles.ErrorStyle
	}
	lines := []string{
		styles.LabelStyle.Render("ISBN: ") + book.ISBN,
		styles.LabelStyle.Render("Title: ") + book.Title,
		styles.LabelStyle.Render("Author: ") + book.Author,
		styles.LabelStyle.Render("Published: ") + fmt.Sprintf("%d", book.PublishedYear),
		styles.LabelStyle.Render("Copies: ") + style.Render(avail),
	}
	return styles.BorderStyle.Render(strings.Join(lines, "\n"))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
