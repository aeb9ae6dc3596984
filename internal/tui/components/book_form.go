package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stacksapp/stacks/internal/domain"
	"github.com/stacksapp/stacks/internal/tui/styles"
)

const (
	bookFieldISBN = iota
	bookFieldTitle
	bookFieldAuthor
	bookFieldYear
	bookFieldTotal
	bookFieldAvailable
	bookFieldCount
)

var bookFieldLabels = [bookFieldCount]string{
	"ISBN", "Title", "Author", "Published year", "Total copies", "Available copies",
}

// BookForm collects a new catalog entry from the librarian.
type BookForm struct {
	inputs [bookFieldCount]textinput.Model
	errors [bookFieldCount]string
	focus  int
	width  int
}

func NewBookForm() BookForm {
	f := BookForm{}
	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = "> "
		in.CharLimit = 64
		in.Width = 32
		f.inputs[i] = in
	}
	f.inputs[bookFieldISBN].Focus()
	return f
}

func (f *BookForm) SetWidth(w int) { f.width = w }

// Reset clears all fields ahead of a fresh entry.
func (f *BookForm) Reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.errors[i] = ""
	}
	f.setFocus(bookFieldISBN)
}

// Update handles a key press. When the form validates and is submitted
// it returns the new book; esc reports cancelled.
func (f BookForm) Update(msg tea.KeyMsg) (BookForm, tea.Cmd, *domain.Book, bool) {
	switch msg.String() {
	case "esc":
		return f, nil, nil, true
	case "tab", "down":
		f.setFocus((f.focus + 1) % bookFieldCount)
		return f, nil, nil, false
	case "shift+tab", "up":
		f.setFocus((f.focus - 1 + bookFieldCount) % bookFieldCount)
		return f, nil, nil, false
	case "enter":
		if f.focus != bookFieldCount-1 {
			f.setFocus(f.focus + 1)
			return f, nil, nil, false
		}
		book, ok := f.validate()
		if !ok {
			return f, nil, nil, false
		}
		return f, nil, book, false
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	f.errors[f.focus] = ""
	return f, cmd, nil, false
}

func (f *BookForm) validate() (*domain.Book, bool) {
	book := domain.Book{
		ISBN:   strings.TrimSpace(f.inputs[bookFieldISBN].Value()),
		Title:  strings.TrimSpace(f.inputs[bookFieldTitle].Value()),
		Author: strings.TrimSpace(f.inputs[bookFieldAuthor].Value()),
	}
	ok := true
	for i, required := range map[int]string{
		bookFieldISBN:   book.ISBN,
		bookFieldTitle:  book.Title,
		bookFieldAuthor: book.Author,
	} {
		if required == "" {
			f.errors[i] = bookFieldLabels[i] + " must not be empty"
			ok = false
		}
	}
	for i, dst := range map[int]*int{
		bookFieldYear:      &book.PublishedYear,
		bookFieldTotal:     &book.TotalCopies,
		bookFieldAvailable: &book.AvailableCopies,
	} {
		n, err := strconv.Atoi(strings.TrimSpace(f.inputs[i].Value()))
		if err != nil || n < 0 {
			f.errors[i] = bookFieldLabels[i] + " must be a non-negative number"
			ok = false
			continue
		}
		*dst = n
	}
	if ok && book.AvailableCopies > book.TotalCopies {
		f.errors[bookFieldAvailable] = "Available copies must not exceed total copies"
		ok = false
	}
	if !ok {
		return nil, false
	}
	return &book, true
}

func (f *BookForm) setFocus(target int) {
	f.focus = target
	for i := range f.inputs {
		if i == target {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (f BookForm) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Add Book"))
	b.WriteString("\n\n")
	for i := range f.inputs {
		label := bookFieldLabels[i]
		if i == f.focus {
			b.WriteString(styles.SelectedStyle.Render(label))
		} else {
			b.WriteString(styles.LabelStyle.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
		if f.errors[i] != "" {
			b.WriteString(styles.ErrorStyle.Render("⚠ " + f.errors[i]))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.HintStyle.Render("tab move · enter next/submit · esc cancel"))

	box := styles.FocusedBorderStyle.Render(b.String())
	if f.width > 0 {
		return lipgloss.PlaceHorizontal(f.width, lipgloss.Center, box)
	}
	return box
}
