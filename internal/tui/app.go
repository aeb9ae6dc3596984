package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stacksapp/stacks/internal/domain"
	"github.com/stacksapp/stacks/internal/service"
	"github.com/stacksapp/stacks/internal/tui/components"
	"github.com/stacksapp/stacks/internal/tui/styles"
)

// ApplicationState is the top-level screen the client is on.
type ApplicationState int

const (
	StateSignIn ApplicationState = iota
	StateBrowsing
)

// Screen selects the view within the browsing state.
type Screen int

const (
	ScreenCatalog Screen = iota
	ScreenUsers
)

// Model is the root bubbletea model wiring the services to the views.
type Model struct {
	state  ApplicationState
	screen Screen
	width  int
	height int

	sessions    *service.SessionService
	auth        *service.AuthService
	catalog     *service.CatalogService
	circulation *service.CirculationService
	directory   *service.DirectoryService

	signIn   components.SignInForm
	books    components.BookList
	users    components.UserList
	bookForm components.BookForm
	adding   bool

	status      string
	statusIsErr bool
	spinner     int
}

func NewModel(
	sessions *service.SessionService,
	auth *service.AuthService,
	catalog *service.CatalogService,
	circulation *service.CirculationService,
	directory *service.DirectoryService,
) Model {
	return Model{
		sessions:    sessions,
		auth:        auth,
		catalog:     catalog,
		circulation: circulation,
		directory:   directory,
		signIn:      components.NewSignInForm(),
		books:       components.NewBookList(),
		users:       components.NewUserList(),
		bookForm:    components.NewBookForm(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadRolesCmd(m.auth),
		LoadUsernamesCmd(m.auth),
		TickCmd(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.signIn.SetWidth(msg.Width)
		m.bookForm.SetWidth(msg.Width)
		m.books.SetSize(msg.Width, msg.Height-4)
		m.users.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case TickMsg:
		m.spinner++
		return m, TickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case RolesLoadedMsg:
		m.signIn.SetRoleOptions(msg.Options)
		return m, nil

	case UsernamesLoadedMsg:
		m.signIn.SetKnownUsernames(msg.Names)
		return m, nil

	case SignedInMsg:
		m.sessions.SignedIn(msg.Grant)
		m.sessions.PostNotice(msg.Grant.Message)
		m.state = StateBrowsing
		m.screen = ScreenCatalog
		m.books.Clear()
		m.books.SetCheckedOut(msg.Grant.CheckedOutBooks)
		return m, tea.Batch(
			LoadBooksCmd(m.catalog, m.sessions.Session().Role),
			m.flushNotice(false),
		)

	case SignInFailedMsg:
		m.sessions.PostNotice(msg.Message)
		return m, m.flushNotice(true)

	case BooksLoadedMsg:
		m.books.SetBooks(msg.Books)
		return m, nil

	case CatalogReloadedMsg:
		m.books.SetBooks(msg.Books)
		if msg.Err != nil {
			m.sessions.PostNotice(domain.UserMessage(msg.Err, "The request could not be completed."))
			return m, m.flushNotice(true)
		}
		if msg.Notice != "" {
			m.sessions.PostNotice(msg.Notice)
			return m, m.flushNotice(false)
		}
		return m, nil

	case CirculationDoneMsg:
		m.books.SetBooks(msg.Books)
		if msg.Err != nil {
			m.sessions.PostNotice(domain.UserMessage(msg.Err, "The request could not be completed."))
			return m, m.flushNotice(true)
		}
		if msg.Returned {
			m.sessions.RemoveCheckedOut(msg.ISBN)
		} else {
			m.sessions.AddCheckedOut(msg.ISBN)
		}
		m.books.SetCheckedOut(m.sessions.Session().CheckedOutBooks)
		if msg.Notice != "" {
			m.sessions.PostNotice(msg.Notice)
			return m, m.flushNotice(false)
		}
		return m, nil

	case UsersLoadedMsg:
		m.users.SetUsers(msg.Users, msg.Filter)
		return m, nil

	case UsersLoadFailedMsg:
		m.users.SetUsers(nil, msg.Filter)
		m.sessions.PostNotice(domain.UserMessage(msg.Err, "The user listing could not be fetched."))
		return m, m.flushNotice(true)

	case StatusUpdatedMsg:
		if msg.Err != nil {
			m.sessions.PostNotice(domain.UserMessage(msg.Err, "The account could not be updated."))
			return m, m.flushNotice(true)
		}
		m.sessions.PostNotice(msg.Message)
		return m, m.flushNotice(false)

	case ClearStatusMsg:
		m.status = ""
		m.statusIsErr = false
		return m, nil
	}
	return m, nil
}

// flushNotice moves the pending one-shot notice onto the status line
// and schedules its removal. Consuming clears the notice, so the same
// message posted again later displays again.
func (m *Model) flushNotice(isErr bool) tea.Cmd {
	notice := m.sessions.ConsumeNotice()
	if notice == "" {
		return nil
	}
	m.status = notice
	m.statusIsErr = isErr
	return ClearStatusCmd()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.state == StateSignIn {
		return m.handleSignInKey(msg)
	}
	if m.adding {
		return m.handleBookFormKey(msg)
	}

	// "q" quits unless a filter input is capturing text.
	filtering := (m.screen == ScreenCatalog && m.books.Filtering()) ||
		(m.screen == ScreenUsers && m.users.Filtering())
	if msg.String() == "q" && !filtering {
		return m, tea.Quit
	}

	if msg.String() == "tab" && !filtering {
		return m.switchScreen()
	}

	if m.screen == ScreenUsers {
		return m.handleUsersKey(msg)
	}
	return m.handleCatalogKey(msg)
}

func (m Model) handleSignInKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var creds *domain.Credentials
	m.signIn, cmd, creds = m.signIn.Update(msg)
	m.sessions.SetRole(m.signIn.Role())
	if creds != nil {
		m.status = ""
		return m, tea.Batch(cmd, SignInCmd(m.auth, *creds))
	}
	return m, cmd
}

func (m Model) handleBookFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var book *domain.Book
	var cancelled bool
	m.bookForm, cmd, book, cancelled = m.bookForm.Update(msg)
	if cancelled {
		m.adding = false
		return m, nil
	}
	if book != nil {
		m.adding = false
		m.books.Clear()
		return m, AddBookCmd(m.catalog, m.sessions.Session().Role, *book)
	}
	return m, cmd
}

// switchScreen moves between catalog and dashboard. Both screens fetch
// on entry; the dashboard keeps its previously selected filter.
func (m Model) switchScreen() (tea.Model, tea.Cmd) {
	if m.sessions.Session().Role != domain.RoleLibrarian {
		return m, nil
	}
	if m.screen == ScreenCatalog {
		m.screen = ScreenUsers
		filter := m.users.ActiveFilter()
		m.users.Clear(filter)
		return m, LoadUsersCmd(m.directory, filter)
	}
	m.screen = ScreenCatalog
	m.books.Clear()
	return m, LoadBooksCmd(m.catalog, m.sessions.Session().Role)
}

func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.books.Filtering() {
		var cmd tea.Cmd
		m.books, cmd = m.books.Update(msg)
		return m, cmd
	}

	session := m.sessions.Session()
	switch msg.String() {
	case "r":
		m.books.Clear()
		return m, LoadBooksCmd(m.catalog, session.Role)

	case "d":
		if session.Role != domain.RoleLibrarian {
			break
		}
		sel := m.books.SelectedBook()
		if sel == nil {
			break
		}
		m.books.Clear()
		return m, DeleteBookCmd(m.catalog, session.Role, sel.ISBN)

	case "n":
		if session.Role != domain.RoleLibrarian {
			break
		}
		m.adding = true
		m.bookForm.Reset()
		return m, nil

	case "u":
		// An edited book is confirmed by refetching the catalog.
		if session.Role != domain.RoleLibrarian {
			break
		}
		m.books.Clear()
		return m, LoadBooksCmd(m.catalog, session.Role)

	case "b":
		if session.Role != domain.RoleStudent {
			break
		}
		sel := m.books.SelectedBook()
		if sel == nil || sel.AvailableCopies == 0 {
			break
		}
		m.books.Clear()
		return m, BorrowBookCmd(m.circulation, session.Role, session.UserID, sel.ISBN)

	case "t":
		if session.Role != domain.RoleStudent {
			break
		}
		sel := m.books.SelectedBook()
		if sel == nil || !m.sessions.HasCheckedOut(sel.ISBN) {
			break
		}
		m.books.Clear()
		return m, ReturnBookCmd(m.circulation, session.Role, session.UserID, sel.ISBN)
	}

	var cmd tea.Cmd
	m.books, cmd = m.books.Update(msg)
	return m, cmd
}

func (m Model) handleUsersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.users.Filtering() {
		var cmd tea.Cmd
		m.users, cmd = m.users.Update(msg)
		return m, cmd
	}

	session := m.sessions.Session()
	switch msg.String() {
	case "1", "2", "3":
		filter := domain.FilterAllUsers
		switch msg.String() {
		case "2":
			filter = domain.FilterNeedsApproval
		case "3":
			filter = domain.FilterExcessiveOverdue
		}
		m.users.Clear(filter)
		return m, LoadUsersCmd(m.directory, filter)

	case "r":
		filter := m.users.ActiveFilter()
		m.users.Clear(filter)
		return m, LoadUsersCmd(m.directory, filter)

	case "a":
		if m.users.ActiveFilter() != domain.FilterNeedsApproval {
			break
		}
		sel := m.users.SelectedUser()
		if sel == nil {
			break
		}
		return m, SetActiveStatusCmd(m.directory, session.Role, sel.ID, true)

	case "x":
		if m.users.ActiveFilter() != domain.FilterExcessiveOverdue {
			break
		}
		sel := m.users.SelectedUser()
		if sel == nil || !sel.Active {
			// Already-deactivated accounts are not toggled again.
			break
		}
		return m, SetActiveStatusCmd(m.directory, session.Role, sel.ID, false)
	}

	var cmd tea.Cmd
	m.users, cmd = m.users.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.state == StateSignIn {
		body := m.signIn.View()
		if m.height > 0 {
			body = lipgloss.PlaceVertical(m.height-2, lipgloss.Center, body)
		}
		return body + "\n" + m.statusLine()
	}

	if m.adding {
		return m.bookForm.View() + "\n" + m.statusLine()
	}

	session := m.sessions.Session()
	var body string
	if m.screen == ScreenUsers {
		body = m.users.View(m.spinner)
	} else {
		body = m.books.View(m.spinner)
	}

	var b strings.Builder
	b.WriteString(components.Navbar(session.Role, m.screen == ScreenUsers, m.width))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.footer(session.Role))
	return b.String()
}

func (m Model) statusLine() string {
	if m.status == "" {
		return ""
	}
	if m.statusIsErr {
		return styles.ErrorStyle.Render(m.status)
	}
	return styles.NoticeStyle.Render(m.status)
}

func (m Model) footer(role domain.Role) string {
	var hints string
	if m.screen == ScreenUsers {
		hints = "1/2/3 view · r refresh · a approve · x deactivate · / filter · tab catalog · q quit"
	} else if role == domain.RoleLibrarian {
		hints = "j/k move · n add · u update · d delete · r reload · / filter · tab users · q quit"
	} else {
		hints = "j/k move · b borrow · t return · r reload · / filter · q quit"
	}
	line := styles.HintStyle.Render(hints)
	if status := m.statusLine(); status != "" {
		line = status + "\n" + line
	}
	return line
}
