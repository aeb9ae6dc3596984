package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stacksapp/stacks/internal/domain"
	"github.com/stacksapp/stacks/internal/tui/styles"
)

const focusRole = -1

var fieldLabels = [domain.FieldCount]string{"User ID", "Username", "Password"}

// SignInForm collects a role and credentials. Each input re-validates
// on every keystroke; submission stays disabled until every field
// passes.
type SignInForm struct {
	roles     []domain.RoleOption
	roleIdx   int
	inputs    [domain.FieldCount]textinput.Model
	errors    [domain.FieldCount]string
	known     map[string]struct{}
	focus     int
	submitted bool
	width     int
}

func NewSignInForm() SignInForm {
	f := SignInForm{
		roleIdx: -1,
		focus:   focusRole,
		known:   make(map[string]struct{}),
	}
	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = "> "
		in.CharLimit = 64
		in.Width = 32
		f.inputs[i] = in
	}
	f.inputs[domain.FieldPassword].EchoMode = textinput.EchoPassword
	f.inputs[domain.FieldPassword].EchoCharacter = '•'
	return f
}

// SetRoleOptions installs the selectable roles. A previously chosen
// role is preserved when it is still offered.
func (f *SignInForm) SetRoleOptions(options []domain.RoleOption) {
	current := f.Role()
	f.roles = options
	f.roleIdx = -1
	for i, opt := range options {
		if domain.RoleFromID(opt.ID) == current {
			f.roleIdx = i
		}
	}
}

// SetKnownUsernames installs the usernames already registered with the
// server, used for the existing-account hint.
func (f *SignInForm) SetKnownUsernames(names []string) {
	f.known = make(map[string]struct{}, len(names))
	for _, n := range names {
		f.known[n] = struct{}{}
	}
}

func (f *SignInForm) SetWidth(w int) { f.width = w }

// Role reports the currently selected role, RoleUnselected when none.
func (f *SignInForm) Role() domain.Role {
	if f.roleIdx < 0 || f.roleIdx >= len(f.roles) {
		return domain.RoleUnselected
	}
	return domain.RoleFromID(f.roles[f.roleIdx].ID)
}

func (f *SignInForm) credentials() domain.Credentials {
	return domain.Credentials{
		Role:     f.Role(),
		UserID:   f.inputs[domain.FieldUserID].Value(),
		Username: f.inputs[domain.FieldUsername].Value(),
		Password: f.inputs[domain.FieldPassword].Value(),
	}
}

// CanSubmit reports whether every field currently validates.
func (f *SignInForm) CanSubmit() bool {
	return f.credentials().CanSubmit()
}

// Update handles a key press. When the form is submitted it returns the
// validated credentials; creds is nil otherwise.
func (f SignInForm) Update(msg tea.KeyMsg) (SignInForm, tea.Cmd, *domain.Credentials) {
	switch msg.String() {
	case "tab", "down":
		f.setFocus(f.nextFocus(1))
		return f, nil, nil
	case "shift+tab", "up":
		f.setFocus(f.nextFocus(-1))
		return f, nil, nil
	case "left", "right":
		if f.focus == focusRole && len(f.roles) > 0 {
			step := 1
			if msg.String() == "left" {
				step = -1
			}
			f.roleIdx = ((f.roleIdx+step)%len(f.roles) + len(f.roles)) % len(f.roles)
			return f, nil, nil
		}
	case "enter":
		if f.focus == int(domain.FieldPassword) {
			if creds := f.credentials(); creds.CanSubmit() {
				return f, nil, &creds
			}
			// Surface every outstanding problem at once.
			f.errors = f.credentials().Validate()
			return f, nil, nil
		}
		f.setFocus(f.nextFocus(1))
		return f, nil, nil
	}

	if f.focus == focusRole {
		// Number keys pick a role directly.
		if key := msg.String(); len(key) == 1 {
			if n := int(key[0] - '1'); n >= 0 && n < len(f.roles) {
				f.roleIdx = n
			}
		}
		return f, nil, nil
	}

	if f.focus >= 0 && f.focus < int(domain.FieldCount) {
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		field := domain.Field(f.focus)
		f.errors[field] = f.credentials().ValidateField(field)
		return f, cmd, nil
	}
	return f, nil, nil
}

func (f *SignInForm) nextFocus(step int) int {
	next := f.focus + step
	if next < focusRole {
		next = int(domain.FieldPassword)
	}
	if next > int(domain.FieldPassword) {
		next = focusRole
	}
	return next
}

func (f *SignInForm) setFocus(target int) {
	f.focus = target
	for i := range f.inputs {
		if i == target {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (f SignInForm) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Stacks — Sign In"))
	b.WriteString("\n\n")
	b.WriteString(f.roleView())
	b.WriteString("\n\n")

	for i := range f.inputs {
		label := fieldLabels[i]
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
		if domain.Field(i) == domain.FieldUsername {
			if _, ok := f.known[f.inputs[i].Value()]; ok {
				b.WriteString(styles.HintStyle.Render("Signing in to an existing account"))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	submit := "[ Sign In ]"
	if f.CanSubmit() {
		b.WriteString(styles.NoticeStyle.Render(submit))
	} else {
		b.WriteString(styles.DisabledStyle.Render(submit))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.HintStyle.Render("tab/↑↓ move · ←→ pick role · enter submit · ctrl+c quit"))

	box := styles.FocusedBorderStyle.Render(b.String())
	if f.width > 0 {
		return lipgloss.PlaceHorizontal(f.width, lipgloss.Center, box)
	}
	return box
}

func (f SignInForm) roleView() string {
	if len(f.roles) == 0 {
		return styles.LabelStyle.Render("Role:") + " " + styles.HintStyle.Render("(no roles available)")
	}
	parts := make([]string, 0, len(f.roles))
	for i, opt := range f.roles {
		name := opt.Name
		if i == f.roleIdx {
			parts = append(parts, styles.SelectedStyle.Render(" "+name+" "))
		} else {
			parts = append(parts, styles.LabelStyle.Render(" "+name+" "))
		}
	}
	label := "Role:"
	if f.focus == focusRole {
		label = styles.SelectedStyle.Render(label)
	} else {
		label = styles.LabelStyle.Render(label)
	}
	return fmt.Sprintf("%s ◂%s▸", label, strings.Join(parts, " "))
}
