package styles

import "github.com/charmbracelet/lipgloss"

var (
	Accent = lipgloss.Color("#3B82F6")
	Red    = lipgloss.Color("#EF4444")
	Green  = lipgloss.Color("#22C55E")
	Yellow = lipgloss.Color("#EAB308")
	Gray   = lipgloss.Color("#6B7280")
	White  = lipgloss.Color("#F9FAFB")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	LabelStyle = lipgloss.NewStyle().
			Foreground(Gray)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(White).
			Background(Accent)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(Green)

	HintStyle = lipgloss.NewStyle().
			Foreground(Gray).
			Italic(true)

	DisabledStyle = lipgloss.NewStyle().
			Foreground(Gray).
			Strikethrough(true)

	NavActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(White).
			Background(Accent).
			Padding(0, 1)

	NavInactiveStyle = lipgloss.NewStyle().
				Foreground(Gray).
				Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Gray).
			Padding(0, 1)

	FocusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Accent).
				Padding(0, 1)
)

// SpinnerFrames is the animation cycle shown while a request is in flight.
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
