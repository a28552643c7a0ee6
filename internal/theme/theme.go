package theme

import "github.com/charmbracelet/lipgloss"

// Terminal palette indices exposed to content authors and widget helpers.
const (
	ColourBlack   = lipgloss.Color("0")
	ColourRed     = lipgloss.Color("1")
	ColourGreen   = lipgloss.Color("2")
	ColourYellow  = lipgloss.Color("3")
	ColourBlue    = lipgloss.Color("4")
	ColourMagenta = lipgloss.Color("5")
	ColourCyan    = lipgloss.Color("6")
	ColourWhite   = lipgloss.Color("7")
)

// Styles describes reusable Lip Gloss styles shared across the pop-up.
type Styles struct {
	Frame         *lipgloss.Style
	Title         *lipgloss.Style
	Label         *lipgloss.Style
	Button        *lipgloss.Style
	ButtonFocused *lipgloss.Style
	InputLabel    *lipgloss.Style
	Divider       *lipgloss.Style
	EffectTitle   *lipgloss.Style
	Banner        *lipgloss.Style
	Spinner       *lipgloss.Style
	Backdrop      *lipgloss.Style
	Error         *lipgloss.Style
	Info          *lipgloss.Style
	Hint          *lipgloss.Style
	Footer        *lipgloss.Style
	Header        *lipgloss.Style
}

var defaultStyles = Styles{
	Frame: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Label: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ButtonFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	InputLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Divider: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	EffectTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	),
	Banner: ptr(
		lipgloss.NewStyle().Foreground(ColourYellow).Bold(true),
	),
	Spinner: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Backdrop: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Hint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
