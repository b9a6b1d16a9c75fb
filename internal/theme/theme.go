package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title            *lipgloss.Style
	Field            *lipgloss.Style
	FieldBlurred     *lipgloss.Style
	FieldPrompt      *lipgloss.Style
	FieldPlaceholder *lipgloss.Style
	Cursor           *lipgloss.Style
	Error            *lipgloss.Style
	Info             *lipgloss.Style
	Help             *lipgloss.Style
}

var (
	fieldBackground = lipgloss.Color("#2C2B28")
	fieldForeground = lipgloss.Color("#DDDDDD")
)

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Field: ptr(
		lipgloss.NewStyle().Foreground(fieldForeground).Background(fieldBackground).Padding(0, 1),
	),
	FieldBlurred: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(fieldBackground).Padding(0, 1),
	),
	FieldPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Background(fieldBackground).Bold(true),
	),
	FieldPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Background(fieldBackground),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Help: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
