// Package common holds the styles and messages shared by the shell and the
// tab components.
package common

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/julianstephens/mindmate/internal/errors"
	"github.com/julianstephens/mindmate/internal/logger"
)

// StatusMsg asks the shell to show a line in the status bar
type StatusMsg struct {
	Text string
	Err  bool
}

// Status reports an informational message
func Status(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

// Error reports a failure. Validation errors are shown as-is; everything
// else is logged as well.
func Error(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return func() tea.Msg { return StatusMsg{Text: apperrors.Format(err), Err: true} }
}

// Fail logs err before reporting it
func Fail(action string, err error) tea.Cmd {
	logger.Error(action, "error", err)
	return Error(err)
}

// Styles is the palette for one of the two themes
type Styles struct {
	Dark bool

	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Muted       lipgloss.Style
	Accent      lipgloss.Style
	Selected    lipgloss.Style
	Success     lipgloss.Style
	Warning     lipgloss.Style
	Danger      lipgloss.Style
	Box         lipgloss.Style
	Doc         lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Header      lipgloss.Style
	StatusOK    lipgloss.Style
	StatusErr   lipgloss.Style
}

type palette struct {
	accent, text, muted, subtle, surface, border string
}

var (
	darkPalette  = palette{accent: "205", text: "252", muted: "244", subtle: "238", surface: "236", border: "62"}
	lightPalette = palette{accent: "162", text: "235", muted: "242", subtle: "252", surface: "254", border: "99"}
)

// NewStyles builds the styles for the dark or light theme
func NewStyles(dark bool) Styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	return Styles{
		Dark: dark,
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.accent)).
			Bold(true).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.text)).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)).
			Width(22),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.text)).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)).
			Italic(true),
		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.accent)),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.accent)).
			Background(lipgloss.Color(p.surface)).
			Bold(true).
			Padding(0, 1),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(0, 1),
		Doc: lipgloss.NewStyle().Padding(1, 2),
		ActiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.accent)).
			Background(lipgloss.Color(p.surface)).
			Padding(0, 1).
			Bold(true),
		InactiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)).
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.accent)).
			Bold(true).
			Padding(0, 1),
		StatusOK: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Padding(0, 1),
		StatusErr: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Padding(0, 1),
	}
}

// Tint maps the color tags stored with moods and analyses to a style
func (s Styles) Tint(tag string) lipgloss.Style {
	colors := map[string]string{
		"red":    "196",
		"orange": "208",
		"yellow": "220",
		"green":  "42",
		"blue":   "39",
	}
	c, ok := colors[tag]
	if !ok {
		return s.Value
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Bold(true)
}

// Row renders a label and value on one line
func (s Styles) Row(label, value string) string {
	return s.Label.Render(label) + " " + s.Value.Render(value)
}
