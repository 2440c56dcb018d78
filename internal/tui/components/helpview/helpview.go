package helpview

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mindmate/internal/help"
	"github.com/julianstephens/mindmate/internal/tui/common"
)

type keyMap struct {
	Toggle key.Binding
	Scroll key.Binding
}

var keys = keyMap{
	Toggle: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "expand question")),
	Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
}

type Model struct {
	styles   common.Styles
	viewport viewport.Model
	expanded map[int]bool
}

func New(styles common.Styles) Model {
	m := Model{
		styles:   styles,
		viewport: viewport.New(80, 20),
		expanded: make(map[int]bool),
	}
	m.render()
	return m
}

func (m *Model) SetSize(width, height int) {
	if width > 8 {
		m.viewport.Width = width - 4
	}
	if height > 10 {
		m.viewport.Height = height - 8
	}
}

func (m *Model) SetStyles(s common.Styles) {
	m.styles = s
}

func (m Model) Capturing() bool { return false }

func (m *Model) render() {
	m.viewport.SetContent(help.Render(m.expanded))
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{keys.Toggle, keys.Scroll}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, keys.Toggle) {
		i := int(k.String()[0] - '1')
		m.expanded[i] = !m.expanded[i]
		m.render()
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Help & Support"),
		m.viewport.View(),
	)
}
