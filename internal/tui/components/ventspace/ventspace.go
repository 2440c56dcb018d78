package ventspace

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/tui/common"
	"github.com/julianstephens/mindmate/internal/vent"
)

// SweepMsg drives the board's single expiry check
type SweepMsg time.Time

func sweep() tea.Cmd {
	return tea.Tick(constants.VentSweepInterval, func(t time.Time) tea.Msg {
		return SweepMsg(t)
	})
}

type keyMap struct {
	Write key.Binding
	Post  key.Binding
	Done  key.Binding
}

var keys = keyMap{
	Write: key.NewBinding(key.WithKeys("enter", "w"), key.WithHelp("enter", "write")),
	Post:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "post")),
	Done:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

type Model struct {
	board  *vent.Board
	styles common.Styles
	input  textinput.Model
	now    time.Time
	width  int
}

func New(board *vent.Board, styles common.Styles) Model {
	ti := textinput.New()
	ti.Placeholder = "Let it out... (anonymous, gone in 10 minutes)"
	ti.CharLimit = 500
	ti.Width = 60
	return Model{board: board, styles: styles, input: ti, now: time.Now()}
}

// Init starts the sweep loop. It must be called once for the board's lifetime.
func (m Model) Init() tea.Cmd {
	return sweep()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	if width > 10 {
		m.input.Width = min(80, width-10)
	}
}

func (m *Model) SetStyles(s common.Styles) {
	m.styles = s
}

func (m Model) Capturing() bool {
	return m.input.Focused()
}

func (m *Model) Leave() {
	m.input.Blur()
}

func (m Model) ShortHelp() []key.Binding {
	if m.input.Focused() {
		return []key.Binding{keys.Post, keys.Done}
	}
	return []key.Binding{keys.Write}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SweepMsg:
		m.now = time.Time(msg)
		m.board.Sweep(m.now)
		return m, sweep()

	case tea.KeyMsg:
		if !m.input.Focused() {
			if key.Matches(msg, keys.Write) {
				return m, m.input.Focus()
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.Done):
			m.input.Blur()
			return m, nil
		case key.Matches(msg, keys.Post):
			if _, err := m.board.Post(m.input.Value()); err != nil {
				return m, common.Error(err)
			}
			m.input.Reset()
			m.input.Blur()
			return m, common.Status("Posted anonymously. It will disappear in 10 minutes.")
		}
	}

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	s := m.styles
	sections := []string{
		s.Title.Render("Vent Space"),
		s.Muted.Render("A safe space to express yourself. All posts are automatically deleted after 10 minutes."),
		"",
		m.input.View(),
		"",
	}

	posts := m.board.Posts()
	if len(posts) == 0 {
		sections = append(sections, s.Muted.Render("No posts yet. Be the first to share."))
	}
	width := 60
	if m.width > 20 {
		width = min(80, m.width-12)
	}
	for _, p := range posts {
		left := p.Timestamp.Add(constants.VentPostTTL).Sub(m.now).Round(time.Minute)
		meta := fmt.Sprintf("%s · expires in %s", vent.TimeAgo(p, m.now), formatLeft(left))
		sections = append(sections, s.Box.Width(width).Render(
			lipgloss.JoinVertical(lipgloss.Left, p.Message, s.Muted.Render(meta)),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func formatLeft(d time.Duration) string {
	if d < time.Minute {
		return "under a minute"
	}
	if d == time.Minute {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", int(d/time.Minute))
}
