package breathe

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mindmate/internal/breathing"
	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/storage"
	"github.com/julianstephens/mindmate/internal/tui/common"
)

// TickMsg advances the session it was scheduled for
type TickMsg struct {
	Session int
}

func tick(session int) tea.Cmd {
	return tea.Tick(constants.BreathingTick, func(time.Time) tea.Msg {
		return TickMsg{Session: session}
	})
}

type keyMap struct {
	Toggle key.Binding
	Sound  key.Binding
}

var keys = keyMap{
	Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "start/stop")),
	Sound:  key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "sound")),
}

type Model struct {
	store  storage.Provider
	styles common.Styles
	driver breathing.Driver
	sound  int // index into breathing.Sounds, -1 for none
	now    func() time.Time
}

func New(store storage.Provider, styles common.Styles) Model {
	return Model{store: store, styles: styles, sound: -1, now: time.Now}
}

func (m *Model) SetStyles(s common.Styles) {
	m.styles = s
}

func (m Model) Capturing() bool { return false }

// Running reports whether a session is in progress
func (m Model) Running() bool {
	return m.driver.Running()
}

// Leave stops a running session when the tab is hidden
func (m *Model) Leave() tea.Cmd {
	if !m.driver.Running() {
		return nil
	}
	return m.stop()
}

// Start begins a session and schedules its first tick
func (m *Model) Start() tea.Cmd {
	session := m.driver.Start(m.now())
	return tick(session)
}

func (m *Model) stop() tea.Cmd {
	finished, complete := m.driver.Stop()
	if !complete {
		return nil
	}
	if err := breathing.Record(m.store, finished); err != nil {
		return common.Fail("Failed to record breathing session", err)
	}
	return common.Status(fmt.Sprintf("Breathing session saved (%s)", breathing.FormatElapsed(finished.Seconds)))
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{keys.Toggle, keys.Sound}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if !m.driver.Tick(msg.Session) {
			// stale: the session was stopped or replaced
			return m, nil
		}
		return m, tick(msg.Session)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Toggle):
			if m.driver.Running() {
				return m, m.stop()
			}
			return m, m.Start()
		case key.Matches(msg, keys.Sound):
			i := int(msg.String()[0] - '1')
			if m.sound == i {
				m.sound = -1
			} else {
				m.sound = i
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	s := m.styles
	phase := m.driver.Phase()

	// the circle grows while inhaling and shrinks while exhaling
	size := 3
	if m.driver.Running() {
		pos := m.driver.Elapsed() % constants.BreathingCycleSec
		if phase == breathing.Inhale {
			size = 2 + pos
		} else {
			size = 2 + constants.BreathingCycleSec - pos
		}
	}
	circle := s.Accent.Render(strings.Repeat("●", size*2))

	status := s.Muted.Render("Press space to begin")
	if m.driver.Running() {
		status = s.Value.Render(breathing.FormatElapsed(m.driver.Elapsed()))
	}

	guide := lipgloss.JoinVertical(lipgloss.Center,
		circle,
		"",
		s.Subtitle.Render(phase.Text()),
		s.Muted.Render(phase.Instruction()),
		"",
		status,
	)

	var techniques []string
	for _, t := range breathing.Techniques {
		techniques = append(techniques,
			fmt.Sprintf("%s %s", t.Icon, s.Subtitle.Render(t.Name)),
			"   "+t.Description,
			"   "+s.Muted.Render(t.Benefit),
		)
	}

	var sounds []string
	for i, snd := range breathing.Sounds {
		label := fmt.Sprintf("[%d] %s %s", i+1, snd.Icon, snd.Name)
		if i == m.sound {
			sounds = append(sounds, s.Selected.Render(label))
		} else {
			sounds = append(sounds, lipgloss.NewStyle().Padding(0, 1).Render(label))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Guided Breathing"),
		s.Box.Padding(1, 6).Render(guide),
		"",
		s.Subtitle.Render("Background Sounds"),
		lipgloss.JoinHorizontal(lipgloss.Top, sounds...),
		"",
		s.Subtitle.Render("Breathing Techniques"),
		strings.Join(techniques, "\n"),
	)
}
