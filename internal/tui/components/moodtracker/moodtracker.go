package moodtracker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/models"
	"github.com/julianstephens/mindmate/internal/mood"
	"github.com/julianstephens/mindmate/internal/tui/common"
)

type keyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Note   key.Binding
	Save   key.Binding
	Sample key.Binding
	Done   key.Binding
}

var keys = keyMap{
	Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "less")),
	Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "more")),
	Note:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "note")),
	Save:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save mood")),
	Sample: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "sample chart")),
	Done:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
}

type Model struct {
	manager *mood.Manager
	styles  common.Styles
	note    textinput.Model
	trend   []models.TrendPoint
	sample  bool
	width   int
	height  int
}

func New(manager *mood.Manager, styles common.Styles) Model {
	ti := textinput.New()
	ti.Placeholder = "What's on your mind? (optional)"
	ti.CharLimit = 280
	ti.Width = 50

	m := Model{manager: manager, styles: styles, note: ti}
	m.refresh()
	return m
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if width > 10 {
		m.note.Width = min(60, width-10)
	}
}

func (m *Model) SetStyles(s common.Styles) {
	m.styles = s
}

// Capturing reports whether keystrokes belong to the note input
func (m Model) Capturing() bool {
	return m.note.Focused()
}

// Leave drops focus when the tab is hidden
func (m *Model) Leave() {
	m.note.Blur()
}

// Refresh reloads the trend after data changed elsewhere
func (m *Model) Refresh() {
	m.refresh()
}

func (m *Model) refresh() {
	points, err := m.manager.Trend(constants.TrendDays)
	if err != nil {
		points = nil
	}
	m.trend = points
}

func (m Model) ShortHelp() []key.Binding {
	if m.note.Focused() {
		return []key.Binding{keys.Save, keys.Done}
	}
	return []key.Binding{keys.Prev, keys.Next, keys.Note, keys.Save, keys.Sample}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.note.Focused() {
			var cmd tea.Cmd
			m.note, cmd = m.note.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.note.Focused() {
		switch {
		case key.Matches(keyMsg, keys.Done):
			m.note.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.Save):
			m.note.Blur()
			return m.save()
		}
		var cmd tea.Cmd
		m.note, cmd = m.note.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.Prev):
		return m.step(-1)
	case key.Matches(keyMsg, keys.Next):
		return m.step(1)
	case key.Matches(keyMsg, keys.Note):
		return m, m.note.Focus()
	case key.Matches(keyMsg, keys.Save):
		return m.save()
	case key.Matches(keyMsg, keys.Sample):
		m.sample = !m.sample
		return m, nil
	}

	if s := keyMsg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '5' {
		if err := m.manager.SelectMood(int(s[0] - '0')); err != nil {
			return m, common.Error(err)
		}
	}
	return m, nil
}

func (m Model) step(delta int) (Model, tea.Cmd) {
	level, ok := m.manager.Pending()
	if !ok {
		level = 3 - delta
	}
	level += delta
	level = max(constants.MinMoodLevel, min(constants.MaxMoodLevel, level))
	if err := m.manager.SelectMood(level); err != nil {
		return m, common.Error(err)
	}
	return m, nil
}

func (m Model) save() (Model, tea.Cmd) {
	m.manager.SetNote(strings.TrimSpace(m.note.Value()))
	entry, err := m.manager.SaveMood()
	if err != nil {
		return m, common.Error(err)
	}
	m.note.Reset()
	m.refresh()
	level, _ := mood.Level(entry.Mood)
	return m, common.Status(fmt.Sprintf("Mood saved for %s: %s %s", entry.Date, level.Emoji, level.Label))
}

func (m Model) View() string {
	s := m.styles
	var scale []string
	pending, _ := m.manager.Pending()
	for _, l := range mood.Scale() {
		cell := fmt.Sprintf("%s\n%s", l.Emoji, l.Label)
		if l.Value == pending {
			scale = append(scale, s.Selected.Render(cell))
		} else {
			scale = append(scale, lipgloss.NewStyle().Padding(0, 1).Render(cell))
		}
	}

	picker := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("How are you feeling today?"),
		lipgloss.JoinHorizontal(lipgloss.Top, scale...),
		"",
		s.Subtitle.Render("Note"),
		m.note.View(),
	)

	trendTitle := "Your Mood Trend (last 7 days)"
	points := m.trend
	if m.sample {
		trendTitle = "Sample Mood Trend"
		points = mood.IllustrativeTrend()
	}
	chart := s.Muted.Render("Could not load mood history.")
	if points != nil {
		chart = mood.Chart(points)
	}
	trend := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(trendTitle),
		s.Box.Render(chart),
	)

	if m.width >= 110 {
		return lipgloss.JoinHorizontal(lipgloss.Top, picker, "    ", trend)
	}
	return lipgloss.JoinVertical(lipgloss.Left, picker, "", trend)
}
