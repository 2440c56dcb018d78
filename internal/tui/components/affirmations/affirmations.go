package affirmations

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mindmate/internal/affirmation"
	"github.com/julianstephens/mindmate/internal/async"
	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/models"
	"github.com/julianstephens/mindmate/internal/tui/common"
)

type keyMap struct {
	Generate key.Binding
	Up       key.Binding
	Down     key.Binding
}

var keys = keyMap{
	Generate: key.NewBinding(key.WithKeys("g", "enter"), key.WithHelp("g", "new affirmation")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
}

type Model struct {
	ctx       context.Context
	generator *affirmation.Generator
	styles    common.Styles
	spinner   spinner.Model
	history   viewport.Model
	task      async.Task
	current   *affirmation.Generated
	records   []models.Affirmation
}

func New(ctx context.Context, generator *affirmation.Generator, styles common.Styles) Model {
	m := Model{
		ctx:       ctx,
		generator: generator,
		styles:    styles,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Points)),
		history:   viewport.New(60, 10),
	}
	m.Refresh()
	return m
}

func (m *Model) SetSize(width, height int) {
	if width > 10 {
		m.history.Width = min(80, width-8)
	}
	if height > 20 {
		m.history.Height = height - 18
	}
	m.renderHistory()
}

func (m *Model) SetStyles(s common.Styles) {
	m.styles = s
	m.renderHistory()
}

func (m Model) Capturing() bool { return false }

// Generating reports whether a generation is in flight
func (m Model) Generating() bool {
	return m.task.Pending()
}

// Leave cancels a pending generation when the tab is hidden
func (m *Model) Leave() {
	m.task.Cancel()
	m.task = async.Task{}
}

// Refresh reloads the stored history
func (m *Model) Refresh() {
	records, err := m.generator.History()
	if err == nil {
		m.records = records
	}
	m.renderHistory()
}

func (m *Model) renderHistory() {
	s := m.styles
	if len(m.records) == 0 {
		m.history.SetContent(s.Muted.Render("No affirmations yet. Generate one to get started."))
		return
	}
	var lines []string
	for _, r := range m.records {
		stamp := r.Timestamp.Local().Format("Jan 2, 2006 3:04 PM")
		lines = append(lines, r.Text, s.Muted.Render("  "+stamp))
	}
	m.history.SetContent(strings.Join(lines, "\n"))
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{keys.Generate, keys.Up, keys.Down}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case async.Done:
		if !async.Accept(m.task, msg) {
			return m, nil
		}
		m.task = async.Task{}
		// generation and persistence happen on the update loop
		res, err := m.generator.Generate()
		if err != nil {
			return m, common.Fail("Failed to generate affirmation", err)
		}
		m.current = &res
		m.Refresh()
		m.history.GotoTop()
		return m, nil

	case spinner.TickMsg:
		if !m.task.Pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, keys.Generate) {
			if m.task.Pending() {
				return m, nil
			}
			task, cmd := async.Start(m.ctx, constants.AffirmationDelay, func(context.Context) (any, error) {
				return nil, nil
			})
			m.task = task
			return m, tea.Batch(cmd, m.spinner.Tick)
		}
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	s := m.styles

	var card string
	switch {
	case m.task.Pending():
		card = m.spinner.View() + " Generating..."
	case m.current != nil:
		card = lipgloss.JoinVertical(lipgloss.Center,
			m.current.Emoji,
			"",
			s.Subtitle.Render(m.current.Affirmation.Text),
		)
	default:
		card = s.Muted.Render("Press g for a positive affirmation.")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Daily Affirmations"),
		s.Box.Padding(1, 4).Render(card),
		"",
		s.Subtitle.Render(fmt.Sprintf("History (last %d)", constants.AffirmationHistoryCap)),
		m.history.View(),
	)
}
