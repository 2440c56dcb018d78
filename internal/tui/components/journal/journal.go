package journal

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/julianstephens/mindmate/internal/async"
	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/journal"
	"github.com/julianstephens/mindmate/internal/models"
	"github.com/julianstephens/mindmate/internal/sentiment"
	"github.com/julianstephens/mindmate/internal/tui/common"
)

const recentEntries = 3

type keyMap struct {
	Write   key.Binding
	Analyze key.Binding
	Save    key.Binding
	Clear   key.Binding
	Done    key.Binding
}

var keys = keyMap{
	Write:   key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "write")),
	Analyze: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "analyze")),
	Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save entry")),
	Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear draft")),
	Done:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop writing")),
}

type Model struct {
	ctx      context.Context
	manager  *journal.Manager
	styles   common.Styles
	editor   textarea.Model
	spinner  spinner.Model
	task     async.Task
	analysis *models.Analysis
	recent   []models.JournalEntry
	showFull bool
	width    int
}

func New(ctx context.Context, manager *journal.Manager, styles common.Styles) Model {
	ta := textarea.New()
	ta.Placeholder = "Start writing your thoughts here..."
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(8)

	m := Model{
		ctx:     ctx,
		manager: manager,
		styles:  styles,
		editor:  ta,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.refresh()
	return m
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	if width > 10 {
		m.editor.SetWidth(min(80, width-8))
	}
	if height > 24 {
		m.editor.SetHeight(min(14, height-16))
	}
}

func (m *Model) SetStyles(s common.Styles) {
	m.styles = s
}

func (m Model) Capturing() bool {
	return m.editor.Focused()
}

// Analyzing reports whether an analysis is in flight
func (m Model) Analyzing() bool {
	return m.task.Pending()
}

// Leave cancels any pending analysis when the tab is hidden
func (m *Model) Leave() {
	m.task.Cancel()
	m.task = async.Task{}
	m.editor.Blur()
}

// SetShowFull switches the recent list between previews and full text
func (m *Model) SetShowFull(full bool) {
	m.showFull = full
}

func (m *Model) Refresh() {
	m.refresh()
}

func (m *Model) refresh() {
	entries, err := m.manager.Entries()
	if err != nil {
		return
	}
	if len(entries) > recentEntries {
		entries = entries[len(entries)-recentEntries:]
	}
	m.recent = entries
}

func (m Model) ShortHelp() []key.Binding {
	if m.editor.Focused() {
		return []key.Binding{keys.Done}
	}
	return []key.Binding{keys.Write, keys.Analyze, keys.Save, keys.Clear}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case async.Done:
		if !async.Accept(m.task, msg) {
			return m, nil
		}
		m.task = async.Task{}
		if msg.Err != nil {
			return m, common.Error(msg.Err)
		}
		analysis := msg.Value.(models.Analysis)
		m.analysis = &analysis
		return m, nil

	case spinner.TickMsg:
		if !m.task.Pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.editor.Focused() {
			if key.Matches(msg, keys.Done) {
				m.editor.Blur()
				return m, nil
			}
			before := m.editor.Value()
			var cmd tea.Cmd
			m.editor, cmd = m.editor.Update(msg)
			if m.editor.Value() != before {
				// an analysis describes the text it was run on
				m.analysis = nil
			}
			return m, cmd
		}

		switch {
		case key.Matches(msg, keys.Write):
			return m, m.editor.Focus()
		case key.Matches(msg, keys.Analyze):
			return m.analyze()
		case key.Matches(msg, keys.Save):
			return m.save()
		case key.Matches(msg, keys.Clear):
			m.task.Cancel()
			m.task = async.Task{}
			m.editor.Reset()
			m.analysis = nil
			return m, nil
		}
	}

	if m.editor.Focused() {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) analyze() (Model, tea.Cmd) {
	text := m.editor.Value()
	if strings.TrimSpace(text) == "" {
		return m, common.Error(models.ErrEmptyText)
	}

	m.task.Cancel()
	manager := m.manager
	task, cmd := async.Start(m.ctx, constants.AnalysisDelay, func(context.Context) (any, error) {
		return manager.Analyze(text)
	})
	m.task = task
	m.analysis = nil
	return m, tea.Batch(cmd, m.spinner.Tick)
}

func (m Model) save() (Model, tea.Cmd) {
	entry, err := m.manager.Save(m.editor.Value(), m.analysis)
	if err != nil {
		return m, common.Error(err)
	}
	m.task.Cancel()
	m.task = async.Task{}
	m.editor.Reset()
	m.analysis = nil
	m.refresh()
	return m, common.Status(fmt.Sprintf("Journal entry saved (%s)", entry.Date.Local().Format("Jan 2 15:04")))
}

func (m Model) View() string {
	s := m.styles
	sections := []string{
		s.Title.Render("Journal"),
		s.Muted.Render("Write freely. Analyze to get a quick read of the tone."),
		"",
		m.editor.View(),
		"",
	}

	switch {
	case m.task.Pending():
		sections = append(sections, m.spinner.View()+" Analyzing...")
	case m.analysis != nil:
		a := m.analysis
		sections = append(sections,
			s.Tint(a.Color).Render(fmt.Sprintf("%s %s", a.Emoji, a.Sentiment)),
			s.Muted.Render(sentiment.Message(a.Sentiment)),
		)
	}

	if len(m.recent) > 0 {
		sections = append(sections, "", s.Subtitle.Render("Recent entries"))
		for i := len(m.recent) - 1; i >= 0; i-- {
			e := m.recent[i]
			tag := ""
			if e.Analysis != nil {
				tag = " " + e.Analysis.Emoji
			}
			sections = append(sections, fmt.Sprintf("%s%s  %s",
				s.Muted.Render(humanize.Time(e.Date)), tag, journal.Preview(e.Text, m.showFull)))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
