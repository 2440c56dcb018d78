package profileview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mindmate/internal/models"
	"github.com/julianstephens/mindmate/internal/profile"
	"github.com/julianstephens/mindmate/internal/storage"
	"github.com/julianstephens/mindmate/internal/tui/common"
	"github.com/julianstephens/mindmate/internal/tui/forms"
)

var editKey = key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit profile"))

type Model struct {
	store    storage.Provider
	styles   common.Styles
	profile  models.Profile
	stats    models.ProfileStats
	form     *huh.Form
	formData *forms.ProfileFormModel
	now      func() time.Time
	width    int
}

func New(store storage.Provider, styles common.Styles) Model {
	m := Model{store: store, styles: styles, now: time.Now}
	m.Refresh()
	return m
}

func (m *Model) SetSize(width, height int) {
	m.width = width
}

func (m *Model) SetStyles(s common.Styles) {
	m.styles = s
}

// Capturing is true while the edit form is open
func (m Model) Capturing() bool {
	return m.form != nil
}

func (m *Model) Leave() {
	m.form = nil
	m.formData = nil
}

// Refresh reloads the profile and recomputes the stats
func (m *Model) Refresh() {
	now := m.now()
	if p, err := profile.Load(m.store, now); err == nil {
		m.profile = p
	}
	if s, err := profile.ComputeStats(m.store, now); err == nil {
		m.stats = s
	}
}

func (m Model) ShortHelp() []key.Binding {
	if m.form != nil {
		return nil
	}
	return []key.Binding{editKey}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form != nil {
		if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
			m.form = nil
			m.formData = nil
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		switch m.form.State {
		case huh.StateCompleted:
			p := m.formData.Profile()
			m.form = nil
			m.formData = nil
			if err := profile.Save(m.store, p); err != nil {
				return m, common.Fail("Failed to save profile", err)
			}
			m.Refresh()
			return m, common.Status("Profile updated")
		case huh.StateAborted:
			m.form = nil
			m.formData = nil
		}
		return m, cmd
	}

	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, editKey) {
		m.formData = forms.NewProfileFormModel(m.profile)
		m.form = forms.NewProfileForm(m.formData, m.styles.Dark)
		return m, m.form.Init()
	}
	return m, nil
}

func (m Model) View() string {
	s := m.styles
	if m.form != nil {
		return lipgloss.JoinVertical(lipgloss.Left, s.Title.Render("Edit Profile"), m.form.View())
	}

	name := m.profile.Name
	if name == "" {
		name = "Anonymous"
	}
	joined := m.profile.JoinDate
	if t, err := time.Parse("2006-01-02", joined); err == nil {
		joined = t.Format("January 2006")
	}

	details := lipgloss.JoinVertical(lipgloss.Left,
		s.Subtitle.Render(name),
		s.Muted.Render("Member since "+joined),
		"",
		s.Row("Email:", orDash(m.profile.Email)),
		s.Row("Phone:", orDash(m.profile.Phone)),
		s.Row("Location:", orDash(m.profile.Location)),
		s.Row("Bio:", orDash(m.profile.Bio)),
	)

	avg := "-"
	if m.stats.MoodDays > 0 {
		avg = fmt.Sprintf("%.1f/5", m.stats.MoodAverage)
	}
	stats := lipgloss.JoinVertical(lipgloss.Left,
		s.Row("Current Streak:", fmt.Sprintf("%d days", m.stats.Streak)),
		s.Row("Journal Entries:", fmt.Sprintf("%d", m.stats.JournalEntries)),
		s.Row("Mood Average:", avg),
		s.Row("Achievements:", fmt.Sprintf("%d/%d", m.stats.EarnedCount, len(m.stats.Achievements))),
	)

	var achievements []string
	for _, a := range m.stats.Achievements {
		mark := s.Muted.Render("○")
		title := s.Muted.Render(a.Name)
		if a.Earned {
			mark = s.Success.Render("✓")
			title = s.Value.Render(a.Name)
		}
		achievements = append(achievements, fmt.Sprintf("%s %s  %s", mark, title, s.Muted.Render(a.Description)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Profile"),
		s.Box.Render(details),
		"",
		s.Subtitle.Render("Your Progress"),
		stats,
		"",
		s.Subtitle.Render("Achievements"),
		strings.Join(achievements, "\n"),
	)
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
