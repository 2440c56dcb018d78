package settingsview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mindmate/internal/models"
	"github.com/julianstephens/mindmate/internal/preferences"
	"github.com/julianstephens/mindmate/internal/storage"
	"github.com/julianstephens/mindmate/internal/tui/common"
	"github.com/julianstephens/mindmate/internal/tui/forms"
)

// ExportMsg asks the shell to write a data export
type ExportMsg struct{}

// ClearRequestMsg asks the shell to confirm and clear all data
type ClearRequestMsg struct{}

// SavedMsg reports new settings so the shell can apply the theme
type SavedMsg struct {
	Settings models.Settings
}

type keyMap struct {
	Edit   key.Binding
	Export key.Binding
	Clear  key.Binding
}

var keys = keyMap{
	Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Export: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export data")),
	Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear data")),
}

type Model struct {
	store    storage.Provider
	styles   common.Styles
	settings models.Settings
	form     *huh.Form
	formData *forms.SettingsFormModel
}

func New(store storage.Provider, styles common.Styles) Model {
	m := Model{store: store, styles: styles}
	m.Refresh()
	return m
}

func (m *Model) SetStyles(s common.Styles) {
	m.styles = s
}

func (m Model) Settings() models.Settings {
	return m.settings
}

func (m Model) Capturing() bool {
	return m.form != nil
}

func (m *Model) Leave() {
	m.form = nil
	m.formData = nil
}

func (m *Model) Refresh() {
	s, err := preferences.LoadSettings(m.store)
	if err == nil {
		m.settings = s
	}
}

func (m Model) ShortHelp() []key.Binding {
	if m.form != nil {
		return nil
	}
	return []key.Binding{keys.Edit, keys.Export, keys.Clear}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form != nil {
		if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
			m.Leave()
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		switch m.form.State {
		case huh.StateCompleted:
			next := m.formData.Settings
			m.Leave()
			if err := preferences.SaveSettings(m.store, next); err != nil {
				return m, common.Fail("Failed to save settings", err)
			}
			m.settings = next
			return m, tea.Batch(
				common.Status("Settings saved"),
				func() tea.Msg { return SavedMsg{Settings: next} },
			)
		case huh.StateAborted:
			m.Leave()
		}
		return m, cmd
	}

	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, keys.Edit):
		m.formData = &forms.SettingsFormModel{Settings: m.settings}
		m.form = forms.NewSettingsForm(m.formData, m.styles.Dark)
		return m, m.form.Init()
	case key.Matches(k, keys.Export):
		return m, func() tea.Msg { return ExportMsg{} }
	case key.Matches(k, keys.Clear):
		return m, func() tea.Msg { return ClearRequestMsg{} }
	}
	return m, nil
}

func (m Model) View() string {
	s := m.styles
	if m.form != nil {
		return lipgloss.JoinVertical(lipgloss.Left, s.Title.Render("Edit Settings"), m.form.View())
	}

	onOff := func(b bool) string {
		if b {
			return "On"
		}
		return "Off"
	}
	appearance := "Light"
	if s.Dark {
		appearance = "Dark"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Settings"),
		s.Subtitle.Render("Notifications"),
		s.Row("Push Notifications:", onOff(m.settings.Notifications)),
		s.Row("Sound Effects:", onOff(m.settings.SoundEnabled)),
		"",
		s.Subtitle.Render("Privacy & Security"),
		s.Row("Data Sharing:", onOff(m.settings.DataSharing)),
		s.Row("Automatic Backup:", onOff(m.settings.AutoBackup)),
		s.Row("Show Sensitive Data:", onOff(m.settings.ShowSensitiveData)),
		"",
		s.Subtitle.Render("Appearance"),
		s.Row("Theme:", m.settings.Theme),
		s.Row("Dark Mode:", fmt.Sprintf("%s (press d to toggle)", appearance)),
		s.Row("Language:", m.settings.Language),
		"",
		s.Subtitle.Render("Data Management"),
		s.Muted.Render("x  export your data as JSON"),
		s.Danger.Render("c  clear all data (cannot be undone)"),
	)
}
