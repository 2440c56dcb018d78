package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/mindmate/internal/async"
	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/export"
	"github.com/julianstephens/mindmate/internal/logger"
	"github.com/julianstephens/mindmate/internal/preferences"
	"github.com/julianstephens/mindmate/internal/tui/common"
	"github.com/julianstephens/mindmate/internal/tui/components/breathe"
	"github.com/julianstephens/mindmate/internal/tui/components/settingsview"
	"github.com/julianstephens/mindmate/internal/tui/components/ventspace"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case common.StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.Err
		return m, nil

	case ventspace.SweepMsg:
		var cmd tea.Cmd
		m.vent, cmd = m.vent.Update(msg)
		return m, cmd

	case breathe.TickMsg:
		var cmd tea.Cmd
		m.breathing, cmd = m.breathing.Update(msg)
		return m, cmd

	case async.Done, spinner.TickMsg:
		// each owner drops results and ticks that are not its own
		var jc, ac tea.Cmd
		m.journal, jc = m.journal.Update(msg)
		m.affirmations, ac = m.affirmations.Update(msg)
		return m, tea.Batch(jc, ac)

	case settingsview.ExportMsg:
		return m, m.exportData()

	case settingsview.ClearRequestMsg:
		m.state = m.state.Ask(ConfirmClear)
		return m, nil

	case settingsview.SavedMsg:
		m.journal.SetShowFull(msg.Settings.ShowSensitiveData)
		return m.applyTheme(msg.Settings.Theme)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActive(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}
	m.status = ""
	m.statusErr = false

	if m.state.Confirm != ConfirmNone {
		return m.handleConfirm(msg)
	}
	if m.state.MenuOpen {
		return m.handleMenu(msg)
	}

	if m.capturing() {
		// text inputs on the tabs still let tab switch tabs
		onTabInput := m.state.OnMain() && (key.Matches(msg, m.keys.Tab) || key.Matches(msg, m.keys.ShiftTab))
		if !onTabInput {
			return m.updateActive(msg)
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Menu):
		m.state = m.state.ToggleMenu()
		return m, nil
	case key.Matches(msg, m.keys.Dark):
		return m.toggleDark()
	case m.state.OnMain() && key.Matches(msg, m.keys.Tab):
		return m.switchTab(m.state.NextTab())
	case m.state.OnMain() && key.Matches(msg, m.keys.ShiftTab):
		return m.switchTab(m.state.PrevTab())
	case !m.state.OnMain() && key.Matches(msg, m.keys.Back):
		m.state = m.state.Back()
		m.enterTab()
		return m, nil
	}

	return m.updateActive(msg)
}

func (m Model) handleMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Profile):
		return m.openView(constants.ViewProfile)
	case key.Matches(msg, m.keys.Settings):
		return m.openView(constants.ViewSettings)
	case key.Matches(msg, m.keys.Support):
		return m.openView(constants.ViewHelp)
	case key.Matches(msg, m.keys.SignOut):
		m.state = m.state.Ask(ConfirmSignOut)
	case key.Matches(msg, m.keys.Dark):
		m.state = m.state.ToggleMenu()
		return m.toggleDark()
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Menu), key.Matches(msg, m.keys.Back):
		m.state = m.state.ToggleMenu()
	}
	return m, nil
}

func (m Model) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		question := m.state.Confirm
		m.state = m.state.Answered()
		if err := export.ClearAll(m.store); err != nil {
			return m, common.Fail("Failed to clear data", err)
		}
		m.refreshAll()
		if question == ConfirmSignOut {
			m.state = m.state.Back()
			return m, common.Status("You have been signed out successfully!")
		}
		return m, common.Status("All data has been cleared.")
	case key.Matches(msg, m.keys.No):
		m.state = m.state.Answered()
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.state.Tab == constants.TabBreathing {
		// a running session is recorded before exit
		cmd = m.breathing.Leave()
	}
	m.cancel()
	m.quitting = true
	return m, tea.Sequence(cmd, tea.Quit)
}

// leaveTab tears down the visible tab's timers and pending work
func (m *Model) leaveTab() tea.Cmd {
	switch m.state.Tab {
	case constants.TabMood:
		m.mood.Leave()
	case constants.TabJournal:
		m.journal.Leave()
	case constants.TabVent:
		m.vent.Leave()
	case constants.TabAffirmations:
		m.affirmations.Leave()
	case constants.TabBreathing:
		return m.breathing.Leave()
	}
	return nil
}

// enterTab reloads the data the visible screen shows
func (m *Model) enterTab() {
	switch m.state.View {
	case constants.ViewProfile:
		m.profile.Refresh()
		return
	case constants.ViewSettings:
		m.settings.Refresh()
		return
	}
	switch m.state.Tab {
	case constants.TabMood:
		m.mood.Refresh()
	case constants.TabJournal:
		m.journal.Refresh()
	case constants.TabAffirmations:
		m.affirmations.Refresh()
	}
}

func (m *Model) refreshAll() {
	m.mood.Refresh()
	m.journal.Refresh()
	m.affirmations.Refresh()
	m.profile.Refresh()
	m.settings.Refresh()
}

func (m Model) switchTab(next AppState) (tea.Model, tea.Cmd) {
	cmd := m.leaveTab()
	m.state = next
	m.enterTab()
	return m, cmd
}

func (m Model) openView(v constants.View) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.state.OnMain() {
		cmd = m.leaveTab()
	} else {
		m.profile.Leave()
		m.settings.Leave()
	}
	m.state = m.state.OpenView(v)
	m.enterTab()
	return m, cmd
}

func (m Model) toggleDark() (tea.Model, tea.Cmd) {
	m.state = m.state.ToggleDarkMode()
	m.setStyles()
	if err := preferences.SetDarkMode(m.store, m.state.DarkMode); err != nil {
		return m, common.Fail("Failed to save dark mode", err)
	}
	logger.Debug("Toggled dark mode", "dark", m.state.DarkMode)
	return m, nil
}

func (m Model) applyTheme(theme string) (tea.Model, tea.Cmd) {
	dark := preferences.ResolveDark(theme, m.state.DarkMode)
	if dark == m.state.DarkMode {
		return m, nil
	}
	return m.toggleDark()
}

func (m *Model) setStyles() {
	s := common.NewStyles(m.state.DarkMode)
	m.styles = s
	m.mood.SetStyles(s)
	m.journal.SetStyles(s)
	m.vent.SetStyles(s)
	m.affirmations.SetStyles(s)
	m.breathing.SetStyles(s)
	m.profile.SetStyles(s)
	m.settings.SetStyles(s)
	m.support.SetStyles(s)
}

func (m *Model) resize() {
	// header, tabs, status and help take about six lines
	h := m.height - 6
	m.mood.SetSize(m.width, h)
	m.journal.SetSize(m.width, h)
	m.vent.SetSize(m.width, h)
	m.affirmations.SetSize(m.width, h)
	m.profile.SetSize(m.width, h)
	m.support.SetSize(m.width, h)
}

func (m Model) exportData() tea.Cmd {
	path, err := export.Write(m.store, m.exportDir, m.now())
	if err != nil {
		return common.Fail("Failed to export data", err)
	}
	return common.Status(fmt.Sprintf("Data exported to %s", path))
}

// updateActive forwards msg to the visible component
func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state.View {
	case constants.ViewProfile:
		m.profile, cmd = m.profile.Update(msg)
		return m, cmd
	case constants.ViewSettings:
		m.settings, cmd = m.settings.Update(msg)
		return m, cmd
	case constants.ViewHelp:
		m.support, cmd = m.support.Update(msg)
		return m, cmd
	}

	switch m.state.Tab {
	case constants.TabMood:
		m.mood, cmd = m.mood.Update(msg)
	case constants.TabJournal:
		m.journal, cmd = m.journal.Update(msg)
	case constants.TabVent:
		m.vent, cmd = m.vent.Update(msg)
	case constants.TabAffirmations:
		m.affirmations, cmd = m.affirmations.Update(msg)
	case constants.TabBreathing:
		m.breathing, cmd = m.breathing.Update(msg)
	}
	return m, cmd
}
