package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mindmate/internal/constants"
)

var confirmPrompts = map[Confirm]string{
	ConfirmClear:   "Are you sure you want to clear all your data? This action cannot be undone.",
	ConfirmSignOut: "Are you sure you want to sign out?",
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch {
	case m.state.Confirm != ConfirmNone:
		content = m.viewConfirm()
	case m.state.MenuOpen:
		content = m.viewMenu()
	default:
		content = m.viewActive()
	}

	parts := []string{m.viewHeader()}
	if m.state.OnMain() {
		parts = append(parts, m.viewTabs())
	}
	parts = append(parts, m.styles.Doc.Render(content))
	if line := m.viewStatus(); line != "" {
		parts = append(parts, line)
	}
	parts = append(parts, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewHeader() string {
	mode := "☀ light"
	if m.state.DarkMode {
		mode = "☾ dark"
	}
	title := "MindMate"
	if !m.state.OnMain() {
		title += " · " + m.state.View.String()
	}
	return m.styles.Header.Render(title) + m.styles.Muted.Render(mode)
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, constants.TabCount)
	for i := range constants.TabCount {
		t := constants.Tab(i)
		if t == m.state.Tab {
			tabs = append(tabs, m.styles.ActiveTab.Render(t.String()))
		} else {
			tabs = append(tabs, m.styles.InactiveTab.Render(t.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Menu"))
	b.WriteString("\n")
	items := [][2]string{
		{"p", "Profile"},
		{"s", "Settings"},
		{"h", "Help & Support"},
		{"d", "Toggle dark mode"},
		{"o", "Sign out"},
	}
	for _, it := range items {
		b.WriteString(m.styles.Accent.Render("["+it[0]+"]") + " " + it[1] + "\n")
	}
	b.WriteString("\n" + m.styles.Muted.Render("esc or m to close"))
	return m.styles.Box.Render(b.String())
}

func (m Model) viewConfirm() string {
	prompt := confirmPrompts[m.state.Confirm]
	body := m.styles.Warning.Render(prompt) + "\n\n" +
		m.styles.Danger.Render("[y] Yes") + "   " + m.styles.Muted.Render("[n] No")
	return m.styles.Box.Render(body)
}

func (m Model) viewActive() string {
	switch m.state.View {
	case constants.ViewProfile:
		return m.profile.View()
	case constants.ViewSettings:
		return m.settings.View()
	case constants.ViewHelp:
		return m.support.View()
	}

	switch m.state.Tab {
	case constants.TabMood:
		return m.mood.View()
	case constants.TabJournal:
		return m.journal.View()
	case constants.TabVent:
		return m.vent.View()
	case constants.TabAffirmations:
		return m.affirmations.View()
	case constants.TabBreathing:
		return m.breathing.View()
	}
	return ""
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return m.styles.StatusErr.Render(m.status)
	}
	return m.styles.StatusOK.Render(m.status)
}
