package tui

import (
	"testing"

	"github.com/julianstephens/mindmate/internal/constants"
)

func TestTabCycle(t *testing.T) {
	s := NewAppState(constants.TabMood, false)

	next := s.NextTab()
	if next.Tab != constants.TabJournal {
		t.Errorf("NextTab() = %v, want journal", next.Tab)
	}
	if s.Tab != constants.TabMood {
		t.Error("NextTab() mutated the receiver")
	}

	if got := s.PrevTab().Tab; got != constants.TabBreathing {
		t.Errorf("PrevTab() from mood = %v, want breathing", got)
	}

	cur := s
	for i := 0; i < constants.TabCount; i++ {
		cur = cur.NextTab()
	}
	if cur.Tab != s.Tab {
		t.Errorf("full cycle ended on %v", cur.Tab)
	}
}

func TestSelectTab(t *testing.T) {
	s := NewAppState(constants.TabMood, false).OpenView(constants.ViewSettings)

	got := s.SelectTab(constants.TabVent)
	if got.Tab != constants.TabVent || got.View != constants.ViewMain {
		t.Errorf("SelectTab() = %+v", got)
	}
	if bad := s.SelectTab(constants.Tab(9)); bad != s {
		t.Errorf("SelectTab(out of range) = %+v, want unchanged", bad)
	}
}

func TestViews(t *testing.T) {
	s := NewAppState(constants.TabJournal, true).ToggleMenu()
	if !s.MenuOpen {
		t.Fatal("ToggleMenu() did not open the menu")
	}

	profile := s.OpenView(constants.ViewProfile)
	if profile.View != constants.ViewProfile || profile.MenuOpen || profile.OnMain() {
		t.Errorf("OpenView() = %+v", profile)
	}

	back := profile.Back()
	if !back.OnMain() || back.Tab != constants.TabJournal {
		t.Errorf("Back() = %+v, want main on the same tab", back)
	}
}

func TestToggleDarkMode(t *testing.T) {
	s := NewAppState(constants.TabMood, false)
	if !s.ToggleDarkMode().DarkMode {
		t.Error("ToggleDarkMode() did not enable dark mode")
	}
	if s.ToggleDarkMode().ToggleDarkMode().DarkMode {
		t.Error("double toggle should restore the original value")
	}
}

func TestConfirm(t *testing.T) {
	s := NewAppState(constants.TabMood, false).ToggleMenu().Ask(ConfirmSignOut)
	if s.Confirm != ConfirmSignOut || s.MenuOpen {
		t.Errorf("Ask() = %+v", s)
	}
	if s.Answered().Confirm != ConfirmNone {
		t.Error("Answered() did not clear the question")
	}
}
