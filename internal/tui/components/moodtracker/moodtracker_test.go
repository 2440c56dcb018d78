package moodtracker

import (
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/mindmate/internal/models"
	"github.com/julianstephens/mindmate/internal/mood"
	"github.com/julianstephens/mindmate/internal/storage"
	"github.com/julianstephens/mindmate/internal/tui/common"
)

func setupTestModel(t *testing.T) (Model, *mood.Manager) {
	t.Helper()
	store := storage.NewProvider(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	mgr := mood.NewManager(store)
	return New(mgr, common.NewStyles(true)), mgr
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func statusOf(t *testing.T, cmd tea.Cmd) common.StatusMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a status command")
	}
	msg, ok := cmd().(common.StatusMsg)
	if !ok {
		t.Fatalf("command produced %T, want StatusMsg", cmd())
	}
	return msg
}

func TestSaveWithoutSelection(t *testing.T) {
	m, mgr := setupTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if st := statusOf(t, cmd); !st.Err {
		t.Errorf("status = %+v, want an error", st)
	}
	entries, err := mgr.Entries()
	if err != nil || len(entries) != 0 {
		t.Errorf("Entries() = %v, %v, want none", entries, err)
	}
	if _, err := mgr.SaveMood(); !errors.Is(err, models.ErrNoMoodSelected) {
		t.Errorf("SaveMood() error = %v", err)
	}
}

func TestSelectAndSave(t *testing.T) {
	m, mgr := setupTestModel(t)

	m, _ = m.Update(runes("2"))
	m, _ = m.Update(runes("l"))
	if level, ok := mgr.Pending(); !ok || level != 3 {
		t.Fatalf("Pending() = %d, %v, want 3", level, ok)
	}

	// the note field captures keys until esc
	m, _ = m.Update(runes("n"))
	if !m.Capturing() {
		t.Fatal("n did not focus the note")
	}
	for _, r := range "ok day" {
		m, _ = m.Update(runes(string(r)))
	}
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if st := statusOf(t, cmd); st.Err {
		t.Fatalf("save failed: %s", st.Text)
	}
	if m.Capturing() {
		t.Error("note still focused after save")
	}

	entries, err := mgr.Entries()
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Mood != 3 || entries[0].Note != "ok day" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestStepClamps(t *testing.T) {
	m, mgr := setupTestModel(t)

	// first step lands on neutral, then clamps at the top
	for i := 0; i < 5; i++ {
		m, _ = m.Update(runes("l"))
	}
	if level, _ := mgr.Pending(); level != 5 {
		t.Errorf("Pending() = %d, want 5", level)
	}
	for i := 0; i < 8; i++ {
		m, _ = m.Update(runes("h"))
	}
	if level, _ := mgr.Pending(); level != 1 {
		t.Errorf("Pending() = %d, want 1", level)
	}
}
