package breathe

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/mindmate/internal/breathing"
	"github.com/julianstephens/mindmate/internal/storage"
	"github.com/julianstephens/mindmate/internal/tui/common"
)

func setupTestModel(t *testing.T) (Model, storage.Provider) {
	t.Helper()
	store := storage.NewProvider(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	m := New(store, common.NewStyles(true))
	m.now = func() time.Time { return time.Date(2026, 10, 17, 7, 0, 0, 0, time.UTC) }
	return m, store
}

func TestSessionRecordedAfterFullCycle(t *testing.T) {
	m, store := setupTestModel(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !m.Running() {
		t.Fatal("space did not start a session")
	}
	session := m.driver.Session()
	for i := 0; i < 9; i++ {
		m, _ = m.Update(TickMsg{Session: session})
	}

	cmd := m.Leave()
	if m.Running() {
		t.Error("Leave() did not stop the session")
	}
	if cmd == nil || cmd().(common.StatusMsg).Err {
		t.Fatal("Leave() did not report a saved session")
	}

	sessions, err := breathing.Sessions(store)
	if err != nil {
		t.Fatalf("Sessions() error = %v", err)
	}
	if len(sessions) != 1 || sessions[0].Seconds != 9 {
		t.Errorf("sessions = %+v", sessions)
	}
}

func TestStaleTickIgnored(t *testing.T) {
	m, store := setupTestModel(t)

	m.Start()
	old := m.driver.Session()
	m.Leave()
	m.Start()

	m, cmd := m.Update(TickMsg{Session: old})
	if cmd != nil || m.driver.Elapsed() != 0 {
		t.Errorf("stale tick advanced the session: elapsed=%d", m.driver.Elapsed())
	}

	// a short session is not recorded
	m.Leave()
	sessions, err := breathing.Sessions(store)
	if err != nil || len(sessions) != 0 {
		t.Errorf("Sessions() = %v, %v, want none", sessions, err)
	}
}

func TestSoundToggle(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	if m.sound != 1 {
		t.Errorf("sound = %d, want 1", m.sound)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	if m.sound != -1 {
		t.Errorf("sound = %d, want none", m.sound)
	}
}
