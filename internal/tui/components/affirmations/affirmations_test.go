package affirmations

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/mindmate/internal/affirmation"
	"github.com/julianstephens/mindmate/internal/async"
	"github.com/julianstephens/mindmate/internal/storage"
	"github.com/julianstephens/mindmate/internal/tui/common"
)

func setupTestModel(t *testing.T) (Model, *affirmation.Generator) {
	t.Helper()
	store := storage.NewProvider(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	gen := affirmation.NewGenerator(store)
	return New(context.Background(), gen, common.NewStyles(false)), gen
}

var generateKey = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")}

func TestGenerateRecordsHistory(t *testing.T) {
	m, gen := setupTestModel(t)

	m, cmd := m.Update(generateKey)
	if cmd == nil || !m.Generating() {
		t.Fatal("expected a pending generation")
	}
	id := m.task.ID

	m, _ = m.Update(async.Done{ID: id})
	if m.Generating() {
		t.Error("generation still pending after its result arrived")
	}
	if m.current == nil || m.current.Affirmation.Text == "" {
		t.Fatal("expected a current affirmation")
	}

	history, err := gen.History()
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 1 {
		t.Errorf("history length = %d, want 1", len(history))
	}
}

func TestGenerateIgnoresRepeatWhilePending(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = m.Update(generateKey)
	first := m.task.ID
	m, cmd := m.Update(generateKey)
	if cmd != nil {
		t.Error("second press started another generation")
	}
	if m.task.ID != first {
		t.Error("pending task was replaced")
	}
}

func TestLeaveDropsResult(t *testing.T) {
	m, gen := setupTestModel(t)

	m, _ = m.Update(generateKey)
	id := m.task.ID
	m.Leave()

	m, _ = m.Update(async.Done{ID: id})
	if m.current != nil {
		t.Error("result of a cancelled generation was shown")
	}
	history, _ := gen.History()
	if len(history) != 0 {
		t.Errorf("history length = %d, want 0", len(history))
	}
}
