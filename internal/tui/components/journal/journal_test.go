package journal

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/mindmate/internal/async"
	"github.com/julianstephens/mindmate/internal/journal"
	"github.com/julianstephens/mindmate/internal/models"
	"github.com/julianstephens/mindmate/internal/storage"
	"github.com/julianstephens/mindmate/internal/tui/common"
)

func setupTestModel(t *testing.T) (Model, *journal.Manager) {
	t.Helper()
	store := storage.NewProvider(filepath.Join(t.TempDir(), "test.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	mgr := journal.NewManager(store, nil)
	return New(context.Background(), mgr, common.NewStyles(true)), mgr
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// write focuses the editor, types text and stops writing
func write(m Model, text string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(runes(text))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	return m
}

func TestAnalyzeThenSave(t *testing.T) {
	m, mgr := setupTestModel(t)
	m = write(m, "today was a good day")
	if m.Capturing() {
		t.Fatal("editor still focused after esc")
	}

	m, cmd := m.Update(runes("a"))
	if cmd == nil || !m.Analyzing() {
		t.Fatal("expected a pending analysis")
	}
	want := models.Analysis{Sentiment: models.SentimentPositive, Emoji: "😊", Color: "green"}
	m, _ = m.Update(async.Done{ID: m.task.ID, Value: want})
	if m.analysis == nil || *m.analysis != want {
		t.Fatalf("analysis = %+v, want %+v", m.analysis, want)
	}

	m, cmd = m.Update(runes("s"))
	if cmd == nil {
		t.Fatal("expected a status after saving")
	}
	if st := cmd().(common.StatusMsg); st.Err {
		t.Fatalf("save failed: %s", st.Text)
	}

	entries, err := mgr.Entries()
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Analysis == nil || entries[0].Analysis.Sentiment != models.SentimentPositive {
		t.Errorf("saved analysis = %+v", entries[0].Analysis)
	}
	if m.editor.Value() != "" || m.analysis != nil {
		t.Error("draft not reset after save")
	}
}

func TestEditingDiscardsAnalysis(t *testing.T) {
	m, _ := setupTestModel(t)
	m = write(m, "calm")

	m, _ = m.Update(runes("a"))
	m, _ = m.Update(async.Done{ID: m.task.ID, Value: models.Analysis{Sentiment: models.SentimentNeutral}})
	if m.analysis == nil {
		t.Fatal("expected an analysis")
	}

	m = write(m, " and tired")
	if m.analysis != nil {
		t.Error("analysis kept after the draft changed")
	}
}

func TestAnalyzeEmptyDraft(t *testing.T) {
	m, _ := setupTestModel(t)

	m, cmd := m.Update(runes("a"))
	if m.Analyzing() {
		t.Error("analysis started for an empty draft")
	}
	if cmd == nil || !cmd().(common.StatusMsg).Err {
		t.Error("expected an error status")
	}
}

func TestStaleAnalysisIgnored(t *testing.T) {
	m, _ := setupTestModel(t)
	m = write(m, "hello")

	m, _ = m.Update(runes("a"))
	first := m.task.ID
	m, _ = m.Update(runes("a"))

	m, _ = m.Update(async.Done{ID: first, Value: models.Analysis{Sentiment: models.SentimentNegative}})
	if m.analysis != nil {
		t.Error("superseded analysis was applied")
	}
	if !m.Analyzing() {
		t.Error("latest analysis no longer pending")
	}
}

func TestRecentPreviews(t *testing.T) {
	m, mgr := setupTestModel(t)
	long := strings.Repeat("word ", 30)
	if _, err := mgr.Save(long, nil); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	m.Refresh()

	if strings.Contains(m.View(), strings.TrimSpace(long)) {
		t.Error("preview shows the full entry")
	}
	m.SetShowFull(true)
	if !strings.Contains(m.View(), strings.TrimSpace(long)) {
		t.Error("full text not shown with sensitive data enabled")
	}
}
