package journal

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/models"
	"github.com/julianstephens/mindmate/internal/storage"
)

func setupTestManager(t *testing.T) (*Manager, storage.Provider, func()) {
	t.Helper()
	store := storage.NewProvider(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return NewManager(store, nil), store, func() { store.Close() }
}

func TestSaveAppendsWithAnalysis(t *testing.T) {
	m, _, cleanup := setupTestManager(t)
	defer cleanup()

	now := time.Date(2026, 10, 17, 9, 15, 0, 0, time.UTC)
	m.SetClock(func() time.Time { return now })

	analysis, err := m.Analyze("I am happy and grateful")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Save("I am happy and grateful", &analysis); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := m.Save("no analysis this time", nil); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	// identical text is not deduplicated
	if _, err := m.Save("no analysis this time", nil); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := m.Entries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}
	if entries[0].Analysis == nil || entries[0].Analysis.Sentiment != models.SentimentPositive {
		t.Errorf("entries[0].Analysis = %+v", entries[0].Analysis)
	}
	if !entries[0].Date.Equal(now) {
		t.Errorf("entries[0].Date = %v, want %v", entries[0].Date, now)
	}
	if entries[1].Analysis != nil {
		t.Errorf("entries[1].Analysis = %+v, want nil", entries[1].Analysis)
	}
}

func TestSaveStoresNullAnalysis(t *testing.T) {
	m, store, cleanup := setupTestManager(t)
	defer cleanup()

	if _, err := m.Save("plain", nil); err != nil {
		t.Fatal(err)
	}
	raw, _, _ := store.Get(constants.KeyJournalEntries)
	if want := `"analysis":null`; !strings.Contains(string(raw), want) {
		t.Errorf("stored %s, want it to contain %s", raw, want)
	}
}

func TestSaveRejectsBlank(t *testing.T) {
	m, store, cleanup := setupTestManager(t)
	defer cleanup()

	if _, err := m.Save("  \n ", nil); !errors.Is(err, models.ErrEmptyText) {
		t.Errorf("Save() error = %v, want ErrEmptyText", err)
	}
	if _, ok, _ := store.Get(constants.KeyJournalEntries); ok {
		t.Error("journal written after validation failure")
	}
	if _, err := m.Analyze(""); !errors.Is(err, models.ErrEmptyText) {
		t.Errorf("Analyze() error = %v, want ErrEmptyText", err)
	}
}

func TestSaveRecoversFromMalformedCollection(t *testing.T) {
	m, store, cleanup := setupTestManager(t)
	defer cleanup()

	if err := store.Set(constants.KeyJournalEntries, []byte("[{broken")); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Save("fresh start", nil); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	entries, _ := m.Entries()
	if len(entries) != 1 || entries[0].Text != "fresh start" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestPreview(t *testing.T) {
	long := strings.Repeat("word ", 20)
	tests := []struct {
		name string
		text string
		full bool
		want int
	}{
		{"short text kept", "a  short\nnote", false, len("a short note")},
		{"long text cut", long, false, PreviewLength},
		{"long text full", long, true, len(strings.TrimSpace(long))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Preview(tt.text, tt.full)
			if n := len([]rune(got)); n != tt.want {
				t.Errorf("Preview() length = %d, want %d (%q)", n, tt.want, got)
			}
		})
	}
	if got := Preview(long, false); !strings.HasSuffix(got, "…") {
		t.Errorf("cut preview %q has no ellipsis", got)
	}
}
