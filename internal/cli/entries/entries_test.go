package entries

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/mindmate/internal/affirmation"
	"github.com/julianstephens/mindmate/internal/cli"
	"github.com/julianstephens/mindmate/internal/journal"
	"github.com/julianstephens/mindmate/internal/models"
	"github.com/julianstephens/mindmate/internal/mood"
	"github.com/julianstephens/mindmate/internal/preferences"
	"github.com/julianstephens/mindmate/internal/storage"
)

var fixedNow = time.Date(2026, 10, 17, 9, 30, 0, 0, time.Local)

func setupTestContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := storage.NewProvider(filepath.Join(t.TempDir(), "mindmate.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	out := &bytes.Buffer{}
	ctx := cli.NewContext(store, false)
	ctx.Out = out
	ctx.Now = func() time.Time { return fixedNow }
	return ctx, out
}

func TestMoodSaveAndList(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&MoodSaveCmd{Level: 5, Note: "sunny walk"}).Run(ctx); err != nil {
		t.Fatalf("mood save failed: %v", err)
	}
	if !strings.Contains(out.String(), "Mood saved for 2026-10-17: 😁 Very Happy") {
		t.Errorf("save output = %q", out)
	}

	out.Reset()
	if err := (&MoodListCmd{}).Run(ctx); err != nil {
		t.Fatalf("mood list failed: %v", err)
	}
	if !strings.Contains(out.String(), "sunny walk") {
		t.Errorf("list output = %q", out)
	}
}

func TestMoodSaveRejectsInvalidLevel(t *testing.T) {
	ctx, _ := setupTestContext(t)

	err := (&MoodSaveCmd{Level: 7}).Run(ctx)
	if !errors.Is(err, models.ErrInvalidMoodLevel) {
		t.Errorf("mood save 7 error = %v, want ErrInvalidMoodLevel", err)
	}
}

func TestMoodTrend(t *testing.T) {
	ctx, out := setupTestContext(t)
	mgr := mood.NewManager(ctx.Store)
	if _, err := mgr.SaveFor(fixedNow.AddDate(0, 0, -1), 3, ""); err != nil {
		t.Fatalf("SaveFor() error = %v", err)
	}

	if err := (&MoodTrendCmd{Days: 7}).Run(ctx); err != nil {
		t.Fatalf("mood trend failed: %v", err)
	}
	if !strings.Contains(out.String(), "1 of 7 days logged (2026-10-11 to 2026-10-17)") {
		t.Errorf("trend output = %q", out)
	}

	if err := (&MoodTrendCmd{Days: 0}).Run(ctx); err == nil {
		t.Error("mood trend --days 0 succeeded")
	}
}

func TestJournalAddAndList(t *testing.T) {
	ctx, out := setupTestContext(t)

	text := "I feel happy and grateful today, " + strings.Repeat("the sun is out ", 6)
	if err := (&JournalAddCmd{Text: strings.Fields(text)}).Run(ctx); err != nil {
		t.Fatalf("journal add failed: %v", err)
	}
	if !strings.Contains(out.String(), "😊 Positive") {
		t.Errorf("add output = %q", out)
	}

	entries, err := journal.NewManager(ctx.Store, nil).Entries()
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Analysis == nil {
		t.Fatalf("entries = %+v, want one analyzed entry", entries)
	}

	out.Reset()
	if err := (&JournalListCmd{}).Run(ctx); err != nil {
		t.Fatalf("journal list failed: %v", err)
	}
	if !strings.Contains(out.String(), "…") {
		t.Errorf("list without sensitive data should truncate: %q", out)
	}

	s := preferences.Defaults()
	s.ShowSensitiveData = true
	if err := preferences.SaveSettings(ctx.Store, s); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}
	out.Reset()
	if err := (&JournalListCmd{}).Run(ctx); err != nil {
		t.Fatalf("journal list failed: %v", err)
	}
	if strings.Contains(out.String(), "…") {
		t.Errorf("list with sensitive data shown should not truncate: %q", out)
	}
}

func TestJournalAnalyzeEmpty(t *testing.T) {
	ctx, _ := setupTestContext(t)

	err := (&JournalAnalyzeCmd{Text: []string{"   "}}).Run(ctx)
	if !errors.Is(err, models.ErrEmptyText) {
		t.Errorf("analyze blank error = %v, want ErrEmptyText", err)
	}
}

func TestAffirmGenerateAndHistory(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&AffirmGenerateCmd{}).Run(ctx); err != nil {
		t.Fatalf("affirm generate failed: %v", err)
	}
	history, err := affirmation.NewGenerator(ctx.Store).History()
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history has %d records, want 1", len(history))
	}
	if !strings.Contains(out.String(), history[0].Text) {
		t.Errorf("generate output %q does not show %q", out, history[0].Text)
	}

	out.Reset()
	if err := (&AffirmHistoryCmd{}).Run(ctx); err != nil {
		t.Fatalf("affirm history failed: %v", err)
	}
	if !strings.Contains(out.String(), history[0].Text) {
		t.Errorf("history output = %q", out)
	}
}
