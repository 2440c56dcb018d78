package backups

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/mindmate/internal/cli"
	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/storage"
)

func setupTestContext(t *testing.T, input string) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := storage.NewProvider(filepath.Join(t.TempDir(), "mindmate.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	out := &bytes.Buffer{}
	ctx := cli.NewContext(store, false)
	ctx.Out = out
	ctx.In = strings.NewReader(input)
	return ctx, out
}

func TestBackupListEmpty(t *testing.T) {
	ctx, out := setupTestContext(t, "")

	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup list failed: %v", err)
	}
	if !strings.Contains(out.String(), "No backups found.") {
		t.Errorf("output = %q", out)
	}
}

func TestBackupCreateAndRestore(t *testing.T) {
	ctx, out := setupTestContext(t, "")

	if err := ctx.Store.Set(constants.KeyMoods, []byte(`[{"date":"2026-10-17","mood":5,"note":""}]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup create failed: %v", err)
	}
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup list failed: %v", err)
	}
	if !strings.Contains(out.String(), "1 total") {
		t.Errorf("list output = %q", out)
	}

	// find the backup's file name from the create line
	var name string
	for _, line := range strings.Split(out.String(), "\n") {
		if rest, ok := strings.CutPrefix(line, "✓ Backup created: "); ok {
			name = rest
		}
	}
	if name == "" {
		t.Fatalf("no backup name in output %q", out)
	}

	if err := ctx.Store.Set(constants.KeyMoods, []byte(`[]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := (&BackupRestoreCmd{BackupFile: name, Yes: true}).Run(ctx); err != nil {
		t.Fatalf("backup restore failed: %v", err)
	}

	if err := ctx.Store.Load(); err != nil {
		t.Fatalf("Load() after restore error = %v", err)
	}
	raw, _, err := ctx.Store.Get(constants.KeyMoods)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !strings.Contains(string(raw), `"mood":5`) {
		t.Errorf("moods after restore = %s", raw)
	}
}

func TestBackupRestoreDeclined(t *testing.T) {
	ctx, out := setupTestContext(t, "n\n")

	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup create failed: %v", err)
	}
	if err := (&BackupRestoreCmd{BackupFile: "anything.db"}).Run(ctx); err != nil {
		t.Fatalf("declined restore returned %v", err)
	}
	if !strings.Contains(out.String(), "Restore cancelled.") {
		t.Errorf("output = %q", out)
	}
}
