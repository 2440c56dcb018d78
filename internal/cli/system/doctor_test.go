package system

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/mindmate/internal/cli"
	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/storage"
	"github.com/julianstephens/mindmate/internal/storage/sqlite"
)

func setupTestContext(t *testing.T, name string) (*cli.Context, *bytes.Buffer, func()) {
	t.Helper()
	store := storage.NewProvider(filepath.Join(t.TempDir(), name))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}

	out := &bytes.Buffer{}
	ctx := cli.NewContext(store, false)
	ctx.Out = out
	ctx.In = strings.NewReader("")

	return ctx, out, func() { store.Close() }
}

func TestDoctorCmd_HealthyStore(t *testing.T) {
	for _, name := range []string{"test.db", "test.json"} {
		t.Run(name, func(t *testing.T) {
			ctx, out, cleanup := setupTestContext(t, name)
			defer cleanup()

			// missing backups is a warning, not a failure
			if err := (&DoctorCmd{}).Run(ctx); err != nil {
				t.Errorf("doctor failed on a healthy store: %v\n%s", err, out)
			}
			if !strings.Contains(out.String(), "⚠ Backups present: WARNING") {
				t.Errorf("expected a backup warning, got:\n%s", out)
			}
		})
	}
}

func TestDoctorCmd_MalformedCollection(t *testing.T) {
	ctx, out, cleanup := setupTestContext(t, "test.db")
	defer cleanup()

	if err := ctx.Store.Set(constants.KeyMoods, []byte(`{"not":"a list"}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Fatal("doctor passed with a malformed collection")
	}
	if !strings.Contains(out.String(), `collection "moods" is malformed`) {
		t.Errorf("output does not name the collection:\n%s", out)
	}
}

func TestDoctorCmd_NewerSchema(t *testing.T) {
	ctx, _, cleanup := setupTestContext(t, "test.db")
	defer cleanup()

	db := ctx.Store.(*sqlite.Store).GetDB()
	if _, err := db.Exec("UPDATE schema_version SET version = 999"); err != nil {
		t.Fatalf("failed to bump schema version: %v", err)
	}

	if err := checkSchemaVersion(ctx); err == nil {
		t.Error("checkSchemaVersion() accepted a newer schema")
	}
}

func TestCheckClockTimezone(t *testing.T) {
	if err := checkClockTimezone(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Errorf("checkClockTimezone(2026) = %v", err)
	}
	if err := checkClockTimezone(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)); err == nil {
		t.Error("checkClockTimezone(1999) passed")
	}
}

func TestInitCmd_Force(t *testing.T) {
	ctx, out, cleanup := setupTestContext(t, "test.json")
	defer cleanup()

	if err := ctx.Store.Set(constants.KeyMoods, []byte(`[]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}
	if !strings.Contains(out.String(), "Deleted existing store") {
		t.Errorf("output = %q", out)
	}
	if _, ok, _ := ctx.Store.Get(constants.KeyMoods); ok {
		t.Error("data survived init --force")
	}
}

func TestFaqCmd(t *testing.T) {
	ctx, out, cleanup := setupTestContext(t, "test.db")
	defer cleanup()

	if err := (&FaqCmd{}).Run(ctx); err != nil {
		t.Fatalf("faq failed: %v", err)
	}
	for _, want := range []string{"988", "Frequently Asked Questions"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("faq output missing %q", want)
		}
	}
}
