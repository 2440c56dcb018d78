package profiles

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/mindmate/internal/cli"
	"github.com/julianstephens/mindmate/internal/mood"
	"github.com/julianstephens/mindmate/internal/profile"
	"github.com/julianstephens/mindmate/internal/storage"
)

var fixedNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.Local)

func setupTestContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := storage.NewProvider(filepath.Join(t.TempDir(), "test.db"))
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

func TestProfileSetAndShow(t *testing.T) {
	ctx, out := setupTestContext(t)

	name, email := "  Sam  ", "sam@example.com"
	if err := (&ProfileSetCmd{Name: &name, Email: &email}).Run(ctx); err != nil {
		t.Fatalf("profile set failed: %v", err)
	}
	p, err := profile.Load(ctx.Store, fixedNow)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Name != "Sam" || p.JoinDate != "2026-10-17" {
		t.Errorf("profile = %+v", p)
	}

	mgr := mood.NewManager(ctx.Store)
	for i := 0; i < 3; i++ {
		if _, err := mgr.SaveFor(fixedNow.AddDate(0, 0, -i), 4, ""); err != nil {
			t.Fatalf("SaveFor() error = %v", err)
		}
	}

	out.Reset()
	if err := (&ProfileShowCmd{}).Run(ctx); err != nil {
		t.Fatalf("profile show failed: %v", err)
	}
	for _, want := range []string{"Name:      Sam", "Current streak:    3 days", "Mood average:      4.0"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}
}

func TestProfileSetValidates(t *testing.T) {
	ctx, _ := setupTestContext(t)

	bad := "not an email"
	if err := (&ProfileSetCmd{Email: &bad}).Run(ctx); err == nil {
		t.Error("invalid email was accepted")
	}
	date := "17/10/2026"
	if err := (&ProfileSetCmd{JoinDate: &date}).Run(ctx); err == nil {
		t.Error("invalid join date was accepted")
	}
}
