package system

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"time"

	"github.com/julianstephens/mindmate/internal/backup"
	"github.com/julianstephens/mindmate/internal/cli"
	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/migration"
	"github.com/julianstephens/mindmate/internal/models"
	"github.com/julianstephens/mindmate/internal/storage"
	"github.com/julianstephens/mindmate/internal/storage/sqlite"
	"github.com/julianstephens/mindmate/migrations"
)

type DoctorCmd struct{}

type check struct {
	name string
	run  func(*cli.Context) error
	// warnOnly checks report a warning instead of failing the run
	warnOnly bool
}

var checks = []check{
	{name: "Store reachable", run: checkStoreReachable},
	{name: "Schema version", run: checkSchemaVersion},
	{name: "Collections decode", run: checkCollections},
	{name: "Backups present", run: checkBackupsPresent, warnOnly: true},
	{name: "Clock/timezone", run: func(*cli.Context) error { return checkClockTimezone(time.Now()) }},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	reachable := true
	for _, c := range checks {
		if !reachable && c.name != "Clock/timezone" {
			ctx.Printf("⊘ %s: SKIPPED (store not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
			if c.name == "Store reachable" {
				reachable = false
			}
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	if _, err := ctx.Store.Keys(); err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	store, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		// JSON stores are unversioned
		return nil
	}
	db := store.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return err
	}
	runner := migration.NewRunner(db, subFS)
	current, err := runner.CurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latest, err := runner.LatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}
	if current != latest {
		return fmt.Errorf("schema version %d, expected %d", current, latest)
	}
	return nil
}

// checkCollections fails when a known collection holds malformed JSON. The
// app would silently fall back to defaults for it.
func checkCollections(ctx *cli.Context) error {
	targets := map[string]any{
		constants.KeyMoods:             &[]models.MoodEntry{},
		constants.KeyJournalEntries:    &[]models.JournalEntry{},
		constants.KeyAffirmations:      &[]models.Affirmation{},
		constants.KeyBreathingSessions: &[]models.BreathingSession{},
		constants.KeySettings:          &models.Settings{},
		constants.KeyProfile:           &models.Profile{},
	}
	for key, target := range targets {
		raw, ok, err := ctx.Store.Get(key)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return fmt.Errorf("collection %q is malformed: %w", key, err)
		}
	}

	res, err := storage.ReadValue(ctx.Store, constants.KeyDarkMode, "")
	if err != nil {
		return err
	}
	if res.Recovered() {
		return fmt.Errorf("collection %q is malformed: %w", constants.KeyDarkMode, res.Err)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'mindmate backup create'")
	}
	return nil
}

func checkClockTimezone(now time.Time) error {
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
