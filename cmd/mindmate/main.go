package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mindmate/internal/cli"
	"github.com/julianstephens/mindmate/internal/cli/backups"
	"github.com/julianstephens/mindmate/internal/cli/data"
	"github.com/julianstephens/mindmate/internal/cli/entries"
	"github.com/julianstephens/mindmate/internal/cli/profiles"
	"github.com/julianstephens/mindmate/internal/cli/settings"
	"github.com/julianstephens/mindmate/internal/cli/system"
	"github.com/julianstephens/mindmate/internal/constants"
	apperrors "github.com/julianstephens/mindmate/internal/errors"
	"github.com/julianstephens/mindmate/internal/logger"
	"github.com/julianstephens/mindmate/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store path. A .json file selects the JSON store, anything else SQLite." type:"path" env:"MINDMATE_CONFIG" default:"${default_config}"`
	Debug   bool   `help:"Log at debug level and mirror logs to stderr." env:"MINDMATE_DEBUG"`

	Init     system.InitCmd       `cmd:"" help:"Initialize mindmate storage."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Breathe  system.BreatheCmd    `cmd:"" help:"Start a guided breathing session."`
	Mood     entries.MoodCmd      `cmd:"" help:"Record and review moods."`
	Journal  entries.JournalCmd   `cmd:"" help:"Write and review journal entries."`
	Affirm   entries.AffirmCmd    `cmd:"" help:"Generate affirmations."`
	Export   data.ExportCmd       `cmd:"" help:"Export moods, journal entries and affirmations to JSON."`
	Import   data.ImportCmd       `cmd:"" help:"Import a JSON export."`
	Clear    data.ClearCmd        `cmd:"" help:"Clear all moods, journal entries and affirmations."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Profile  profiles.ProfileCmd  `cmd:"" help:"Show or update your profile."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Faq      system.FaqCmd        `cmd:"" help:"Show emergency contacts and frequently asked questions."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`
}

func options() []kong.Option {
	return []kong.Option{
		kong.Name(constants.AppName),
		kong.Description("A terminal companion for mood tracking, journaling and calm."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
			"export_file":    constants.ExportFileName,
			"tabs":           strings.Join(constants.TabSlugs(), ", "),
			"languages":      strings.Join(constants.Languages, ", "),
			"themes":         strings.Join(constants.Themes, ", "),
		},
	}
}

func main() {
	ctx := kong.Parse(&CLI, options()...)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(CLI.Config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	store := storage.NewProvider(CLI.Config)
	defer store.Close()

	// init handles its own loading
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}

	appCtx := cli.NewContext(store, lipgloss.HasDarkBackground())
	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}
