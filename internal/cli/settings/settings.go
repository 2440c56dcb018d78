package settings

import (
	"fmt"

	"github.com/julianstephens/mindmate/internal/cli"
	"github.com/julianstephens/mindmate/internal/preferences"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Notifications     *bool   `help:"Enable or disable notifications."`
	Sound             *bool   `help:"Enable or disable sounds."`
	DataSharing       *bool   `help:"Share anonymous usage data."`
	AutoBackup        *bool   `help:"Back up the store when the TUI starts."`
	ShowSensitiveData *bool   `help:"Show full journal text in listings."`
	Language          *string `help:"Interface language (${languages})."`
	Theme             *string `help:"Color theme (${themes})."`
	DarkMode          *bool   `help:"Dark mode preference used by the System theme."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := preferences.LoadSettings(ctx.Store)
	if err != nil {
		return err
	}

	if c.List {
		dark, err := preferences.DarkMode(ctx.Store, ctx.SystemDark)
		if err != nil {
			return err
		}
		ctx.Println("Current Settings:")
		ctx.Printf("  Notifications:         %v\n", settings.Notifications)
		ctx.Printf("  Sound:                 %v\n", settings.SoundEnabled)
		ctx.Printf("  Data Sharing:          %v\n", settings.DataSharing)
		ctx.Printf("  Auto Backup:           %v\n", settings.AutoBackup)
		ctx.Printf("  Show Sensitive Data:   %v\n", settings.ShowSensitiveData)
		ctx.Printf("  Language:              %s\n", settings.Language)
		ctx.Printf("  Theme:                 %s\n", settings.Theme)
		ctx.Printf("  Dark Mode:             %v\n", preferences.ResolveDark(settings.Theme, dark))
		return nil
	}

	updated := false
	apply := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
			updated = true
		}
	}
	apply(&settings.Notifications, c.Notifications)
	apply(&settings.SoundEnabled, c.Sound)
	apply(&settings.DataSharing, c.DataSharing)
	apply(&settings.AutoBackup, c.AutoBackup)
	apply(&settings.ShowSensitiveData, c.ShowSensitiveData)
	if c.Language != nil {
		settings.Language = *c.Language
		updated = true
	}
	if c.Theme != nil {
		settings.Theme = *c.Theme
		updated = true
	}

	if c.DarkMode != nil {
		if err := preferences.SetDarkMode(ctx.Store, *c.DarkMode); err != nil {
			return err
		}
		ctx.Println("Dark mode preference updated.")
	}

	if updated {
		if err := preferences.SaveSettings(ctx.Store, settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		ctx.Println("Settings updated successfully.")
	} else if c.DarkMode == nil {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
	}
	return nil
}
