package preferences

import (
	"fmt"
	"slices"

	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/logger"
	"github.com/julianstephens/mindmate/internal/models"
	"github.com/julianstephens/mindmate/internal/storage"
)

// DarkMode returns the stored preference, falling back to systemDark when
// nothing usable is stored.
func DarkMode(store storage.Provider, systemDark bool) (bool, error) {
	res, err := storage.ReadValue(store, constants.KeyDarkMode, "")
	if err != nil {
		return systemDark, fmt.Errorf("failed to read dark mode: %w", err)
	}
	switch res.Value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "":
		return systemDark, nil
	default:
		logger.Warn("Ignoring unknown dark mode value", "value", res.Value)
		return systemDark, nil
	}
}

// SetDarkMode stores the preference as "true" or "false"
func SetDarkMode(store storage.Provider, dark bool) error {
	value := "false"
	if dark {
		value = "true"
	}
	if err := storage.WriteValue(store, constants.KeyDarkMode, value); err != nil {
		return fmt.Errorf("failed to save dark mode: %w", err)
	}
	return nil
}

// Defaults returns the settings used before anything is saved
func Defaults() models.Settings {
	return models.Settings{
		Notifications:     constants.DefaultNotifications,
		SoundEnabled:      constants.DefaultSoundEnabled,
		DataSharing:       constants.DefaultDataSharing,
		AutoBackup:        constants.DefaultAutoBackup,
		ShowSensitiveData: constants.DefaultShowSensitiveData,
		Language:          constants.DefaultLanguage,
		Theme:             constants.DefaultTheme,
	}
}

// LoadSettings returns the saved settings. Missing fields of a partially
// stored object keep their defaults.
func LoadSettings(store storage.Provider) (models.Settings, error) {
	res, err := storage.ReadValue(store, constants.KeySettings, Defaults())
	if err != nil {
		return Defaults(), fmt.Errorf("failed to read settings: %w", err)
	}
	s := res.Value
	if !slices.Contains(constants.Languages, s.Language) {
		s.Language = constants.DefaultLanguage
	}
	if !slices.Contains(constants.Themes, s.Theme) {
		s.Theme = constants.DefaultTheme
	}
	return s, nil
}

// SaveSettings validates and persists s
func SaveSettings(store storage.Provider, s models.Settings) error {
	if !slices.Contains(constants.Languages, s.Language) {
		return fmt.Errorf("unsupported language %q", s.Language)
	}
	if !slices.Contains(constants.Themes, s.Theme) {
		return fmt.Errorf("unsupported theme %q", s.Theme)
	}
	if err := storage.WriteValue(store, constants.KeySettings, s); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// ResolveDark applies the theme setting on top of the dark mode preference.
// The System theme defers to the preference.
func ResolveDark(theme string, preference bool) bool {
	switch theme {
	case constants.ThemeDark:
		return true
	case constants.ThemeLight:
		return false
	default:
		return preference
	}
}
