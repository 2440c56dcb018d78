package constants

const (
	// Theme choices offered by the settings screen
	ThemeSystem = "System"
	ThemeLight  = "Light"
	ThemeDark   = "Dark"

	// Default settings values
	DefaultNotifications     = true
	DefaultSoundEnabled      = true
	DefaultDataSharing       = false
	DefaultAutoBackup        = true
	DefaultShowSensitiveData = false
	DefaultLanguage          = "English"
	DefaultTheme             = ThemeSystem
)

// Languages offered by the settings screen
var Languages = []string{"English", "Spanish", "French", "German"}

// Themes offered by the settings screen
var Themes = []string{ThemeSystem, ThemeLight, ThemeDark}
