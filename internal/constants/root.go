package constants

import "time"

// Tab identifies one of the main feature tabs
type Tab int

// View identifies the top-level screen shown by the shell
type View int

const (
	AppName           = "mindmate"
	DefaultConfigPath = "~/.config/mindmate/mindmate.db"
	Version           = "v0.3.0"

	// DateFormat is the calendar-day key format (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimestampFormat is used for every persisted timestamp
	TimestampFormat = time.RFC3339Nano
	// DisplayTimeFormat is used when printing timestamps to the terminal
	DisplayTimeFormat = "Jan 2, 2006 3:04 PM"

	// Collection keys
	KeyMoods             = "moods"
	KeyJournalEntries    = "journalEntries"
	KeyAffirmations      = "affirmationsHistory"
	KeyDarkMode          = "darkMode"
	KeySettings          = "settings"
	KeyProfile           = "profile"
	KeyBreathingSessions = "breathingSessions"

	// Mood scale bounds
	MinMoodLevel = 1
	MaxMoodLevel = 5
	TrendDays    = 7

	// Affirmations
	AffirmationHistoryCap = 10
	AffirmationDelay      = 800 * time.Millisecond

	// Journal
	AnalysisDelay = 1500 * time.Millisecond

	// Vent space
	VentPostTTL       = 10 * time.Minute
	VentSweepInterval = time.Second

	// Breathing
	BreathingTick       = time.Second
	BreathingCycleSec   = 8
	BreathingInhaleSecs = 4

	// Export
	ExportFileName = "mindmate-data-export.json"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "mindmate-"

	// Logging
	LogDirName  = "logs"
	LogFileName = "mindmate.log"
)

const (
	TabMood Tab = iota
	TabJournal
	TabVent
	TabAffirmations
	TabBreathing
)

// TabCount is the number of main tabs
const TabCount = 5

const (
	ViewMain View = iota
	ViewProfile
	ViewSettings
	ViewHelp
)

var tabTitles = [TabCount]string{"Mood Tracker", "Journal", "Vent Space", "Affirmations", "Breathing"}
var tabSlugs = [TabCount]string{"mood", "journal", "vent", "affirmations", "breathing"}

func (t Tab) String() string {
	if t < 0 || int(t) >= TabCount {
		return "unknown"
	}
	return tabTitles[t]
}

// Slug returns the short command-line name for the tab
func (t Tab) Slug() string {
	if t < 0 || int(t) >= TabCount {
		return ""
	}
	return tabSlugs[t]
}

// ParseTab maps a slug such as "journal" to its Tab
func ParseTab(s string) (Tab, bool) {
	for i, slug := range tabSlugs {
		if slug == s {
			return Tab(i), true
		}
	}
	return TabMood, false
}

// TabSlugs lists the valid tab names in display order
func TabSlugs() []string {
	return tabSlugs[:]
}

func (v View) String() string {
	switch v {
	case ViewMain:
		return "main"
	case ViewProfile:
		return "profile"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}
