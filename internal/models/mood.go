package models

// MoodEntry is the single mood record kept for a calendar day
type MoodEntry struct {
	Date string `json:"date"` // YYYY-MM-DD
	Mood int    `json:"mood"` // 1..5
	Note string `json:"note"`
}

// MoodLevel describes one step on the five-point mood scale
type MoodLevel struct {
	Value int
	Emoji string
	Label string
	Color string
}

// TrendPoint is one day on the mood trend chart. Level is nil when no mood
// was logged that day.
type TrendPoint struct {
	Date  string
	Label string // short weekday, e.g. "Mon"
	Level *int
}
