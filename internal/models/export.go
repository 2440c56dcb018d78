package models

import "time"

// ExportDocument is the data export file layout. Field order is fixed so the
// encoded output is reproducible.
type ExportDocument struct {
	Moods          []MoodEntry    `json:"moods"`
	JournalEntries []JournalEntry `json:"journalEntries"`
	Affirmations   []Affirmation  `json:"affirmations"`
	ExportDate     time.Time      `json:"exportDate"`
}
