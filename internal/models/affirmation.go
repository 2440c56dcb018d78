package models

import "time"

// Affirmation is one generated affirmation kept in the history
type Affirmation struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
