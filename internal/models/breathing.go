package models

import "time"

// BreathingSession records a completed guided breathing session
type BreathingSession struct {
	Start   time.Time `json:"start"`
	Seconds int       `json:"seconds"`
}
