package models

import "time"

// VentPost is an anonymous message that lives only in memory until it expires
type VentPost struct {
	ID        string
	Message   string
	Timestamp time.Time
}
