package models

import "errors"

// Validation errors. Operations returning one of these leave stored state untouched.
var (
	ErrNoMoodSelected   = errors.New("please select a mood first")
	ErrInvalidMoodLevel = errors.New("mood level must be between 1 and 5")
	ErrEmptyText        = errors.New("please write something first")
)
