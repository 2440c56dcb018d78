package models

// Profile holds the user's self-entered details
type Profile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
	JoinDate string `json:"joinDate"` // YYYY-MM-DD
}

// Achievement is a milestone shown on the profile screen
type Achievement struct {
	Name        string
	Description string
	Earned      bool
}

// ProfileStats is derived from stored history, never persisted
type ProfileStats struct {
	Streak         int
	LongestStreak  int
	JournalEntries int
	MoodAverage    float64
	MoodDays       int
	BreathingCount int
	Achievements   []Achievement
	EarnedCount    int
}
