package profile

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/models"
	"github.com/julianstephens/mindmate/internal/storage"
)

const (
	weekWarriorDays   = 7
	mindfulMaster     = 10
	positiveVibesDays = 5
	positiveMoodLevel = 4
	monthlyDays       = 30
	zenMaster         = 50
)

// Load returns the stored profile. A profile that was never saved gets
// today's date as its join date.
func Load(store storage.Provider, now time.Time) (models.Profile, error) {
	res, err := storage.ReadValue(store, constants.KeyProfile, models.Profile{})
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}
	p := res.Value
	if p.JoinDate == "" {
		p.JoinDate = now.Format(constants.DateFormat)
	}
	return p, nil
}

// Save trims and persists the profile
func Save(store storage.Provider, p models.Profile) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Location = strings.TrimSpace(p.Location)
	p.Bio = strings.TrimSpace(p.Bio)
	if p.JoinDate != "" {
		if _, err := time.Parse(constants.DateFormat, p.JoinDate); err != nil {
			return fmt.Errorf("invalid join date %q: expected YYYY-MM-DD", p.JoinDate)
		}
	}
	if err := storage.WriteValue(store, constants.KeyProfile, p); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// ComputeStats derives the profile numbers and achievements from the stored
// mood, journal and breathing history.
func ComputeStats(store storage.Provider, now time.Time) (models.ProfileStats, error) {
	moods, err := storage.ReadCollection[models.MoodEntry](store, constants.KeyMoods)
	if err != nil {
		return models.ProfileStats{}, fmt.Errorf("failed to read moods: %w", err)
	}
	journal, err := storage.ReadCollection[models.JournalEntry](store, constants.KeyJournalEntries)
	if err != nil {
		return models.ProfileStats{}, fmt.Errorf("failed to read journal: %w", err)
	}
	sessions, err := storage.ReadCollection[models.BreathingSession](store, constants.KeyBreathingSessions)
	if err != nil {
		return models.ProfileStats{}, fmt.Errorf("failed to read breathing sessions: %w", err)
	}
	return Stats(moods.Value, journal.Value, sessions.Value, now), nil
}

// Stats is the pure computation behind ComputeStats
func Stats(moods []models.MoodEntry, journal []models.JournalEntry, sessions []models.BreathingSession, now time.Time) models.ProfileStats {
	stats := models.ProfileStats{
		JournalEntries: len(journal),
		BreathingCount: len(sessions),
	}

	days := moodDays(moods)
	stats.MoodDays = len(days)
	stats.Streak = currentStreak(days, now)
	stats.LongestStreak = longestRun(days, func(string) bool { return true })

	if len(moods) > 0 {
		sum := 0
		for _, m := range moods {
			sum += m.Mood
		}
		stats.MoodAverage = math.Round(float64(sum)/float64(len(moods))*10) / 10
	}

	levels := make(map[string]int, len(moods))
	for _, m := range moods {
		levels[m.Date] = m.Mood
	}
	positiveRun := longestRun(days, func(d string) bool { return levels[d] >= positiveMoodLevel })

	active := make(map[string]bool)
	for _, d := range days {
		active[d] = true
	}
	for _, e := range journal {
		active[e.Date.Local().Format(constants.DateFormat)] = true
	}
	for _, s := range sessions {
		active[s.Start.Local().Format(constants.DateFormat)] = true
	}

	stats.Achievements = []models.Achievement{
		{Name: "First Entry", Description: "Completed your first journal entry", Earned: len(journal) >= 1},
		{Name: "Week Warrior", Description: "Tracked mood for 7 consecutive days", Earned: stats.LongestStreak >= weekWarriorDays},
		{Name: "Mindful Master", Description: "Completed 10 breathing exercises", Earned: len(sessions) >= mindfulMaster},
		{Name: "Positive Vibes", Description: "Maintained positive mood for 5 days", Earned: positiveRun >= positiveVibesDays},
		{Name: "Monthly Milestone", Description: "Used the app for 30 days", Earned: len(active) >= monthlyDays},
		{Name: "Zen Master", Description: "Completed 50 breathing exercises", Earned: len(sessions) >= zenMaster},
	}
	for _, a := range stats.Achievements {
		if a.Earned {
			stats.EarnedCount++
		}
	}
	return stats
}

// moodDays returns the distinct valid date keys, ascending
func moodDays(moods []models.MoodEntry) []string {
	seen := make(map[string]bool, len(moods))
	var days []string
	for _, m := range moods {
		if _, err := time.Parse(constants.DateFormat, m.Date); err != nil {
			continue
		}
		if !seen[m.Date] {
			seen[m.Date] = true
			days = append(days, m.Date)
		}
	}
	sort.Strings(days)
	return days
}

// currentStreak counts consecutive logged days ending today, or ending
// yesterday when today has not been logged yet.
func currentStreak(days []string, now time.Time) int {
	logged := make(map[string]bool, len(days))
	for _, d := range days {
		logged[d] = true
	}

	day := now
	if !logged[day.Format(constants.DateFormat)] {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for logged[day.Format(constants.DateFormat)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// longestRun finds the longest run of consecutive calendar days that all
// satisfy keep. days must be sorted ascending.
func longestRun(days []string, keep func(string) bool) int {
	best, run := 0, 0
	var prev time.Time
	for _, d := range days {
		if !keep(d) {
			run = 0
			continue
		}
		t, _ := time.Parse(constants.DateFormat, d)
		if run > 0 && t.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		prev = t
		if run > best {
			best = run
		}
	}
	return best
}
