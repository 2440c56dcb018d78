package profile

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/models"
	"github.com/julianstephens/mindmate/internal/storage"
)

var today = time.Date(2026, 10, 17, 15, 0, 0, 0, time.Local)

func daysBack(levels ...int) []models.MoodEntry {
	// levels[0] is today, levels[1] yesterday and so on; 0 skips the day
	var out []models.MoodEntry
	for i, l := range levels {
		if l == 0 {
			continue
		}
		out = append(out, models.MoodEntry{Date: today.AddDate(0, 0, -i).Format(constants.DateFormat), Mood: l})
	}
	return out
}

func achievement(stats models.ProfileStats, name string) bool {
	for _, a := range stats.Achievements {
		if a.Name == name {
			return a.Earned
		}
	}
	return false
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name   string
		moods  []models.MoodEntry
		want   int
		longst int
	}{
		{"empty", nil, 0, 0},
		{"today only", daysBack(3), 1, 1},
		{"ending yesterday", daysBack(0, 3, 4, 4), 3, 3},
		{"broken", daysBack(3, 3, 0, 4, 4, 4, 4), 2, 4},
		{"two days ago is not current", daysBack(0, 0, 5), 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Stats(tt.moods, nil, nil, today)
			if s.Streak != tt.want {
				t.Errorf("Streak = %d, want %d", s.Streak, tt.want)
			}
			if s.LongestStreak != tt.longst {
				t.Errorf("LongestStreak = %d, want %d", s.LongestStreak, tt.longst)
			}
		})
	}
}

func TestMoodAverage(t *testing.T) {
	s := Stats(daysBack(5, 4, 4), nil, nil, today)
	if s.MoodAverage != 4.3 {
		t.Errorf("MoodAverage = %v, want 4.3", s.MoodAverage)
	}
	if s.MoodDays != 3 {
		t.Errorf("MoodDays = %d, want 3", s.MoodDays)
	}
}

func TestAchievements(t *testing.T) {
	journal := []models.JournalEntry{{Date: today, Text: "hello"}}
	sessions := make([]models.BreathingSession, 10)
	for i := range sessions {
		sessions[i] = models.BreathingSession{Start: today, Seconds: 60}
	}

	s := Stats(daysBack(4, 5, 4, 4, 5, 2, 3), journal, sessions, today)

	want := map[string]bool{
		"First Entry":       true,
		"Week Warrior":      true,
		"Mindful Master":    true,
		"Positive Vibes":    true,
		"Monthly Milestone": false,
		"Zen Master":        false,
	}
	for name, earned := range want {
		if got := achievement(s, name); got != earned {
			t.Errorf("%s earned = %v, want %v", name, got, earned)
		}
	}
	if s.EarnedCount != 4 {
		t.Errorf("EarnedCount = %d, want 4", s.EarnedCount)
	}
}

func TestPositiveVibesNeedsConsecutiveDays(t *testing.T) {
	s := Stats(daysBack(5, 5, 0, 5, 5, 5), nil, nil, today)
	if achievement(s, "Positive Vibes") {
		t.Error("gap in the run should not earn Positive Vibes")
	}
}

func TestLoadAndSave(t *testing.T) {
	store := storage.NewProvider(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	p, err := Load(store, today)
	if err != nil {
		t.Fatal(err)
	}
	if p.JoinDate != "2026-10-17" || p.Name != "" {
		t.Errorf("default profile = %+v", p)
	}

	p.Name = "  Sam  "
	p.JoinDate = "2026-01-02"
	if err := Save(store, p); err != nil {
		t.Fatal(err)
	}
	got, _ := Load(store, today)
	if got.Name != "Sam" || got.JoinDate != "2026-01-02" {
		t.Errorf("Load() = %+v", got)
	}

	p.JoinDate = "last tuesday"
	if err := Save(store, p); err == nil {
		t.Error("Save() accepted an invalid join date")
	}
}

func TestComputeStats(t *testing.T) {
	store := storage.NewProvider(filepath.Join(t.TempDir(), "test.json"))
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	storage.WriteValue(store, constants.KeyMoods, daysBack(3, 4))
	storage.WriteValue(store, constants.KeyJournalEntries, []models.JournalEntry{{Date: today.UTC(), Text: "x"}})

	s, err := ComputeStats(store, today)
	if err != nil {
		t.Fatal(err)
	}
	if s.Streak != 2 || s.JournalEntries != 1 || s.BreathingCount != 0 {
		t.Errorf("ComputeStats() = %+v", s)
	}
}
