package mood

import (
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/logger"
	"github.com/julianstephens/mindmate/internal/models"
	"github.com/julianstephens/mindmate/internal/storage"
)

var scale = []models.MoodLevel{
	{Value: 1, Emoji: "😢", Label: "Very Sad", Color: "red"},
	{Value: 2, Emoji: "😞", Label: "Sad", Color: "orange"},
	{Value: 3, Emoji: "😐", Label: "Neutral", Color: "yellow"},
	{Value: 4, Emoji: "😊", Label: "Happy", Color: "green"},
	{Value: 5, Emoji: "😁", Label: "Very Happy", Color: "blue"},
}

// illustrative Mon..Sun series shown before any history exists
var illustrative = []int{3, 4, 3, 5, 4, 2, 4}

// Scale returns the five mood levels, lowest first
func Scale() []models.MoodLevel {
	out := make([]models.MoodLevel, len(scale))
	copy(out, scale)
	return out
}

// Level looks up a mood level by value
func Level(v int) (models.MoodLevel, bool) {
	if v < constants.MinMoodLevel || v > constants.MaxMoodLevel {
		return models.MoodLevel{}, false
	}
	return scale[v-1], true
}

// Manager owns the moods collection and the pending selection of the mood form
type Manager struct {
	store   storage.Provider
	now     func() time.Time
	pending int
	note    string
}

func NewManager(store storage.Provider) *Manager {
	return &Manager{store: store, now: time.Now}
}

// SetClock replaces the time source, for tests
func (m *Manager) SetClock(now func() time.Time) {
	m.now = now
}

// SelectMood sets the pending selection without touching storage
func (m *Manager) SelectMood(level int) error {
	if _, ok := Level(level); !ok {
		return models.ErrInvalidMoodLevel
	}
	m.pending = level
	return nil
}

// Pending returns the selected level, if any
func (m *Manager) Pending() (int, bool) {
	return m.pending, m.pending != 0
}

func (m *Manager) SetNote(note string) {
	m.note = note
}

func (m *Manager) Note() string {
	return m.note
}

// SaveMood saves the pending selection and note for today, then clears them
func (m *Manager) SaveMood() (models.MoodEntry, error) {
	entry, err := m.Save(m.pending, m.note)
	if err != nil {
		return entry, err
	}
	m.pending = 0
	m.note = ""
	return entry, nil
}

// Save upserts today's entry. Level 0 means nothing was selected.
func (m *Manager) Save(level int, note string) (models.MoodEntry, error) {
	return m.SaveFor(m.now(), level, note)
}

// SaveFor upserts the entry for the calendar day containing day
func (m *Manager) SaveFor(day time.Time, level int, note string) (models.MoodEntry, error) {
	if level == 0 {
		return models.MoodEntry{}, models.ErrNoMoodSelected
	}
	if _, ok := Level(level); !ok {
		return models.MoodEntry{}, models.ErrInvalidMoodLevel
	}

	res, err := storage.ReadCollection[models.MoodEntry](m.store, constants.KeyMoods)
	if err != nil {
		return models.MoodEntry{}, fmt.Errorf("failed to read moods: %w", err)
	}

	entry := models.MoodEntry{
		Date: day.Format(constants.DateFormat),
		Mood: level,
		Note: note,
	}

	entries := res.Value
	replaced := false
	for i := range entries {
		if entries[i].Date == entry.Date {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}

	if err := storage.WriteValue(m.store, constants.KeyMoods, entries); err != nil {
		return models.MoodEntry{}, fmt.Errorf("failed to save mood: %w", err)
	}
	logger.Debug("Saved mood", "date", entry.Date, "mood", level, "replaced", replaced)
	return entry, nil
}

// Entries returns the stored moods ordered by date
func (m *Manager) Entries() ([]models.MoodEntry, error) {
	res, err := storage.ReadCollection[models.MoodEntry](m.store, constants.KeyMoods)
	if err != nil {
		return nil, fmt.Errorf("failed to read moods: %w", err)
	}
	entries := res.Value
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	return entries, nil
}

// Trend returns one point per calendar day for the last days days, ending
// today. Days without an entry have a nil Level.
func (m *Manager) Trend(days int) ([]models.TrendPoint, error) {
	entries, err := m.Entries()
	if err != nil {
		return nil, err
	}
	byDate := make(map[string]int, len(entries))
	for _, e := range entries {
		byDate[e.Date] = e.Mood
	}

	today := m.now()
	points := make([]models.TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		p := models.TrendPoint{
			Date:  day.Format(constants.DateFormat),
			Label: day.Weekday().String()[:3],
		}
		if level, ok := byDate[p.Date]; ok {
			level := level
			p.Level = &level
		}
		points = append(points, p)
	}
	return points, nil
}

// IllustrativeTrend is the fixed Mon..Sun sample series
func IllustrativeTrend() []models.TrendPoint {
	labels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	points := make([]models.TrendPoint, len(illustrative))
	for i, v := range illustrative {
		v := v
		points[i] = models.TrendPoint{Label: labels[i], Level: &v}
	}
	return points
}
