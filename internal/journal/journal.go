package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/logger"
	"github.com/julianstephens/mindmate/internal/models"
	"github.com/julianstephens/mindmate/internal/sentiment"
	"github.com/julianstephens/mindmate/internal/storage"
)

// Manager appends entries to the journalEntries collection
type Manager struct {
	store      storage.Provider
	classifier *sentiment.Classifier
	now        func() time.Time
}

func NewManager(store storage.Provider, classifier *sentiment.Classifier) *Manager {
	if classifier == nil {
		classifier = sentiment.Default()
	}
	return &Manager{store: store, classifier: classifier, now: time.Now}
}

// SetClock replaces the time source, for tests
func (m *Manager) SetClock(now func() time.Time) {
	m.now = now
}

// Analyze classifies a draft without saving it
func (m *Manager) Analyze(text string) (models.Analysis, error) {
	return m.classifier.Analyze(text)
}

// Save appends an entry. analysis may be nil when the draft was never analyzed.
func (m *Manager) Save(text string, analysis *models.Analysis) (models.JournalEntry, error) {
	if strings.TrimSpace(text) == "" {
		return models.JournalEntry{}, models.ErrEmptyText
	}

	res, err := storage.ReadCollection[models.JournalEntry](m.store, constants.KeyJournalEntries)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("failed to read journal: %w", err)
	}

	entry := models.JournalEntry{
		Date:     m.now().UTC(),
		Text:     text,
		Analysis: analysis,
	}
	entries := append(res.Value, entry)

	if err := storage.WriteValue(m.store, constants.KeyJournalEntries, entries); err != nil {
		return models.JournalEntry{}, fmt.Errorf("failed to save journal entry: %w", err)
	}
	logger.Debug("Saved journal entry", "count", len(entries), "analyzed", analysis != nil)
	return entry, nil
}

// Entries returns every saved entry in insertion order
func (m *Manager) Entries() ([]models.JournalEntry, error) {
	res, err := storage.ReadCollection[models.JournalEntry](m.store, constants.KeyJournalEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	return res.Value, nil
}

// PreviewLength is how many characters of an entry a preview keeps
const PreviewLength = 60

// Preview flattens whitespace in text and, unless full is set, cuts it to
// PreviewLength characters.
func Preview(text string, full bool) string {
	s := strings.Join(strings.Fields(text), " ")
	r := []rune(s)
	if full || len(r) <= PreviewLength {
		return s
	}
	return string(r[:PreviewLength-1]) + "…"
}
