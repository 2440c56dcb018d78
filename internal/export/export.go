package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/logger"
	"github.com/julianstephens/mindmate/internal/models"
	"github.com/julianstephens/mindmate/internal/storage"
)

// clearedKeys are the collections removed by ClearAll
var clearedKeys = []string{
	constants.KeyMoods,
	constants.KeyJournalEntries,
	constants.KeyAffirmations,
}

// Build collects the exported collections as they are stored
func Build(store storage.Provider, now time.Time) (models.ExportDocument, error) {
	moods, err := storage.ReadCollection[models.MoodEntry](store, constants.KeyMoods)
	if err != nil {
		return models.ExportDocument{}, fmt.Errorf("failed to read moods: %w", err)
	}
	entries, err := storage.ReadCollection[models.JournalEntry](store, constants.KeyJournalEntries)
	if err != nil {
		return models.ExportDocument{}, fmt.Errorf("failed to read journal: %w", err)
	}
	affirmations, err := storage.ReadCollection[models.Affirmation](store, constants.KeyAffirmations)
	if err != nil {
		return models.ExportDocument{}, fmt.Errorf("failed to read affirmations: %w", err)
	}

	return models.ExportDocument{
		Moods:          moods.Value,
		JournalEntries: entries.Value,
		Affirmations:   affirmations.Value,
		ExportDate:     now.UTC(),
	}, nil
}

// Marshal encodes doc with two-space indentation
func Marshal(doc models.ExportDocument) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return append(data, '\n'), nil
}

// Write builds the export and writes it to path. A directory path gets the
// default export file name.
func Write(store storage.Provider, path string, now time.Time) (string, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, constants.ExportFileName)
	}

	doc, err := Build(store, now)
	if err != nil {
		return "", err
	}
	data, err := Marshal(doc)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}

	logger.Info("Exported data", "path", path,
		"moods", len(doc.Moods), "journal", len(doc.JournalEntries), "affirmations", len(doc.Affirmations))
	return path, nil
}

// Read decodes an export file
func Read(path string) (models.ExportDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.ExportDocument{}, fmt.Errorf("failed to read export: %w", err)
	}
	var doc models.ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.ExportDocument{}, fmt.Errorf("invalid export file %s: %w", path, err)
	}
	return doc, nil
}

// Restore replaces the exported collections with the contents of doc
func Restore(store storage.Provider, doc models.ExportDocument) error {
	collections := []struct {
		key   string
		value any
	}{
		{constants.KeyMoods, nonNil(doc.Moods)},
		{constants.KeyJournalEntries, nonNil(doc.JournalEntries)},
		{constants.KeyAffirmations, nonNil(doc.Affirmations)},
	}
	for _, c := range collections {
		if err := storage.WriteValue(store, c.key, c.value); err != nil {
			return fmt.Errorf("failed to restore %s: %w", c.key, err)
		}
	}
	return nil
}

// Import reads an export file and restores its collections
func Import(store storage.Provider, path string) (models.ExportDocument, error) {
	doc, err := Read(path)
	if err != nil {
		return doc, err
	}
	if err := Restore(store, doc); err != nil {
		return doc, err
	}
	logger.Info("Imported data", "path", path, "exportDate", doc.ExportDate.Format(constants.TimestampFormat))
	return doc, nil
}

// ClearAll removes the mood, journal and affirmation collections
func ClearAll(store storage.Provider) error {
	for _, key := range clearedKeys {
		if err := store.Delete(key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}
	logger.Info("Cleared user data")
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
