package storage

import (
	"path/filepath"
	"strings"

	"github.com/julianstephens/mindmate/internal/storage/sqlite"
)

// NewProvider picks a backend from the config path: a .json file selects the
// JSON store, anything else is treated as a SQLite database.
func NewProvider(path string) Provider {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return NewJSONStore(path)
	}
	return NewSQLiteStore(path)
}

// NewSQLiteStore creates a new SQLite store
func NewSQLiteStore(path string) *sqlite.Store {
	return sqlite.NewStore(path)
}
