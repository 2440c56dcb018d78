package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// JSONStore keeps all collections in a single JSON object on disk
type JSONStore struct {
	path string
	data map[string]json.RawMessage
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}

	s.data = make(map[string]json.RawMessage)
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'mindmate init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.data = make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &s.data); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if s.data == nil {
		s.data = make(map[string]json.RawMessage)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Get(key string) ([]byte, bool, error) {
	if s.data == nil {
		return nil, false, fmt.Errorf("storage not loaded")
	}
	raw, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(unwrapString(raw)), true, nil
}

func (s *JSONStore) Set(key string, value []byte) error {
	if s.data == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.data[key] = wrapString(value)
	return s.save()
}

func (s *JSONStore) Delete(key string) error {
	if s.data == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.save()
}

func (s *JSONStore) Keys() ([]string, error) {
	if s.data == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

// Values are stored as JSON strings so that malformed values written by
// other tools survive a load/save cycle untouched.
func wrapString(value []byte) json.RawMessage {
	b, _ := json.Marshal(string(value))
	return b
}

func unwrapString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		// hand-edited file holding a bare JSON value
		return string(raw)
	}
	return s
}
