package storage

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/mindmate/internal/logger"
)

// Status tags how a stored value was obtained
type Status int

const (
	// StatusOK means the value was present and decoded cleanly
	StatusOK Status = iota
	// StatusMissing means nothing was stored; the default was substituted
	StatusMissing
	// StatusRecovered means the stored value was malformed; the default was
	// substituted and Err holds the decode failure
	StatusRecovered
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMissing:
		return "missing"
	case StatusRecovered:
		return "recovered"
	default:
		return "unknown"
	}
}

// Result is a decoded value together with how it was obtained
type Result[T any] struct {
	Value  T
	Status Status
	Err    error
}

// Recovered reports whether a malformed value was replaced by the default
func (r Result[T]) Recovered() bool {
	return r.Status == StatusRecovered
}

// ReadValue decodes the JSON value stored under key. A missing or malformed
// value yields def; the malformed case is logged. Only store failures are
// returned as errors.
func ReadValue[T any](p Provider, key string, def T) (Result[T], error) {
	raw, ok, err := p.Get(key)
	if err != nil {
		return Result[T]{Value: def}, err
	}
	if !ok {
		return Result[T]{Value: def, Status: StatusMissing}, nil
	}

	// decode over the default so fields absent from a stored object keep it
	v := def
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.Warn("Recovered malformed collection", "key", key, "error", err)
		return Result[T]{Value: def, Status: StatusRecovered, Err: err}, nil
	}
	return Result[T]{Value: v, Status: StatusOK}, nil
}

// ReadCollection decodes the array stored under key, defaulting to empty
func ReadCollection[T any](p Provider, key string) (Result[[]T], error) {
	res, err := ReadValue(p, key, []T{})
	if res.Value == nil {
		// a stored JSON null decodes to a nil slice
		res.Value = []T{}
	}
	return res, err
}

// WriteValue encodes v as JSON and stores it under key
func WriteValue(p Provider, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return p.Set(key, data)
}
