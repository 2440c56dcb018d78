package storage

// Provider is a key/value store of named collections. Values are opaque JSON
// documents; each collection is encoded and decoded independently.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the raw value for key and whether it was present
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}

// Versioned is implemented by providers that track a schema version
type Versioned interface {
	SchemaVersion() (int, error)
}
