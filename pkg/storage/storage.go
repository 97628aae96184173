package storage

import "errors"

var (
	// ErrQuotaExceeded indicates a write would exceed the backend's capacity.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	// ErrUnavailable indicates the backend is disabled or cannot be reached.
	ErrUnavailable = errors.New("storage unavailable")
)

// Backend is a synchronous, string-keyed durable store.
type Backend interface {
	// Get returns ("", false, nil) for an absent key.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}

// Checker is an optional capability reporting whether a backend is usable.
type Checker interface {
	Available() bool
}
