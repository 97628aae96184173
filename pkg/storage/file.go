package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// FileBackend keeps all entries in a single JSON document on disk.
type FileBackend struct {
	mu     sync.Mutex
	path   string
	cache  map[string]string
	loaded bool
}

// NewFileBackend creates the parent directory if missing. The file itself is
// created on first write.
func NewFileBackend(path string) (*FileBackend, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage file path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &FileBackend{path: path}, nil
}

// Get returns the value stored under key.
func (f *FileBackend) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.loadLocked(); err != nil {
		return "", false, err
	}
	v, ok := f.cache[key]
	return v, ok, nil
}

// Set stores value under key and rewrites the file.
func (f *FileBackend) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.loadLocked(); err != nil {
		return err
	}
	prev, existed := f.cache[key]
	f.cache[key] = value
	if err := f.flushLocked(); err != nil {
		if existed {
			f.cache[key] = prev
		} else {
			delete(f.cache, key)
		}
		return err
	}
	return nil
}

// Remove deletes key and rewrites the file.
func (f *FileBackend) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.loadLocked(); err != nil {
		return err
	}
	prev, existed := f.cache[key]
	if !existed {
		return nil
	}
	delete(f.cache, key)
	if err := f.flushLocked(); err != nil {
		f.cache[key] = prev
		return err
	}
	return nil
}

// Available reports whether the storage directory is reachable.
func (f *FileBackend) Available() bool {
	_, err := os.Stat(filepath.Dir(f.path))
	return err == nil
}

func (f *FileBackend) loadLocked() error {
	if f.loaded {
		return nil
	}
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		f.cache = make(map[string]string)
		f.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("read storage file: %w", err)
	}
	entries := make(map[string]string)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("parse storage file: %w", err)
		}
	}
	f.cache = entries
	f.loaded = true
	return nil
}

// flushLocked writes the cache to a uniquely named temp file and renames it
// over the target so readers never observe a partial document.
func (f *FileBackend) flushLocked() error {
	data, err := json.MarshalIndent(f.cache, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage file: %w", err)
	}
	tmp := filepath.Join(filepath.Dir(f.path), "."+filepath.Base(f.path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write storage file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace storage file: %w", err)
	}
	return nil
}
