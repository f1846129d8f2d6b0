// apps/go-cli/internal/store/memory.go
//
// Answer cache: a key-value store from date key ("YYYY-MM-DD") to the day's word.
// The game engine never touches it; the daily provider reads and fills it.
//
// Backends:
//   - memory: map guarded by RWMutex, lost on exit (tests, --cache-backend memory).
//   - file:   one file per date in the cache dir (file.go).
//   - sqlite: one row per date in cache.db (sqlite.go).

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrNotFound is returned by Get when no word is cached for the date.
var ErrNotFound = errors.New("store: not found")

// Store defines the persistence interface for daily words.
type Store interface {
	// Get returns the word cached for date, or ErrNotFound.
	Get(ctx context.Context, date string) (string, error)

	// Put caches word for date, replacing any previous entry.
	Put(ctx context.Context, date, word string) error

	// Dates lists cached dates in ascending order.
	Dates(ctx context.Context) ([]string, error)

	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open constructs the named backend rooted at dir.
func Open(backend, dir string) (Store, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile, "":
		return NewFileStore(dir)
	case BackendSQLite:
		return NewSQLiteStore(dir)
	default:
		return nil, fmt.Errorf("store: unknown backend %q", backend)
	}
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex      // guards words map
	words map[string]string // keyed by date
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{words: make(map[string]string)}
}

func (m *memory) Get(ctx context.Context, date string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if w, ok := m.words[date]; ok {
		return w, nil
	}
	return "", ErrNotFound
}

func (m *memory) Put(ctx context.Context, date, word string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.words[date] = word
	return nil
}

func (m *memory) Dates(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.words))
	for d := range m.words {
		out = append(out, d)
	}
	sortDates(out)
	return out, nil
}

func (m *memory) Close() error { return nil }
