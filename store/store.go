// Package store persists the cursor settings and notifies in-process listeners
// when they change.
package store

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/sparkle-cursor/config"
	"github.com/automoto/sparkle-cursor/settings"
	"github.com/quasilyte/gdata"
)

const itemKey = "settings"

// Backend is the item storage the store writes to. *gdata.Manager satisfies it.
type Backend interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store reads and writes the settings item.
type Store struct {
	backend Backend

	mu        sync.Mutex
	nextID    int
	listeners map[int]func(settings.Settings)
}

// Open creates a store backed by the per-user gdata directory.
func Open() (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: config.AppName,
	})
	if err != nil {
		return nil, fmt.Errorf("open settings storage: %w", err)
	}
	return New(m), nil
}

// New creates a store over an existing backend.
func New(b Backend) *Store {
	return &Store{backend: b, listeners: map[int]func(settings.Settings){}}
}

// Get returns the stored fields. ok is false when nothing usable is stored.
func (s *Store) Get() (p settings.Patch, ok bool) {
	data, err := s.backend.LoadItem(itemKey)
	if err != nil {
		log.Printf("[store] Warning: Could not load settings: %v", err)
		return settings.Patch{}, false
	}
	if data == nil {
		return settings.Patch{}, false
	}
	p, err = settings.DecodePatch(data)
	if err != nil {
		log.Printf("[store] Warning: Could not parse saved settings: %v", err)
		return settings.Patch{}, false
	}
	return p, true
}

// Load returns the stored settings merged over the defaults.
func (s *Store) Load() settings.Settings {
	p, _ := s.Get()
	return settings.Merge(settings.Defaults(), p)
}

// Set saves v and notifies every listener.
func (s *Store) Set(v settings.Settings) error {
	data, err := settings.Encode(v)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.backend.SaveItem(itemKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	s.mu.Lock()
	fns := make([]func(settings.Settings), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
	return nil
}

// OnChange registers fn to run after every successful Set. The returned func
// removes it.
func (s *Store) OnChange(fn func(settings.Settings)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}
