package main

import (
	"strings"
	"sync"

	"tight-lines/internal/game"
)

// ProgressStore keeps each angler's saved key/value progress by name
type ProgressStore struct {
	saved map[string]map[string]int
	mu    sync.RWMutex
}

// NewProgressStore creates an empty store
func NewProgressStore() *ProgressStore {
	return &ProgressStore{saved: make(map[string]map[string]int)}
}

func progressKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Load returns the saved progress for name, or a fresh one
func (s *ProgressStore) Load(name string) (*game.Progress, error) {
	s.mu.RLock()
	values, ok := s.saved[progressKey(name)]
	s.mu.RUnlock()
	if !ok {
		return game.NewProgress(), nil
	}
	return game.LoadProgress(values)
}

// Save records progress for name
func (s *ProgressStore) Save(name string, p *game.Progress) {
	values := p.Save()
	s.mu.Lock()
	s.saved[progressKey(name)] = values
	s.mu.Unlock()
}

// Get returns a copy of the raw saved pairs for name
func (s *ProgressStore) Get(name string) (map[string]int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	values, ok := s.saved[progressKey(name)]
	if !ok {
		return nil, false
	}
	out := make(map[string]int, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out, true
}
