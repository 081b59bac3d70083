// Package eventstore loads feed content from a YAML file.
package eventstore

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/icsfeed/icsfeed"
)

// feedFile is the on-disk shape: calendar property overrides plus the event
// records.
type feedFile struct {
	Properties icsfeed.Properties `yaml:"properties"`
	Events     []map[string]any   `yaml:"events"`
}

// Store serves feed content from a YAML file. Reload swaps the content in
// one step, so readers always see a complete file.
type Store struct {
	path string

	mu       sync.RWMutex
	props    icsfeed.Properties
	events   []icsfeed.Event
	loadedAt time.Time
}

// Open reads the file at path and returns a Store over it.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the backing file. On error the previously loaded content
// stays in place.
func (s *Store) Reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read events: %w", err)
	}
	var f feedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse events yaml: %w", err)
	}

	events := make([]icsfeed.Event, 0, len(f.Events))
	for _, e := range f.Events {
		events = append(events, icsfeed.Event(e))
	}

	s.mu.Lock()
	s.props = f.Properties
	s.events = events
	s.loadedAt = time.Now()
	s.mu.Unlock()
	return nil
}

// Feed returns the current overrides and events. It satisfies
// feedhttp.Source.
func (s *Store) Feed(ctx context.Context) (icsfeed.Properties, []icsfeed.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.props, s.events, nil
}

// LoadedAt reports when the content was last loaded.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
