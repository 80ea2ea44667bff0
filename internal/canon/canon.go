// Package canon provides the read side of the confirmed-canon dataset:
// character birthdates and event dates from the Kelvin-timeline films,
// each with a source attribution and a confidence rating.
//
// A default dataset is compiled in. STARDATE_CANON (or --file) points the
// store at an external YAML file in the same layout instead. The store
// never writes.
package canon

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed data/canon_confirmed.yaml
var defaultCanon []byte

// Birth records when a character was born and how firmly the date is
// established.
type Birth struct {
	EarthDate      string  `yaml:"earth_date"`
	StardateKelvin float64 `yaml:"stardate_kelvin,omitempty"`
	Confidence     string  `yaml:"confidence"`
	Source         string  `yaml:"source"`
	SourceType     string  `yaml:"source_type,omitempty"`
}

// Character is one person in the canon dataset.
type Character struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Species   string   `yaml:"species,omitempty"`
	Nicknames []string `yaml:"nicknames,omitempty"`
	Birth     Birth    `yaml:"birth"`
}

// Event is one dated occurrence in the canon dataset.
type Event struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	EarthDate   string `yaml:"earth_date"`
	Confidence  string `yaml:"confidence"`
	Source      string `yaml:"source"`
}

// Date parses the character's birth date.
func (c Character) Date() (time.Time, error) { return parseISO(c.Birth.EarthDate) }

// Date parses the event's Earth date.
func (e Event) Date() (time.Time, error) { return parseISO(e.EarthDate) }

func parseISO(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("canon date %q: %w", s, err)
	}
	return t, nil
}

// document is the YAML file layout: entries keyed by their own IDs.
type document struct {
	Characters map[string]Character `yaml:"characters"`
	Events     map[string]Event     `yaml:"events"`
}

// Store holds a loaded canon dataset. Reads are safe while a watcher
// triggers Reload from another goroutine.
type Store struct {
	path   string
	logger *slog.Logger

	mu  sync.RWMutex
	doc document
}

// New loads the canon dataset. An empty path loads the compiled-in
// default; otherwise path must name a YAML file in the canon_confirmed
// layout.
func New(path string, logger *slog.Logger) (*Store, error) {
	s := &Store{path: path, logger: logger}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Source names where the data came from, for display.
func (s *Store) Source() string {
	if s.path == "" {
		return "built-in"
	}
	return s.path
}

// Reload re-reads the backing file and swaps the dataset in. Stores with
// no backing file reparse the compiled-in default.
func (s *Store) Reload() error {
	raw := defaultCanon
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return fmt.Errorf("read canon file: %w", err)
		}
		raw = b
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse canon file: %w", err)
	}

	// Hand-edited files may omit the id field; the map key is the ID.
	for id, c := range doc.Characters {
		if c.ID == "" {
			c.ID = id
			doc.Characters[id] = c
		}
	}
	for id, e := range doc.Events {
		if e.ID == "" {
			e.ID = id
			doc.Events[id] = e
		}
	}

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()

	s.logger.Info("canon loaded",
		"source", s.Source(),
		"characters", len(doc.Characters),
		"events", len(doc.Events),
	)
	return nil
}

// Characters returns every character sorted by birth date, then ID.
func (s *Store) Characters() []Character {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Character, 0, len(s.doc.Characters))
	for _, c := range s.doc.Characters {
		out = append(out, c)
	}
	// ISO dates sort correctly as plain strings.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Birth.EarthDate != out[j].Birth.EarthDate {
			return out[i].Birth.EarthDate < out[j].Birth.EarthDate
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Events returns every event sorted by Earth date, then ID.
func (s *Store) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Event, 0, len(s.doc.Events))
	for _, e := range s.doc.Events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EarthDate != out[j].EarthDate {
			return out[i].EarthDate < out[j].EarthDate
		}
		return out[i].ID < out[j].ID
	})
	return out
}
