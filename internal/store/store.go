// Package store keeps the tracked benefits in memory and persists them to a
// single JSON file, rewriting the whole file after every change.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/theirongolddev/ccb/internal/model"
	"github.com/theirongolddev/ccb/internal/schedule"
)

// Store owns the benefits for one session. It is not safe for concurrent use.
type Store struct {
	path     string
	benefits *model.Benefits
	log      *slog.Logger
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for routine events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithClock overrides the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns an empty store backed by the file at path. Call Load to read it.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:     path,
		benefits: model.NewBenefits(),
		log:      slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Today returns the current local calendar date.
func (s *Store) Today() model.Date {
	return model.DateOf(s.now())
}

// Load replaces the in-memory benefits with the backing file's contents.
//
// On any error the store is left empty. ErrNoDataFile is informational.
// When the file exists but does not decode, a copy is kept at <path>.bak
// so a later save cannot destroy it.
func (s *Store) Load() error {
	bs, err := ReadFile(s.path)
	s.benefits = bs
	if err == nil {
		s.log.Debug("loaded benefits", "path", s.path, "count", bs.Len())
		return nil
	}

	var lerr *LoadError
	if errors.As(err, &lerr) && lerr.Malformed {
		bak := s.path + ".bak"
		if berr := backupFile(s.path, bak); berr != nil {
			s.log.Warn("could not back up malformed benefits file", "path", s.path, "err", berr)
		} else {
			s.log.Info("backed up malformed benefits file", "path", s.path, "backup", bak)
		}
	}
	return err
}

// Save writes every benefit to the backing file. On failure the in-memory
// state is kept and a *SaveError is returned.
func (s *Store) Save() error {
	if err := WriteFile(s.path, s.benefits); err != nil {
		return err
	}
	s.log.Debug("saved benefits", "path", s.path, "count", s.benefits.Len())
	return nil
}

// CheckResets resets every lapsed benefit as of today and then saves,
// whether or not anything changed. It returns the names that were reset.
// Scheduling errors and save errors are joined.
func (s *Store) CheckResets() ([]string, error) {
	today := s.Today()
	reset, rerr := schedule.ApplyResets(s.benefits, today)
	for _, name := range reset {
		s.log.Info("benefit reset", "name", name, "today", today)
	}
	if rerr != nil {
		s.log.Warn("some benefits could not be reset", "err", rerr)
	}
	return reset, errors.Join(rerr, s.Save())
}

// Add stores a new benefit with no usage and its first reset date computed
// from today. An existing benefit with the same name is replaced in place.
// Invalid input is rejected with a *ValidationError and nothing changes.
func (s *Store) Add(nb NewBenefit) error {
	if err := nb.Validate(); err != nil {
		return err
	}

	next, err := schedule.NextReset(nb.Interval, s.Today())
	if err != nil {
		return &ValidationError{Field: "reset interval", Reason: err.Error(), Err: err}
	}

	replaced := s.benefits.Has(nb.Name)
	s.benefits.Set(model.Benefit{
		Name:          nb.Name,
		Description:   nb.Description,
		Card:          nb.Card,
		Used:          0,
		ResetInterval: nb.Interval,
		NextReset:     next,
		Value:         nb.Value,
	})
	s.log.Info("benefit added", "name", nb.Name, "card", nb.Card, "next_reset", next, "replaced", replaced)

	return s.Save()
}

// UpdateUsage sets how much of a benefit has been used, as a percentage.
func (s *Store) UpdateUsage(name string, percent int) error {
	if percent < 0 || percent > 100 {
		return &ValidationError{Field: "usage", Reason: fmt.Sprintf("%d is outside 0-100", percent)}
	}
	b, ok := s.benefits.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	b.Used = float64(percent) / 100.0
	s.benefits.Set(b)
	s.log.Info("benefit usage updated", "name", name, "used", b.Used)

	return s.Save()
}

// Delete removes a benefit. Unknown names return ErrNotFound and do not save.
func (s *Store) Delete(name string) error {
	if !s.benefits.Delete(name) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	s.log.Info("benefit deleted", "name", name)

	return s.Save()
}

// Get returns the benefit with the given name.
func (s *Store) Get(name string) (model.Benefit, bool) {
	return s.benefits.Get(name)
}

// Len returns the number of benefits.
func (s *Store) Len() int {
	return s.benefits.Len()
}

// List returns benefits in insertion order. A non-empty card limits the
// result to that card.
func (s *Store) List(card string) []model.Benefit {
	all := s.benefits.All()
	if card == "" {
		return all
	}
	out := all[:0]
	for _, b := range all {
		if b.Card == card {
			out = append(out, b)
		}
	}
	return out
}

// Cards returns the distinct non-empty card names, sorted.
func (s *Store) Cards() []string {
	seen := make(map[string]bool)
	var cards []string
	for _, b := range s.benefits.All() {
		if b.Card == "" || seen[b.Card] {
			continue
		}
		seen[b.Card] = true
		cards = append(cards, b.Card)
	}
	sort.Strings(cards)
	return cards
}

// Benefits returns the underlying collection.
func (s *Store) Benefits() *model.Benefits {
	return s.benefits
}
