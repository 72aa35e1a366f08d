// Package timer owns the in-memory timer records for a session.
package timer

import (
	"time"

	"github.com/akyairhashvil/timetracker/internal/models"
	"github.com/google/uuid"
)

// Store is an ordered list of timers. Order is insertion order and only
// matters for display.
type Store struct {
	entries []models.TimerEntry
}

func NewStore() *Store {
	return &Store{}
}

// FromEntries builds a store from decoded entries, assigning ids to entries
// that have none.
func FromEntries(entries []models.TimerEntry) *Store {
	s := &Store{entries: make([]models.TimerEntry, 0, len(entries))}
	for _, e := range entries {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if !e.Active {
			e.ActiveSince = time.Time{}
		}
		s.entries = append(s.entries, e)
	}
	return s
}

func (s *Store) Len() int { return len(s.entries) }

// Entries returns a copy of the current entries.
func (s *Store) Entries() []models.TimerEntry {
	out := make([]models.TimerEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) Entry(i int) (models.TimerEntry, error) {
	if err := s.check("get", i); err != nil {
		return models.TimerEntry{}, err
	}
	return s.entries[i], nil
}

// IndexOf returns the position of the entry with the given id, or -1.
func (s *Store) IndexOf(id string) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}

// Add appends a new inactive timer. Names are not validated.
func (s *Store) Add(name string) models.TimerEntry {
	e := models.TimerEntry{ID: uuid.NewString(), Name: name}
	s.entries = append(s.entries, e)
	return e
}

// Toggle flips the timer at i. Starting records now; stopping folds the
// running interval into Total.
func (s *Store) Toggle(i int, now time.Time) error {
	if err := s.check("toggle", i); err != nil {
		return err
	}
	e := &s.entries[i]
	if e.Active {
		e.Total += interval(e.ActiveSince, now)
		e.ActiveSince = time.Time{}
	} else {
		e.ActiveSince = now
	}
	e.Active = !e.Active
	return nil
}

// Remove deletes the timer at i; later entries shift down by one.
func (s *Store) Remove(i int) error {
	if err := s.check("remove", i); err != nil {
		return err
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return nil
}

// Elapsed is Total for an inactive timer and Total plus the running
// interval for an active one.
func (s *Store) Elapsed(i int, now time.Time) (time.Duration, error) {
	if err := s.check("elapsed", i); err != nil {
		return 0, err
	}
	return EntryElapsed(s.entries[i], now), nil
}

// GrandTotal sums the elapsed time of every timer.
func (s *Store) GrandTotal(now time.Time) time.Duration {
	return SumElapsed(s.entries, now)
}

// EntryElapsed computes the displayed duration of a single entry.
func EntryElapsed(e models.TimerEntry, now time.Time) time.Duration {
	if !e.Active {
		return e.Total
	}
	return e.Total + interval(e.ActiveSince, now)
}

func SumElapsed(entries []models.TimerEntry, now time.Time) time.Duration {
	var sum time.Duration
	for _, e := range entries {
		sum += EntryElapsed(e, now)
	}
	return sum
}

// interval clamps at zero so a clock step backwards never shrinks a total.
func interval(since, now time.Time) time.Duration {
	if since.IsZero() {
		return 0
	}
	d := now.Sub(since)
	if d < 0 {
		return 0
	}
	return d
}

func (s *Store) check(op string, i int) error {
	if i < 0 || i >= len(s.entries) {
		return &IndexError{Op: op, Index: i, Len: len(s.entries)}
	}
	return nil
}
