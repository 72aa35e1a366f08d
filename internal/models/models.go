package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// TimerState enumerates the two states a timer can be in.
type TimerState string

const (
	StateInactive TimerState = "inactive"
	StateActive   TimerState = "active"
)

// TimerEntry is a single named stopwatch.
type TimerEntry struct {
	ID          string
	Name        string
	Active      bool
	Total       time.Duration // accumulated, excluding the running interval
	ActiveSince time.Time     // only meaningful while Active
}

// State reports the entry's state.
func (e TimerEntry) State() TimerState {
	if e.Active {
		return StateActive
	}
	return StateInactive
}

// timerEntryJSON is the on-disk shape. Total uses Go duration syntax so it
// round-trips without loss.
type timerEntryJSON struct {
	ID          string     `json:"id,omitempty"`
	Name        string     `json:"name"`
	Active      bool       `json:"active"`
	Total       string     `json:"total"`
	ActiveSince *time.Time `json:"active_since,omitempty"`
}

func (e TimerEntry) MarshalJSON() ([]byte, error) {
	out := timerEntryJSON{
		ID:     e.ID,
		Name:   e.Name,
		Active: e.Active,
		Total:  e.Total.String(),
	}
	if e.Active && !e.ActiveSince.IsZero() {
		since := e.ActiveSince.Round(0)
		out.ActiveSince = &since
	}
	return json.Marshal(out)
}

// timerEntryInput mirrors timerEntryJSON with pointers so absent fields can
// be told apart from zero values.
type timerEntryInput struct {
	ID          string     `json:"id"`
	Name        *string    `json:"name"`
	Active      *bool      `json:"active"`
	Total       *string    `json:"total"`
	ActiveSince *time.Time `json:"active_since"`
}

var ErrMalformedEntry = errors.New("malformed timer entry")

func (e *TimerEntry) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return fmt.Errorf("%w: null entry", ErrMalformedEntry)
	}
	var in timerEntryInput
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch {
	case in.Name == nil:
		return fmt.Errorf("%w: missing name", ErrMalformedEntry)
	case in.Active == nil:
		return fmt.Errorf("%w: timer %q: missing active", ErrMalformedEntry, *in.Name)
	case in.Total == nil:
		return fmt.Errorf("%w: timer %q: missing total", ErrMalformedEntry, *in.Name)
	}
	total, err := time.ParseDuration(*in.Total)
	if err != nil {
		return fmt.Errorf("%w: timer %q: invalid total %q: %v", ErrMalformedEntry, *in.Name, *in.Total, err)
	}
	if total < 0 {
		return fmt.Errorf("%w: timer %q: negative total %s", ErrMalformedEntry, *in.Name, *in.Total)
	}
	if *in.Active && (in.ActiveSince == nil || in.ActiveSince.IsZero()) {
		return fmt.Errorf("%w: timer %q: active without active_since", ErrMalformedEntry, *in.Name)
	}
	*e = TimerEntry{
		ID:     in.ID,
		Name:   *in.Name,
		Active: *in.Active,
		Total:  total,
	}
	if *in.Active {
		e.ActiveSince = *in.ActiveSince
	}
	return nil
}
