package testutil

import (
	"time"

	"github.com/akyairhashvil/timetracker/internal/models"
	"github.com/akyairhashvil/timetracker/internal/timer"
	"github.com/google/uuid"
)

// TimerBuilder provides fluent API for creating test timers.
type TimerBuilder struct {
	entry models.TimerEntry
}

func NewTimer() *TimerBuilder {
	return &TimerBuilder{
		entry: models.TimerEntry{
			ID:   uuid.NewString(),
			Name: "Test Timer",
		},
	}
}

func (b *TimerBuilder) WithName(name string) *TimerBuilder {
	b.entry.Name = name
	return b
}

func (b *TimerBuilder) WithTotal(d time.Duration) *TimerBuilder {
	b.entry.Total = d
	return b
}

func (b *TimerBuilder) ActiveSince(t time.Time) *TimerBuilder {
	b.entry.Active = true
	b.entry.ActiveSince = t
	return b
}

func (b *TimerBuilder) Build() models.TimerEntry {
	return b.entry
}

// StoreBuilder assembles a timer.Store from builders or plain names.
type StoreBuilder struct {
	entries []models.TimerEntry
}

func NewStore() *StoreBuilder {
	return &StoreBuilder{}
}

func (b *StoreBuilder) With(timers ...*TimerBuilder) *StoreBuilder {
	for _, t := range timers {
		b.entries = append(b.entries, t.Build())
	}
	return b
}

func (b *StoreBuilder) WithNames(names ...string) *StoreBuilder {
	for _, n := range names {
		b.entries = append(b.entries, NewTimer().WithName(n).Build())
	}
	return b
}

func (b *StoreBuilder) Build() *timer.Store {
	return timer.FromEntries(b.entries)
}
