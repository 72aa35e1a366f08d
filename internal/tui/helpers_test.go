package tui

import (
	"testing"
	"time"

	"github.com/akyairhashvil/timetracker/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"
)

var t0 = time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// setupTestModel builds a model over store with a fixed clock and a strict
// mock persister.
func setupTestModel(t *testing.T, store *timer.Store, opts ...Option) (Model, *fakeClock, *MockPersister) {
	t.Helper()
	ctrl := gomock.NewController(t)
	persister := NewMockPersister(ctrl)
	clock := &fakeClock{now: t0}
	opts = append([]Option{WithClock(clock.Now), WithSize(100, 30)}, opts...)
	return NewModel(store, persister, opts...), clock, persister
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
)

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = send(t, m, runes(string(r)))
	}
	return m
}
