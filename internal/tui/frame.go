package tui

import (
	"time"

	"github.com/akyairhashvil/timetracker/internal/models"
	"github.com/akyairhashvil/timetracker/internal/timer"
)

type Tab int

const (
	TabTimers Tab = iota
	TabStatistics
)

var tabLabels = []string{"Timers", "Statistics"}

func (t Tab) String() string {
	if int(t) < len(tabLabels) {
		return tabLabels[t]
	}
	return ""
}

type focusArea int

const (
	focusList focusArea = iota
	focusInput
)

// UIState is the transient state that is not part of the timer store.
type UIState struct {
	Input  string
	Cursor int
	Tab    Tab
	Focus  focusArea
}

type GestureKind int

const (
	GestureToggle GestureKind = iota
	GestureRemove
	GestureAdd
)

// Gesture is a user action addressed to a row of the frame being built.
// Row is ignored for GestureAdd.
type Gesture struct {
	Kind GestureKind
	Row  int
}

type Row struct {
	Key      string
	Name     string
	Label    string
	Active   bool
	Selected bool
	Share    float64
}

type Frame struct {
	Title   string
	Summary string
	Tab     Tab
	Rows    []Row
	Input   string
}

// BuildFrame declares one frame from the entries and UI state and turns the
// gestures received during the tick into intents. It does not mutate
// anything; callers apply the intents once the frame is complete.
func BuildFrame(entries []models.TimerEntry, keys []string, state UIState, gestures []Gesture, now time.Time) (Frame, []Intent, error) {
	grand := timer.SumElapsed(entries, now)
	active := 0
	rows := make([]Row, len(entries))
	for i, e := range entries {
		elapsed := timer.EntryElapsed(e, now)
		if e.Active {
			active++
		}
		key := e.ID
		if i < len(keys) && keys[i] != "" {
			key = keys[i]
		}
		share := 0.0
		if grand > 0 {
			share = float64(elapsed) / float64(grand)
		}
		rows[i] = Row{
			Key:      key,
			Name:     e.Name,
			Label:    timer.Format(elapsed),
			Active:   e.Active,
			Selected: i == state.Cursor && state.Focus == focusList,
			Share:    share,
		}
	}

	frame := Frame{
		Title:   "Time tracker",
		Summary: summaryLine(len(entries), active, grand),
		Tab:     state.Tab,
		Rows:    rows,
		Input:   state.Input,
	}

	intents := make([]Intent, 0, len(gestures))
	for _, g := range gestures {
		switch g.Kind {
		case GestureAdd:
			intents = append(intents, Intent{Kind: IntentAdd, Name: state.Input})
		case GestureToggle, GestureRemove:
			if g.Row < 0 || g.Row >= len(rows) {
				return frame, nil, &timer.IndexError{Op: "gesture", Index: g.Row, Len: len(rows)}
			}
			kind := IntentToggle
			if g.Kind == GestureRemove {
				kind = IntentRemove
			}
			intents = append(intents, Intent{Kind: kind, Key: rows[g.Row].Key})
		}
	}
	return frame, intents, nil
}

func summaryLine(count, active int, grand time.Duration) string {
	noun := "timers"
	if count == 1 {
		noun = "timer"
	}
	return formatSummary(count, noun, active, timer.Format(grand))
}
