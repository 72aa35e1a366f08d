package tui

import (
	"time"

	"github.com/akyairhashvil/timetracker/internal/timer"
)

type IntentKind int

const (
	IntentToggle IntentKind = iota
	IntentRemove
	IntentAdd
)

// Intent is a store mutation requested by a frame. Toggle and remove carry
// the entry key so they stay valid after earlier intents shift positions.
type Intent struct {
	Kind IntentKind
	Key  string
	Name string
}

type applyResult struct {
	added   string // key of the last added entry
	removed int
}

// applyIntents mutates the store in order. An intent naming an entry that
// an earlier intent in the same batch removed is dropped.
func applyIntents(store *timer.Store, intents []Intent, now time.Time) (applyResult, error) {
	var res applyResult
	for _, in := range intents {
		switch in.Kind {
		case IntentAdd:
			res.added = store.Add(in.Name).ID
		case IntentToggle:
			i := store.IndexOf(in.Key)
			if i < 0 {
				continue
			}
			if err := store.Toggle(i, now); err != nil {
				return res, err
			}
		case IntentRemove:
			i := store.IndexOf(in.Key)
			if i < 0 {
				continue
			}
			if err := store.Remove(i); err != nil {
				return res, err
			}
			res.removed++
		}
	}
	return res, nil
}
