package tui

import "github.com/akyairhashvil/timetracker/internal/models"

// rowArena maps row positions to entry keys. It is rebuilt only when the
// number of entries changes or a position no longer holds the same entry.
type rowArena struct {
	keys []string
}

func (a *rowArena) sync(entries []models.TimerEntry) bool {
	if len(a.keys) == len(entries) {
		stale := false
		for i := range entries {
			if a.keys[i] != entries[i].ID {
				stale = true
				break
			}
		}
		if !stale {
			return false
		}
	}
	a.keys = make([]string, len(entries))
	for i, e := range entries {
		a.keys[i] = e.ID
	}
	return true
}

func (a rowArena) key(i int) string {
	if i < 0 || i >= len(a.keys) {
		return ""
	}
	return a.keys[i]
}

func (a rowArena) indexOf(key string) int {
	for i, k := range a.keys {
		if k == key {
			return i
		}
	}
	return -1
}
