package tui

import "github.com/akyairhashvil/timetracker/internal/timer"

// Persister saves the store when the user exits.
//
//go:generate mockgen -source=persister.go -destination=mock_persister_test.go -package=tui
type Persister interface {
	Save(store *timer.Store) error
}
