// Package storage persists the timer store as a JSON array of entries.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/timetracker/internal/config"
	"github.com/akyairhashvil/timetracker/internal/models"
	"github.com/akyairhashvil/timetracker/internal/timer"
)

// Load reads the store at path. A missing file yields an empty store;
// anything unreadable or undecodable is an error the caller must not ignore.
func Load(path string) (*timer.Store, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return timer.NewStore(), nil
	}
	if err != nil {
		return nil, wrapFileErr("load", path, err)
	}
	entries, err := Decode(data)
	if err != nil {
		return nil, wrapFileErr("load", path, err)
	}
	return timer.FromEntries(entries), nil
}

// Decode parses the persisted JSON array.
func Decode(data []byte) ([]models.TimerEntry, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrCorrupt)
	}
	var entries []models.TimerEntry
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after timer list", ErrCorrupt)
	}
	if entries == nil {
		return nil, fmt.Errorf("%w: expected a timer list", ErrCorrupt)
	}
	return entries, nil
}

// Encode renders entries as indented JSON. An empty store encodes as [].
func Encode(entries []models.TimerEntry) ([]byte, error) {
	if entries == nil {
		entries = []models.TimerEntry{}
	}
	raw, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(raw, '\n'), nil
}

// Save writes the store to a temp file next to path and renames it into
// place, so an interrupted save leaves the previous file intact.
func Save(store *timer.Store, path string) error {
	raw, err := Encode(store.Entries())
	if err != nil {
		return wrapFileErr("save", path, err)
	}
	return wrapFileErr("save", path, writeAtomic(path, raw))
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpName, config.DataFileMode); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return err
	}
	return nil
}

// File binds Load and Save to one path.
type File struct {
	Path string
}

func NewFile(path string) *File {
	return &File{Path: path}
}

func (f *File) Load() (*timer.Store, error) { return Load(f.Path) }

func (f *File) Save(store *timer.Store) error { return Save(store, f.Path) }
