package tui

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/timetracker/internal/config"
	"github.com/akyairhashvil/timetracker/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		// Labels are recomputed from the clock on every render.
		return m, tickCmd(m.tick)
	case reportWrittenMsg:
		if msg.err != nil {
			util.LogError("write report", msg.err)
			m.message = fmt.Sprintf("Report failed: %v", msg.err)
		} else {
			m.message = "Report written to " + msg.path
		}
		return m, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""
	next, cmd, handled := m.registry.Handle(m, msg)
	if next.quitting {
		return next, cmd
	}
	if !handled && next.focus == focusInput {
		var inputCmd tea.Cmd
		next.input, inputCmd = next.input.Update(msg)
		cmd = tea.Batch(cmd, inputCmd)
	}
	next, err := next.flush()
	if err != nil {
		next.err = err
		final, quit := next.exit()
		return final, quit
	}
	return next, cmd
}

// flush resolves the queued gestures against the current frame and then
// applies the resulting intents.
func (m Model) flush() (Model, error) {
	if len(m.gestures) == 0 {
		m.syncRows("")
		return m, nil
	}
	now := m.clock()
	selected := m.arena.key(m.cursor)
	_, intents, err := BuildFrame(m.store.Entries(), m.arena.keys, m.uiState(), m.gestures, now)
	m.gestures = nil
	if err != nil {
		return m, err
	}
	res, err := applyIntents(m.store, intents, now)
	if res.added != "" {
		// TODO: make clearing configurable for users who add several timers with one name.
		m.input.Reset()
		selected = res.added
	}
	switch res.removed {
	case 0:
	case 1:
		m.message = "Removed 1 timer"
	default:
		m.message = fmt.Sprintf("Removed %d timers", res.removed)
	}
	m.syncRows(selected)
	return m, err
}

// syncRows keeps the row arena and cursor aligned with the store, following
// the entry with key selected when it still exists.
func (m *Model) syncRows(selected string) {
	m.arena.sync(m.store.Entries())
	if selected != "" {
		if i := m.arena.indexOf(selected); i >= 0 {
			m.cursor = i
		}
	}
	m.cursor = util.Clamp(m.cursor, 0, max(m.store.Len()-1, 0))
	m.body.SetContent(m.renderRows(m.clock()))
	m.scrollToCursor()
}

func (m *Model) scrollToCursor() {
	top := m.cursor * config.RowHeight
	switch {
	case top < m.body.YOffset:
		m.body.SetYOffset(top)
	case top+config.RowHeight > m.body.YOffset+m.body.Height:
		m.body.SetYOffset(top + config.RowHeight - m.body.Height)
	}
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.body.Width = max(width-2, 1)
	m.body.Height = max(height-config.HeaderHeight-config.FooterHeight, 1)
	m.input.Width = max(width-10, 10)
	m.scrollToCursor()
}

// exit saves synchronously and quits. A save failure is kept on the model
// for the caller to report.
func (m Model) exit() (Model, tea.Cmd) {
	if err := m.persist.Save(m.store); err != nil {
		m.err = errors.Join(m.err, fmt.Errorf("save timers: %w", err))
	} else {
		m.saved = true
	}
	m.quitting = true
	return m, tea.Quit
}
