package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func newKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "save & quit")),
		Handler:  handleQuit,
		Priority: 100,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch focus")),
		Handler:  handleFocusSwitch,
		Priority: 50,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add timer")),
		Handler: handleAdd,
		Focus:   []focusArea{focusInput},
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Handler: handleCursor(-1),
		Focus:   []focusArea{focusList},
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Handler: handleCursor(1),
		Focus:   []focusArea{focusList},
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "start/stop")),
		Handler: handleRowGesture(GestureToggle),
		Focus:   []focusArea{focusList},
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("-", "d", "delete"), key.WithHelp("-", "remove")),
		Handler: handleRowGesture(GestureRemove),
		Focus:   []focusArea{focusList},
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "add")),
		Handler: handleAdd,
		Focus:   []focusArea{focusList},
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tab")),
		Handler: handleTabSwitch,
		Focus:   []focusArea{focusList},
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pdf report")),
		Handler: handleReport,
		Focus:   []focusArea{focusList},
	})
	return r
}

func handleQuit(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	next, cmd := m.exit()
	return next, cmd, true
}

func handleFocusSwitch(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	if m.focus == focusList {
		m.focus = focusInput
		return m, m.input.Focus(), true
	}
	m.focus = focusList
	m.input.Blur()
	return m, nil, true
}

func handleCursor(delta int) KeyHandler {
	return func(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
		if m.tab != TabTimers || m.store.Len() == 0 {
			return m, nil, true
		}
		m.cursor = (m.cursor + delta + m.store.Len()) % m.store.Len()
		return m, nil, true
	}
}

// handleRowGesture queues a gesture for the selected row; it is resolved
// when the frame is flushed.
func handleRowGesture(kind GestureKind) KeyHandler {
	return func(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
		if m.tab != TabTimers || m.store.Len() == 0 {
			return m, nil, true
		}
		m.gestures = append(m.gestures, Gesture{Kind: kind, Row: m.cursor})
		return m, nil, true
	}
}

func handleAdd(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	if m.tab != TabTimers {
		return m, nil, true
	}
	m.gestures = append(m.gestures, Gesture{Kind: GestureAdd})
	return m, nil, true
}

func handleTabSwitch(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.tab = (m.tab + 1) % Tab(len(tabLabels))
	return m, nil, true
}

func handleReport(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	if m.reportsDir == "" {
		m.message = "No reports directory configured"
		return m, nil, true
	}
	m.message = "Writing report..."
	return m, exportReportCmd(m.reportsDir, m.store.Entries(), m.clock()), true
}
