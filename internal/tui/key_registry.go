package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler reacts to a matched key. The bool reports whether the key was
// consumed.
type KeyHandler func(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Binding  key.Binding
	Handler  KeyHandler
	Focus    []focusArea
	Priority int
}

func (b KeyBinding) AppliesTo(f focusArea) bool {
	if len(b.Focus) == 0 {
		return true
	}
	for _, v := range b.Focus {
		if v == f {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.AppliesTo(m.focus) && key.Matches(msg, b.Binding) {
			next, cmd, handled := b.Handler(m, msg)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

// HelpFor lists the described bindings active in focus area f.
func (r *HandlerRegistry) HelpFor(f focusArea) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.bindings {
		h := b.Binding.Help()
		if h.Desc == "" || !b.AppliesTo(f) || seen[h.Key] {
			continue
		}
		seen[h.Key] = true
		parts = append(parts, "["+h.Key+"] "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
