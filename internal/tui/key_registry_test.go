package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestRegistryPriorityAndFocus(t *testing.T) {
	r := NewHandlerRegistry()
	var calls []string
	handler := func(name string, consume bool) KeyHandler {
		return func(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
			calls = append(calls, name)
			return m, nil, consume
		}
	}
	r.Register(KeyBinding{Binding: key.NewBinding(key.WithKeys("x")), Handler: handler("low", true)})
	r.Register(KeyBinding{Binding: key.NewBinding(key.WithKeys("x")), Handler: handler("high", false), Priority: 10})
	r.Register(KeyBinding{Binding: key.NewBinding(key.WithKeys("x")), Handler: handler("input", true), Focus: []focusArea{focusInput}, Priority: 20})

	_, _, handled := r.Handle(Model{focus: focusList}, runes("x"))
	if !handled {
		t.Fatalf("expected key to be handled")
	}
	if strings.Join(calls, ",") != "high,low" {
		t.Fatalf("unexpected call order %v", calls)
	}

	calls = nil
	if _, _, handled := r.Handle(Model{focus: focusList}, runes("y")); handled || len(calls) != 0 {
		t.Fatalf("unbound key must not be handled")
	}
}

func TestRegistryHelpFor(t *testing.T) {
	r := newKeyRegistry()
	list := r.HelpFor(focusList)
	for _, want := range []string{"[esc] save & quit", "[space] start/stop", "[-] remove"} {
		if !strings.Contains(list, want) {
			t.Fatalf("expected %q in %q", want, list)
		}
	}
	input := r.HelpFor(focusInput)
	if strings.Contains(input, "remove") || !strings.Contains(input, "[enter] add timer") {
		t.Fatalf("unexpected input help %q", input)
	}
}
