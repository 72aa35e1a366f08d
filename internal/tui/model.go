package tui

import (
	"time"

	"github.com/akyairhashvil/timetracker/internal/config"
	"github.com/akyairhashvil/timetracker/internal/timer"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the root bubbletea model. It owns the store for the whole run.
type Model struct {
	store      *timer.Store
	persist    Persister
	registry   *HandlerRegistry
	arena      rowArena
	input      textinput.Model
	body       viewport.Model
	share      progress.Model
	theme      Theme
	clock      func() time.Time
	tick       time.Duration
	reportsDir string

	focus    focusArea
	tab      Tab
	cursor   int
	gestures []Gesture

	width, height int
	message       string
	err           error
	saved         bool
	quitting      bool
}

type Option func(*Model)

func WithClock(clock func() time.Time) Option {
	return func(m *Model) { m.clock = clock }
}

func WithTickInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.tick = d
		}
	}
}

func WithTheme(name string) Option {
	return func(m *Model) { m.theme = ThemeByName(name) }
}

func WithReportsDir(dir string) Option {
	return func(m *Model) { m.reportsDir = dir }
}

// WithSize seeds the layout before the first WindowSizeMsg.
func WithSize(width, height int) Option {
	return func(m *Model) {
		if width > 0 && height > 0 {
			m.width, m.height = width, height
		}
	}
}

func NewModel(store *timer.Store, persist Persister, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = config.NamePlaceholder
	ti.Prompt = "+ "

	m := Model{
		store:    store,
		persist:  persist,
		registry: newKeyRegistry(),
		input:    ti,
		body:     viewport.New(config.DefaultWidth, 1),
		theme:    Themes["default"],
		clock:    time.Now,
		tick:     config.DefaultTickInterval,
		width:    config.DefaultWidth,
		height:   config.DefaultHeight,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.share = progress.New(
		progress.WithSolidFill(m.theme.ShareFill),
		progress.WithWidth(config.ShareBarWidth),
		progress.WithoutPercentage(),
	)
	m.resize(m.width, m.height)
	m.syncRows("")
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd(m.tick))
}

// Err reports a failure that ended the run, including a failed save.
func (m Model) Err() error { return m.err }

// Saved reports whether the store was persisted on exit.
func (m Model) Saved() bool { return m.saved }

func (m Model) Store() *timer.Store { return m.store }

func (m Model) uiState() UIState {
	return UIState{
		Input:  m.input.Value(),
		Cursor: m.cursor,
		Tab:    m.tab,
		Focus:  m.focus,
	}
}
