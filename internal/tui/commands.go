package tui

import (
	"time"

	"github.com/akyairhashvil/timetracker/internal/models"
	"github.com/akyairhashvil/timetracker/internal/report"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---
type TickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

type reportWrittenMsg struct {
	path string
	err  error
}

// exportReportCmd works on a snapshot so the store is never touched off
// the update loop.
func exportReportCmd(dir string, entries []models.TimerEntry, now time.Time) tea.Cmd {
	return func() tea.Msg {
		path, err := report.WritePDF(dir, entries, now)
		return reportWrittenMsg{path: path, err: err}
	}
}
