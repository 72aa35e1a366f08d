package tui

import (
	"strings"
	"time"

	"github.com/akyairhashvil/timetracker/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View renders the current frame. The bubbletea renderer skips the repaint
// when the output is unchanged, so idle ticks cost nothing on screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	now := m.clock()
	frame, _, _ := BuildFrame(m.store.Entries(), m.arena.keys, m.uiState(), nil, now)

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(frame.Title))
	b.WriteString("\n")
	b.WriteString(m.theme.Summary.Render(frame.Summary))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs(frame.Tab))
	b.WriteString("\n")

	switch frame.Tab {
	case TabStatistics:
		body := m.theme.Dim.Render("Statistics are not available yet.")
		b.WriteString(lipgloss.NewStyle().Height(m.body.Height).Render(body))
	default:
		body := m.body
		body.SetContent(m.renderFrameRows(frame.Rows))
		b.WriteString(body.View())
	}
	b.WriteString("\n")

	b.WriteString(m.renderFooter())
	return m.theme.Base.Render(b.String())
}

func (m Model) renderTabs(active Tab) string {
	tabs := make([]string, 0, len(tabLabels))
	for i, label := range tabLabels {
		style := m.theme.Tab
		if Tab(i) == active {
			style = m.theme.ActiveTab
		}
		tabs = append(tabs, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderFooter() string {
	width := max(m.width-4, config.MinNameWidth)
	input := m.theme.Input.Width(width).Render(m.input.View())

	status := ""
	switch {
	case m.err != nil:
		status = m.theme.Error.Render("Error: " + m.err.Error())
	case m.message != "":
		status = m.theme.Summary.Render(m.message)
	}
	help := m.theme.Dim.Render(ansi.Truncate(m.registry.HelpFor(m.focus), width, "…"))
	return lipgloss.JoinVertical(lipgloss.Left, input, status, help)
}

// renderRows builds the body content straight from the store.
func (m Model) renderRows(now time.Time) string {
	frame, _, _ := BuildFrame(m.store.Entries(), m.arena.keys, m.uiState(), nil, now)
	return m.renderFrameRows(frame.Rows)
}

func (m Model) renderFrameRows(rows []Row) string {
	if len(rows) == 0 {
		return m.theme.Dim.Render("No timers yet. Press tab, type a name and press enter.")
	}
	labelWidth := len("00:00:00")
	for _, r := range rows {
		labelWidth = max(labelWidth, ansi.StringWidth(r.Label))
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = m.renderRow(r, labelWidth)
	}
	return strings.Join(lines, "\n")
}

// renderRow lays out: cursor, toggle box with elapsed label, name, share
// bar and the remove control.
func (m Model) renderRow(r Row, labelWidth int) string {
	cursor := "  "
	if r.Selected {
		cursor = m.theme.Cursor.Render("› ")
	}
	box := "[ ]"
	style := m.theme.Row
	if r.Active {
		box = "[▶]"
		style = m.theme.ActiveRow
	}

	fixed := 2 + 4 + labelWidth + 2 + 2 + config.ShareBarWidth + 2 + 3
	nameWidth := max(m.body.Width-fixed, config.MinNameWidth)
	name := r.Name
	if name == "" {
		name = "(unnamed)"
	}

	core := box + " " + fitWidth(r.Label, labelWidth) + "  " + fitWidth(name, nameWidth)
	return cursor + style.Render(core) + "  " + m.share.ViewAs(r.Share) + "  " + m.theme.Remove.Render("[-]")
}
