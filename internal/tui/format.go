package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func formatSummary(count int, noun string, active int, total string) string {
	if count == 0 {
		return "No timers yet"
	}
	return fmt.Sprintf("%d %s  |  %d running  |  %s tracked", count, noun, active, total)
}

// fitWidth truncates s to width cells and pads it with spaces to exactly
// width cells.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "…")
	}
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
