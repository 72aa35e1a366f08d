// Package report renders a printable summary of the timers.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/timetracker/internal/models"
	"github.com/akyairhashvil/timetracker/internal/timer"
	"github.com/go-pdf/fpdf"
)

// WritePDF writes a one-page summary of entries into dir and returns the
// file path. Times are computed against now so running timers are included.
func WritePDF(dir string, entries []models.TimerEntry, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Time tracker report", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Time tracker report: %s", now.Format("2006-01-02 15:04")))
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(110, 8, "Timer", "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "State", "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Elapsed", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	if len(entries) == 0 {
		pdf.Cell(0, 8, "No timers.")
		pdf.Ln(8)
	}
	for _, e := range entries {
		name := e.Name
		if name == "" {
			name = "(unnamed)"
		}
		pdf.CellFormat(110, 8, tr(name), "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, string(e.State()), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, timer.Format(timer.EntryElapsed(e, now)), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(140, 8, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, timer.Format(timer.SumElapsed(entries, now)), "T", 1, "R", false, 0, "")

	filename := filepath.Join(dir, fmt.Sprintf("timetracker_%s.pdf", now.Format("20060102_150405")))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", err
	}
	return filename, nil
}
