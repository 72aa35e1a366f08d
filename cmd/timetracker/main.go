package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/akyairhashvil/timetracker/internal/config"
	"github.com/akyairhashvil/timetracker/internal/storage"
	"github.com/akyairhashvil/timetracker/internal/timer"
	"github.com/akyairhashvil/timetracker/internal/tui"
	"github.com/akyairhashvil/timetracker/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "path to the YAML config file")
	dataFile := flag.String("file", "", "timer data file (overrides config)")
	flag.Parse()

	// 1. Resolve configuration
	cfg, err := config.Load(*configPath)
	util.MustSucceed("load config", err)
	if *dataFile != "" {
		cfg.DataFile = *dataFile
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fmt.Fprintln(os.Stderr, "timetracker needs an interactive terminal")
		os.Exit(1)
	}

	// 2. Load timers; a corrupt file aborts instead of being overwritten later
	file := storage.NewFile(cfg.DataFile)
	store, err := file.Load()
	util.MustSucceed("load timers", err)

	// 3. Keep log output off the screen while the UI runs
	var logFile *os.File
	if cfg.LogFile != "" {
		logFile, err = tea.LogToFile(cfg.LogFile, config.AppName)
		util.MustSucceed("open log file", err)
	} else {
		util.Silence()
	}

	width, height, _ := term.GetSize(fd)
	model := tui.NewModel(store, file,
		tui.WithTickInterval(cfg.TickInterval),
		tui.WithTheme(cfg.Theme),
		tui.WithReportsDir(cfg.ReportsDir),
		tui.WithSize(width, height),
	)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, runErr := p.Run()
	log.SetOutput(os.Stderr)

	code := finish(final, runErr, file, store, os.Stderr)
	if logFile != nil {
		_ = logFile.Close()
	}
	os.Exit(code)
}

// finish settles the run once the program has stopped and returns the exit
// status. The store is saved here unless the model already saved it, since
// the program can also end without the exit key (signal, hangup).
func finish(final tea.Model, runErr error, persist tui.Persister, store *timer.Store, stderr io.Writer) int {
	fm, ok := final.(tui.Model)
	if ok && fm.Err() != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", fm.Err())
		return 1
	}
	if !ok || !fm.Saved() {
		if err := persist.Save(store); err != nil {
			fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
			return 1
		}
	}
	if runErr != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", runErr)
		return 1
	}
	return 0
}
