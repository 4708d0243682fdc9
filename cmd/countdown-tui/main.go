// Package main is the entry point for the countdown TUI application.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/countdown-tui/internal/config"
	"github.com/hy4ri/countdown-tui/internal/countdown"
	"github.com/hy4ri/countdown-tui/internal/ics"
	applog "github.com/hy4ri/countdown-tui/internal/log"
	"github.com/hy4ri/countdown-tui/internal/store"
	"github.com/hy4ri/countdown-tui/internal/tui"
)

const version = "0.1.0"

const helpText = `countdown-tui - Count down the days to the events that matter

USAGE:
    countdown-tui [OPTIONS]

OPTIONS:
    -h, --help          Show this help message
    -v, --version       Show version information
    --init              Create a template config file
    --export FILE       Write all events to an iCalendar file and exit
    --import FILE       Add the events of an iCalendar file and exit

CONFIGURATION:
    Config file: ~/.config/countdown-tui/config.yaml
    Events:      ~/.local/share/countdown-tui/events.json

KEYBINDINGS:
    Navigation:
        j/k         Move down/up
        gg/G        Go to top/bottom
        Enter       Open full-screen countdown
        Esc         Close form / countdown / card

    Events:
        a           Add new event
        h/l         Reveal/close delete button
        dd          Delete event
        y           Copy countdown to clipboard

    Other:
        ?           Show help
        q           Quit

    Mouse:
        Click a card to open it, drag it left to reveal Delete.
`

const configTemplate = `# Countdown TUI Configuration
# Location: ~/.config/countdown-tui/config.yaml

storage:
  # Where events are kept: file, keyring or sqlite (default: file)
  backend: file

  # Override the events file or database location
  # path: ""

ui:
  # Logical pixels per terminal column when measuring swipes (default: 10)
  cell_width: 10

  # Show key hints in the status bar (default: true)
  show_hints: true

log:
  # debug, info, warn or error (default: info)
  level: info

  # Defaults to debug.log in the data directory
  # file: ""
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Define flags
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		exportPath  string
		importPath  string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&exportPath, "export", "", "Export events to an iCalendar file")
	flag.StringVar(&importPath, "import", "", "Import events from an iCalendar file")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	// Handle flags
	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("countdown-tui version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	st, err := store.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	events := loadEvents(st)

	switch {
	case exportPath != "":
		return exportEvents(exportPath, events)
	case importPath != "":
		return importEvents(importPath, st, events)
	}

	return runApp(cfg, st, events)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// setupLogging sends the debug log to a file; the TUI owns the terminal.
func setupLogging(cfg *config.Config) (func(), error) {
	path, err := cfg.LogPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get log path: %w", err)
	}

	f, err := tea.LogToFile(path, "")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	applog.SetOutput(f)
	applog.SetLevel(applog.ParseLevel(cfg.Log.Level))
	applog.Info("starting", "version", version, "backend", cfg.Storage.Backend)

	return func() { f.Close() }, nil
}

// loadEvents reads the stored collection. Read errors are logged and start
// the app with no events.
func loadEvents(st store.Store) *countdown.Collection {
	events, err := st.Load()
	if err != nil {
		applog.Error("load events", err)
	}
	applog.Info("events loaded", "count", len(events))
	return countdown.NewCollection(events, nil)
}

func exportEvents(path string, events *countdown.Collection) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := ics.Export(f, events.Events(), time.Now()); err != nil {
		return err
	}

	fmt.Printf("Exported %d events to %s\n", events.Len(), path)
	return nil
}

func importEvents(path string, st store.Store, events *countdown.Collection) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	parsed, err := ics.Parse(f)
	if err != nil {
		return err
	}

	var saveErr error
	events.OnChange(func(all []countdown.Event) {
		saveErr = st.Save(all)
	})

	added := events.Import(parsed, time.Now())
	if saveErr != nil {
		return fmt.Errorf("failed to save imported events: %w", saveErr)
	}

	fmt.Printf("Imported %d of %d events from %s\n", added, len(parsed), path)
	return nil
}

// runApp starts the main TUI application.
func runApp(cfg *config.Config, st store.Store, events *countdown.Collection) error {
	app := tui.NewApp(cfg, st, events)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
