// Package main is the entry point for the tabstrip terminal demo.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tabstrip/internal/config"
	"github.com/hy4ri/tabstrip/internal/layout"
	"github.com/hy4ri/tabstrip/internal/strip"
	"github.com/hy4ri/tabstrip/internal/tui"
)

const version = "0.1.0"

const helpText = `tabstrip - Terminal tab strip with scrollable, single-row and table layouts

USAGE:
    tabstrip [OPTIONS]

OPTIONS:
    -h, --help         Show this help message
    -v, --version      Show version information
    --init             Create a template config file
    --mode <name>      Start with a layout: scrollable, single or table
    --bottom           Put the tabs below the content
    --debug            Write layout passes to debug.log

CONFIGURATION:
    Config file: ~/.config/tabstrip/config.yaml

KEYBINDINGS:
    Navigation:
        h/l         Previous/next tab
        gg/G        First/last tab
        H/L         Scroll the strip
        /           Jump to a tab by name

    Tabs:
        a           New tab
        e           Rename tab
        dd          Close tab
        p           Pin/unpin
        </>         Move tab
        y           Copy title

    Layout:
        m           Cycle layout mode
        o           Tabs on top/bottom
        c/s/P       Compressible, single-row, pinned row (table)
        b           Cycle toolbar placement

    Other:
        :           Command line
        ?           Show help
        q           Quit

Mouse: click selects, wheel scrolls, dragging a tab out of the strip closes it.
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		bottom      bool
		debug       bool
		mode        string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&mode, "mode", "", "Layout mode")
	flag.BoolVar(&bottom, "bottom", false, "Tabs at the bottom")
	flag.BoolVar(&debug, "debug", false, "Write a debug log")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("tabstrip version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	return runApp(mode, bottom, debug)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

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

	if err := config.WriteTemplate(path); err != nil {
		return err
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp starts the main TUI application.
func runApp(mode string, bottom, debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if mode != "" {
		m, err := layout.ParseMode(mode)
		if err != nil {
			return err
		}
		cfg.Layout.Mode = string(m)
	}
	if bottom {
		cfg.Layout.Orientation = "bottom"
	}

	logger, closeLog, err := tui.OpenDebugLog(debug)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	defer closeLog()

	opts := cfg.StripOptions()
	opts.Logger = logger
	s := strip.New(opts)
	for _, t := range cfg.Tabs {
		s.Add(t.Title, t.Pinned)
	}

	app := tui.NewApp(s, cfg, logger)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
