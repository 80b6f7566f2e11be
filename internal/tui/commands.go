package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tabstrip/internal/config"
	"github.com/hy4ri/tabstrip/internal/layout"
	"github.com/hy4ri/tabstrip/internal/strip"
)

// CommandHandlerFunc handles a command execution.
type CommandHandlerFunc func(a *App, args []string) tea.Cmd

// CommandDef defines a command.
type CommandDef struct {
	Name        string
	Aliases     []string
	Description string
	Handler     CommandHandlerFunc
}

// CommandRegistry holds all available commands by name and alias.
var CommandRegistry = map[string]CommandDef{}

func init() {
	registerCommands()
}

func registerCommands() {
	commands := []CommandDef{
		{Name: "add", Aliases: []string{"a", "new"}, Description: "Open a tab", Handler: handleAddCommand},
		{Name: "close", Aliases: []string{"c", "bd"}, Description: "Close the selected tab", Handler: handleCloseCommand},
		{Name: "rename", Aliases: []string{"mv"}, Description: "Rename the selected tab", Handler: handleRenameCommand},
		{Name: "pin", Description: "Pin or unpin the selected tab", Handler: handlePinCommand},
		{Name: "jump", Aliases: []string{"j", "b"}, Description: "Select the tab best matching a name", Handler: handleJumpCommand},
		{Name: "mode", Aliases: []string{"m"}, Description: "Switch layout (scrollable, single, table)", Handler: handleModeCommand},
		{Name: "orient", Aliases: []string{"o"}, Description: "Put tabs on top or bottom", Handler: handleOrientCommand},
		{Name: "gap", Description: "Set the gap between tabs", Handler: intOption(func(o *strip.Options, v int) { o.Gap = v })},
		{Name: "min", Description: "Set the minimum tab width", Handler: intOption(func(o *strip.Options, v int) { o.MinTabWidth = v })},
		{Name: "offset", Description: "Set the first tab offset", Handler: intOption(func(o *strip.Options, v int) { o.FirstTabOffset = v })},
		{Name: "deadzone", Description: "Set the clipping deadzone", Handler: intOption(func(o *strip.Options, v int) { o.Deadzone = v })},
		{Name: "title", Description: "Set the strip title", Handler: handleTitleCommand},
		{Name: "toolbar", Description: "Place the toolbar (none, top, left, right)", Handler: handleToolbarCommand},
		{Name: "hidden", Aliases: []string{"ls"}, Description: "List tabs behind the more indicator", Handler: handleHiddenCommand},
		{Name: "help", Aliases: []string{"h", "?"}, Description: "Show help", Handler: handleHelpCommand},
		{Name: "quit", Aliases: []string{"q", "exit"}, Description: "Quit application", Handler: handleQuitCommand},
	}
	for _, cmd := range commands {
		CommandRegistry[cmd.Name] = cmd
		for _, alias := range cmd.Aliases {
			CommandRegistry[alias] = cmd
		}
	}
}

// CommandNames returns the command names starting with prefix, sorted.
func CommandNames(prefix string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, cmd := range CommandRegistry {
		if seen[cmd.Name] || !strings.HasPrefix(cmd.Name, prefix) {
			continue
		}
		seen[cmd.Name] = true
		names = append(names, cmd.Name)
	}
	sort.Strings(names)
	return names
}

// executeCommand runs one command line.
func (a *App) executeCommand(line string) tea.Cmd {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, ok := CommandRegistry[fields[0]]
	if !ok {
		a.setStatus(fmt.Sprintf("unknown command: %s", fields[0]), true)
		return nil
	}
	a.logger.Printf("command %q", line)
	return cmd.Handler(a, fields[1:])
}

func handleAddCommand(a *App, args []string) tea.Cmd {
	if len(args) == 0 {
		return a.openPrompt(promptAdd, "")
	}
	a.addTab(strings.Join(args, " "))
	return nil
}

func handleCloseCommand(a *App, _ []string) tea.Cmd {
	a.closeSelected()
	return nil
}

func handleRenameCommand(a *App, args []string) tea.Cmd {
	if len(args) == 0 {
		it, _ := a.strip.Item(a.strip.Selected())
		return a.openPrompt(promptRename, it.Title)
	}
	a.renameSelected(strings.Join(args, " "))
	return nil
}

func handlePinCommand(a *App, _ []string) tea.Cmd {
	a.report(a.strip.TogglePin(a.strip.Selected()))
	return nil
}

func handleJumpCommand(a *App, args []string) tea.Cmd {
	if len(args) == 0 {
		return a.openPrompt(promptJump, "")
	}
	a.jump(strings.Join(args, " "))
	return nil
}

func handleModeCommand(a *App, args []string) tea.Cmd {
	if len(args) != 1 {
		a.setStatus("usage: mode scrollable|single|table", true)
		return nil
	}
	m, err := layout.ParseMode(args[0])
	if err != nil {
		a.setStatus(err.Error(), true)
		return nil
	}
	a.strip.SetMode(m)
	a.setStatus("layout: "+string(m), false)
	return nil
}

func handleOrientCommand(a *App, args []string) tea.Cmd {
	if len(args) != 1 {
		a.setStatus("usage: orient top|bottom", true)
		return nil
	}
	o, err := config.ParseOrientation(args[0])
	if err != nil {
		a.setStatus(err.Error(), true)
		return nil
	}
	a.strip.SetOrientation(o)
	return nil
}

func handleTitleCommand(a *App, args []string) tea.Cmd {
	title := strings.Join(args, " ")
	a.strip.Update(func(o *strip.Options) { o.Title = title })
	return nil
}

func handleToolbarCommand(a *App, args []string) tea.Cmd {
	if len(args) != 1 {
		a.setStatus("usage: toolbar none|top|left|right", true)
		return nil
	}
	p := strip.ToolbarPlacement(args[0])
	switch p {
	case strip.ToolbarNone, strip.ToolbarTop, strip.ToolbarLeft, strip.ToolbarRight:
	default:
		a.setStatus(fmt.Sprintf("unknown toolbar placement %q", args[0]), true)
		return nil
	}
	a.strip.Update(func(o *strip.Options) {
		o.Toolbar = p
		if o.ToolbarWidth == 0 {
			o.ToolbarWidth = 12
		}
	})
	return nil
}

func handleHiddenCommand(a *App, _ []string) tea.Cmd {
	a.showHidden(a.strip.Hidden())
	return nil
}

func handleHelpCommand(a *App, _ []string) tea.Cmd {
	a.showHelp = true
	return nil
}

func handleQuitCommand(*App, []string) tea.Cmd {
	return tea.Quit
}

// intOption builds a handler setting one non-negative integer option.
func intOption(set func(*strip.Options, int)) CommandHandlerFunc {
	return func(a *App, args []string) tea.Cmd {
		if len(args) != 1 {
			a.setStatus("expected one number", true)
			return nil
		}
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 0 {
			a.setStatus(fmt.Sprintf("not a non-negative number: %s", args[0]), true)
			return nil
		}
		a.strip.Update(func(o *strip.Options) { set(o, v) })
		return nil
	}
}
