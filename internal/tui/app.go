package tui

import (
	"io"
	"log"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tabstrip/internal/config"
	"github.com/hy4ri/tabstrip/internal/strip"
	"github.com/hy4ri/tabstrip/internal/tui/components"
	"github.com/hy4ri/tabstrip/internal/tui/styles"
)

// promptKind says what the text input is collecting.
type promptKind int

const (
	promptNone promptKind = iota
	promptAdd
	promptRename
	promptJump
	promptCommand
)

func (k promptKind) label() string {
	switch k {
	case promptAdd:
		return "New tab: "
	case promptRename:
		return "Rename: "
	case promptJump:
		return "Jump to: "
	case promptCommand:
		return ":"
	}
	return ""
}

// statusMsg replaces the status line.
type statusMsg struct {
	msg string
	err bool
}

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	strip  *strip.Strip
	config *config.Config
	logger *log.Logger

	keymap   Keymap
	keyState KeyState

	// Components
	stripComp *components.TabStripModel
	helpComp  *components.HelpModel
	showHelp  bool

	input  textinput.Model
	prompt promptKind

	// UI state
	statusMsg string
	statusErr bool
	width     int
	height    int
}

// NewApp creates a new App around s. A nil logger discards debug output.
func NewApp(s *strip.Strip, cfg *config.Config, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	input := textinput.New()
	input.CharLimit = 120
	input.Width = 40
	input.PromptStyle = styles.CommandPrompt
	input.TextStyle = styles.CommandInput

	app := &App{
		strip:     s,
		config:    cfg,
		logger:    logger,
		keymap:    DefaultKeymap(),
		stripComp: components.NewTabStrip(s),
		helpComp:  components.NewHelp(),
		input:     input,
	}
	app.helpComp.SetKeymap(app.keymap.HelpItems())
	return app
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.stripComp.Init(), a.helpComp.Init())
}

// openPrompt focuses the text input for kind, prefilled with value.
func (a *App) openPrompt(kind promptKind, value string) tea.Cmd {
	a.prompt = kind
	a.input.Prompt = kind.label()
	a.input.SetValue(value)
	a.input.CursorEnd()
	return a.input.Focus()
}

func (a *App) closePrompt() {
	a.prompt = promptNone
	a.input.Blur()
	a.input.Reset()
}

func (a *App) setStatus(msg string, err bool) {
	a.statusMsg = msg
	a.statusErr = err
	if err {
		a.logger.Printf("error: %s", msg)
	}
}
