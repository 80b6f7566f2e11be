package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/hy4ri/tabstrip/internal/layout"
	"github.com/hy4ri/tabstrip/internal/strip"
	"github.com/hy4ri/tabstrip/internal/tui/components"
)

// Update implements tea.Model. The strip is laid out again after every
// message so View only draws.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.update(msg)
	a.stripComp.Refresh()
	return model, cmd
}

func (a *App) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.MouseMsg:
		if a.showHelp || a.prompt != promptNone {
			return a, nil
		}
		_, cmd := a.stripComp.Update(msg)
		return a, cmd

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// the last line holds the status bar or the prompt
		a.stripComp.SetSize(msg.Width, max(msg.Height-1, 0))
		a.helpComp.SetSize(msg.Width, msg.Height)
		return a, nil

	case statusMsg:
		a.setStatus(msg.msg, msg.err)
		return a, nil

	case components.TabSelectedMsg:
		a.report(a.strip.Select(msg.ID))
		return a, nil

	case components.TabDetachedMsg:
		it, _ := a.strip.Item(msg.ID)
		if err := a.strip.Close(msg.ID); err != nil {
			a.report(err)
			return a, nil
		}
		a.setStatus("Detached: "+it.Title, false)
		if a.config.UI.NotifyDetach {
			return a, a.notifyDetached(it.Title)
		}
		return a, nil

	case components.NewTabRequestMsg:
		return a, a.openPrompt(promptAdd, "")

	case components.HiddenTabsMsg:
		a.showHidden(msg.Items)
		return a, nil

	case components.CloseHelpMsg:
		a.showHelp = false
		return a, nil
	}

	return a, nil
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.prompt != promptNone {
		return a.handlePromptKey(msg)
	}
	if a.showHelp {
		_, cmd := a.helpComp.Update(msg)
		return a, cmd
	}

	action, ok := a.keyState.HandleKey(msg, a.keymap, a.config.UI.VimMode)
	if !ok || action == "" {
		return a, nil
	}
	return a, a.handleAction(action)
}

func (a *App) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.closePrompt()
		return a, nil
	case tea.KeyEnter:
		kind, value := a.prompt, strings.TrimSpace(a.input.Value())
		a.closePrompt()
		return a, a.submitPrompt(kind, value)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) submitPrompt(kind promptKind, value string) tea.Cmd {
	if value == "" {
		return nil
	}
	switch kind {
	case promptAdd:
		a.addTab(value)
	case promptRename:
		a.renameSelected(value)
	case promptJump:
		a.jump(value)
	case promptCommand:
		return a.executeCommand(value)
	}
	return nil
}

// handleAction performs a keymap action.
func (a *App) handleAction(action string) tea.Cmd {
	s := a.strip
	switch action {
	case "prev":
		s.Cycle(-1)
	case "next":
		s.Cycle(1)
	case "first", "last":
		items := s.Items()
		if len(items) == 0 {
			return nil
		}
		it := items[0]
		if action == "last" {
			it = items[len(items)-1]
		}
		a.report(s.Select(it.ID))
	case "scroll_left", "scroll_right":
		if !s.CanScroll() {
			a.setStatus(fmt.Sprintf("%s layout does not scroll", s.Mode()), false)
			return nil
		}
		units := layout.ScrollUnitIncrement
		if action == "scroll_left" {
			units = -units
		}
		s.Scroll(units)
	case "jump":
		return a.openPrompt(promptJump, "")
	case "add":
		return a.openPrompt(promptAdd, "")
	case "rename":
		it, ok := s.Item(s.Selected())
		if !ok {
			return nil
		}
		return a.openPrompt(promptRename, it.Title)
	case "close":
		a.closeSelected()
	case "pin":
		a.report(s.TogglePin(s.Selected()))
	case "move_left":
		a.report(s.Move(s.Selected(), -1))
	case "move_right":
		a.report(s.Move(s.Selected(), 1))
	case "copy":
		return a.copySelected()
	case "mode":
		a.cycleMode()
	case "orientation":
		o := layout.Bottom
		if s.Options().Orientation == layout.Bottom {
			o = layout.Top
		}
		s.SetOrientation(o)
	case "hide_tabs":
		s.Update(func(o *strip.Options) { o.HideTabs = !o.HideTabs })
	case "compressible":
		s.Update(func(o *strip.Options) { o.Compressible = !o.Compressible })
	case "single_row":
		s.Update(func(o *strip.Options) { o.SingleRow = !o.SingleRow })
	case "pinned_row":
		s.Update(func(o *strip.Options) { o.PinnedSeparate = !o.PinnedSeparate })
	case "toolbar":
		a.cycleToolbar()
	case "relayout":
		s.Relayout(true)
	case "command":
		return a.openPrompt(promptCommand, "")
	case "help":
		a.showHelp = true
	case "back":
		a.keyState.Reset()
		a.statusMsg = ""
	case "quit":
		return tea.Quit
	}
	return nil
}

func (a *App) addTab(title string) {
	id := a.strip.Add(title, false)
	a.report(a.strip.Select(id))
}

func (a *App) closeSelected() {
	id := a.strip.Selected()
	if id == "" {
		return
	}
	a.report(a.strip.Close(id))
}

func (a *App) renameSelected(title string) {
	a.report(a.strip.Rename(a.strip.Selected(), title))
}

func (a *App) jump(query string) {
	it, ok := a.strip.Find(query)
	if !ok {
		a.setStatus(fmt.Sprintf("no tab matches %q", query), true)
		return
	}
	a.report(a.strip.Select(it.ID))
}

func (a *App) cycleMode() {
	modes := layout.Modes
	i := slices.Index(modes, a.strip.Mode())
	next := modes[(i+1)%len(modes)]
	a.strip.SetMode(next)
	a.setStatus("layout: "+string(next), false)
}

func (a *App) cycleToolbar() {
	order := []strip.ToolbarPlacement{strip.ToolbarNone, strip.ToolbarTop, strip.ToolbarLeft, strip.ToolbarRight}
	a.strip.Update(func(o *strip.Options) {
		i := max(slices.Index(order, o.Toolbar), 0)
		o.Toolbar = order[(i+1)%len(order)]
		if o.ToolbarWidth == 0 {
			o.ToolbarWidth = 12
		}
	})
	a.setStatus("toolbar: "+string(a.strip.Options().Toolbar), false)
}

func (a *App) showHidden(items []strip.Item) {
	if len(items) == 0 {
		a.setStatus("no hidden tabs", false)
		return
	}
	titles := make([]string, len(items))
	for i, it := range items {
		titles[i] = it.Title
	}
	a.setStatus("hidden: "+strings.Join(titles, ", "), false)
}

// copySelected copies the selected tab title to the clipboard.
func (a *App) copySelected() tea.Cmd {
	it, ok := a.strip.Item(a.strip.Selected())
	if !ok {
		return nil
	}
	return func() tea.Msg {
		if err := clipboard.WriteAll(it.Title); err != nil {
			return statusMsg{msg: "Failed to copy: " + err.Error(), err: true}
		}
		return statusMsg{msg: "Copied: " + it.Title}
	}
}

// notifyDetached sends a desktop notification for a detached tab.
func (a *App) notifyDetached(title string) tea.Cmd {
	return func() tea.Msg {
		if err := beeep.Notify("tabstrip", "Detached: "+title, ""); err != nil {
			a.logger.Printf("notify failed: %v", err)
		}
		return nil
	}
}

// report shows err in the status line, if there is one.
func (a *App) report(err error) {
	if err != nil {
		a.setStatus(err.Error(), true)
	}
}
