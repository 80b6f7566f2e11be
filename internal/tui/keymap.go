// Package tui provides the terminal user interface for the tab strip.
package tui

import tea "github.com/charmbracelet/bubbletea"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Keymap contains all key bindings for the application.
type Keymap struct {
	// Navigation
	Prev        Key
	Next        Key
	First       Key
	Last        Key
	ScrollLeft  Key
	ScrollRight Key
	Jump        Key

	// Tab actions
	Add       Key
	Rename    Key
	Close     Key
	Pin       Key
	MoveLeft  Key
	MoveRight Key
	Copy      Key

	// Layout
	Mode          Key
	Orientation   Key
	HideTabs      Key
	Compressible  Key
	SingleRow     Key
	PinnedRow     Key
	CycleToolbar  Key
	ForceRelayout Key

	// General
	Command Key
	Back    Key
	Quit    Key
	Help    Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Prev:        Key{Key: "h", Help: "previous tab"},
		Next:        Key{Key: "l", Help: "next tab"},
		First:       Key{Key: "g", Help: "first tab (gg)"},
		Last:        Key{Key: "G", Help: "last tab"},
		ScrollLeft:  Key{Key: "H", Help: "scroll left"},
		ScrollRight: Key{Key: "L", Help: "scroll right"},
		Jump:        Key{Key: "/", Help: "jump to tab"},

		Add:       Key{Key: "a", Help: "new tab"},
		Rename:    Key{Key: "e", Help: "rename tab"},
		Close:     Key{Key: "d", Help: "close tab (dd)"},
		Pin:       Key{Key: "p", Help: "pin/unpin"},
		MoveLeft:  Key{Key: "<", Help: "move tab left"},
		MoveRight: Key{Key: ">", Help: "move tab right"},
		Copy:      Key{Key: "y", Help: "copy title"},

		Mode:          Key{Key: "m", Help: "cycle layout mode"},
		Orientation:   Key{Key: "o", Help: "tabs top/bottom"},
		HideTabs:      Key{Key: "t", Help: "hide/show tabs"},
		Compressible:  Key{Key: "c", Help: "compressible table"},
		SingleRow:     Key{Key: "s", Help: "single-row table"},
		PinnedRow:     Key{Key: "P", Help: "pinned tabs on own row"},
		CycleToolbar:  Key{Key: "b", Help: "cycle toolbar placement"},
		ForceRelayout: Key{Key: "r", Help: "force relayout"},

		Command: Key{Key: ":", Help: "command"},
		Back:    Key{Key: "esc", Help: "back"},
		Quit:    Key{Key: "q", Help: "quit"},
		Help:    Key{Key: "?", Help: "help"},
	}
}

// KeyState tracks multi-key sequences (like 'gg' or 'dd').
type KeyState struct {
	LastKey  string
	WaitingG bool // Waiting for second 'g' in 'gg'
	WaitingD bool // Waiting for second 'd' in 'dd'
}

// HandleKey processes a key press and returns the action to take.
// Returns the action name and whether the key was consumed. Without vim
// mode, first and close trigger on a single press.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, keymap Keymap, vim bool) (string, bool) {
	key := msg.String()

	if ks.WaitingG {
		ks.WaitingG = false
		if key == keymap.First.Key {
			return "first", true
		}
	}
	if ks.WaitingD {
		ks.WaitingD = false
		if key == keymap.Close.Key {
			return "close", true
		}
	}

	if vim {
		switch key {
		case keymap.First.Key:
			ks.WaitingG = true
			ks.LastKey = key
			return "", true
		case keymap.Close.Key:
			ks.WaitingD = true
			ks.LastKey = key
			return "", true
		}
	}

	switch key {
	case keymap.Prev.Key, "left", "shift+tab":
		return "prev", true
	case keymap.Next.Key, "right", "tab":
		return "next", true
	case keymap.First.Key, "home":
		return "first", true
	case keymap.Last.Key, "end":
		return "last", true
	case keymap.ScrollLeft.Key:
		return "scroll_left", true
	case keymap.ScrollRight.Key:
		return "scroll_right", true
	case keymap.Jump.Key:
		return "jump", true
	case keymap.Add.Key:
		return "add", true
	case keymap.Rename.Key:
		return "rename", true
	case keymap.Close.Key, "ctrl+w":
		return "close", true
	case keymap.Pin.Key:
		return "pin", true
	case keymap.MoveLeft.Key:
		return "move_left", true
	case keymap.MoveRight.Key:
		return "move_right", true
	case keymap.Copy.Key:
		return "copy", true
	case keymap.Mode.Key:
		return "mode", true
	case keymap.Orientation.Key:
		return "orientation", true
	case keymap.HideTabs.Key:
		return "hide_tabs", true
	case keymap.Compressible.Key:
		return "compressible", true
	case keymap.SingleRow.Key:
		return "single_row", true
	case keymap.PinnedRow.Key:
		return "pinned_row", true
	case keymap.CycleToolbar.Key:
		return "toolbar", true
	case keymap.ForceRelayout.Key:
		return "relayout", true
	case keymap.Command.Key:
		return "command", true
	case keymap.Back.Key:
		return "back", true
	case keymap.Quit.Key, "ctrl+c":
		return "quit", true
	case keymap.Help.Key:
		return "help", true
	}

	return "", false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
	ks.WaitingD = false
	ks.LastKey = ""
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k Keymap) HelpItems() [][]string {
	return [][]string{
		{"Navigation", ""},
		{k.Prev.Key + "/" + k.Next.Key, "Previous/next tab"},
		{"gg/" + k.Last.Key, "First/last tab"},
		{k.ScrollLeft.Key + "/" + k.ScrollRight.Key, "Scroll the strip"},
		{k.Jump.Key, "Jump to tab by name"},
		{"", ""},
		{"Tabs", ""},
		{k.Add.Key, "New tab"},
		{k.Rename.Key, "Rename tab"},
		{"dd", "Close tab"},
		{k.Pin.Key, "Pin/unpin tab"},
		{k.MoveLeft.Key + "/" + k.MoveRight.Key, "Move tab"},
		{k.Copy.Key, "Copy title"},
		{"", ""},
		{"Layout", ""},
		{k.Mode.Key, "Cycle layout mode"},
		{k.Orientation.Key, "Tabs on top/bottom"},
		{k.HideTabs.Key, "Hide/show tabs"},
		{k.Compressible.Key, "Compressible table"},
		{k.SingleRow.Key, "Single-row table"},
		{k.PinnedRow.Key, "Pinned row"},
		{k.CycleToolbar.Key, "Toolbar placement"},
		{k.ForceRelayout.Key, "Force relayout"},
		{"", ""},
		{"General", ""},
		{k.Command.Key, "Command line"},
		{k.Help.Key, "Toggle help"},
		{k.Back.Key, "Cancel"},
		{k.Quit.Key, "Quit"},
	}
}
