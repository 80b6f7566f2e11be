// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	Subtle    = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#AD8CFF"}
	Surface   = lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2A2A2A"}

	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	PinnedColor  = lipgloss.AdaptiveColor{Light: "#EA8811", Dark: "#FFB35C"}
)

// Tab strip
var (
	// Tab is an unselected tab label.
	Tab = lipgloss.NewStyle().
		Foreground(Subtle).
		Background(Surface)

	// TabSelected is the selected tab label.
	TabSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Highlight)

	// TabPinned is an unselected pinned tab.
	TabPinned = Tab.Copy().
			Foreground(PinnedColor)

	// TabClipped marks a tab the layout could only show in part.
	TabClipped = Tab.Copy().
			Italic(true)

	// More is the overflow indicator.
	More = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// EntryPoint is the "new tab" button.
	EntryPoint = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// StripTitle is drawn before the first tab.
	StripTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)

	// Toolbar is the selected tab's toolbar.
	Toolbar = lipgloss.NewStyle().
		Foreground(Subtle).
		Background(Surface)

	// Separator sits between a side toolbar and the content.
	Separator = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Content and chrome
var (
	// Title is the style for section titles
	// NOTE: No margins - they break the row arithmetic of the canvas
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// ContentText is regular text inside the content area.
	ContentText = lipgloss.NewStyle()

	// StatusBar is the bottom status line.
	StatusBar = lipgloss.NewStyle().
			Foreground(Subtle)

	// StatusError is an error in the status line.
	StatusError = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// Dialog frames overlays.
	Dialog = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)
)

// Help
var (
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	SectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Highlight)
)

// Command line
var (
	// CommandPrompt is the style for the ":" prompt.
	CommandPrompt = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFCC00")).
			Bold(true)

	// CommandInput is the style for the active command input text.
	CommandInput = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	// CommandSuggestion is an autocomplete candidate.
	CommandSuggestion = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888"))
)
