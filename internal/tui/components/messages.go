package components

import "github.com/hy4ri/tabstrip/internal/strip"

// TabSelectedMsg is emitted when a tab is clicked.
type TabSelectedMsg struct {
	ID string
}

// TabDetachedMsg is emitted when a tab is dragged out of the strip.
type TabDetachedMsg struct {
	ID string
}

// NewTabRequestMsg is emitted when the entry point is clicked.
type NewTabRequestMsg struct{}

// HiddenTabsMsg is emitted when the more indicator is clicked.
type HiddenTabsMsg struct {
	Items []strip.Item
}

// CloseHelpMsg is emitted when the help view wants to close.
type CloseHelpMsg struct{}
