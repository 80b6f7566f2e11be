package layout

import "fmt"

// Layout is implemented by the three layout modes.
type Layout interface {
	// Layout computes the geometry of the visible tabs, in order.
	Layout(gtx Context, tabs []Tab) Pass
	Scroll(units int)
	ScrollOffset() int
	CanScroll() bool
	IsTabHidden(id string) bool
	// IsDragOut reports whether dragging a tab by (dx, dy) takes it out of
	// the strip.
	IsDragOut(id string, dx, dy int) bool
	// Last returns the most recent pass, or nil before the first one.
	Last() Pass
}

var (
	_ Layout = (*SingleRow)(nil)
	_ Layout = (*Scrollable)(nil)
	_ Layout = (*Table)(nil)
)

// Mode names a layout.
type Mode string

const (
	ModeSingleRow  Mode = "single"
	ModeScrollable Mode = "scrollable"
	ModeTable      Mode = "table"
)

// Modes lists every mode in cycling order.
var Modes = []Mode{ModeScrollable, ModeSingleRow, ModeTable}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown layout mode %q", s)
}

// New returns a fresh layout of the given mode.
func New(m Mode) Layout {
	switch m {
	case ModeSingleRow:
		return NewSingleRow()
	case ModeTable:
		return NewTable()
	default:
		return NewScrollable()
	}
}
