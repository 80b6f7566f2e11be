package strip

import (
	"image"

	"github.com/mattn/go-runewidth"
)

// PinMarker prefixes the label of a pinned tab.
const PinMarker = "^ "

// Item is a tab owned by a Strip.
type Item struct {
	ID     string
	Title  string
	Pinned bool
}

// Text returns the label text as drawn in the header.
func (it Item) Text() string {
	if it.Pinned {
		return PinMarker + it.Title
	}
	return it.Title
}

// label is the per-tab handle the layout engine writes into.
type label struct {
	bounds   image.Rectangle
	centered bool
	stale    bool
}

func (l *label) Bounds() image.Rectangle     { return l.bounds }
func (l *label) SetBounds(r image.Rectangle) { l.bounds = r; l.stale = false }
func (l *label) Valid() bool                 { return !l.stale }
func (l *label) SetCentered(c bool)          { l.centered = c }

// cellWidth is the display width of s in terminal cells.
func cellWidth(s string) int {
	return runewidth.StringWidth(s)
}
