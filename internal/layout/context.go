// Package layout computes the geometry of a tab strip: where every tab label
// goes, which tabs overflow, and where the title, "more" indicator and entry
// point controls sit. Layouts are not safe for concurrent use; the owner must
// serialize calls to Layout, Scroll and the query methods.
package layout

import "image"

const (
	// DefaultDeadzone is the tolerance used when deciding whether a tab is
	// hidden, so that rounding does not flag nearly full-size tabs.
	DefaultDeadzone = 10

	// DefaultDragOutMultiplier scales the strip extent for the drag-out test.
	DefaultDragOutMultiplier = 1.5

	// ScrollUnitIncrement is the scroll step of one wheel notch.
	ScrollUnitIncrement = 10
)

// Orientation selects where the strip is placed relative to the content.
type Orientation int

const (
	Top Orientation = iota
	Bottom
)

func (o Orientation) String() string {
	switch o {
	case Bottom:
		return "bottom"
	default:
		return "top"
	}
}

// Insets is the space reserved on each side of a box.
type Insets struct {
	Top, Left, Bottom, Right int
}

// Horizontal returns Left+Right.
func (in Insets) Horizontal() int { return in.Left + in.Right }

// Vertical returns Top+Bottom.
func (in Insets) Vertical() int { return in.Top + in.Bottom }

// Tab is one logical entry of the strip. Layouts treat it as read-only.
type Tab struct {
	ID            string
	PreferredSize image.Point
	Pinned        bool
}

// Label is the host's visual handle for a tab. Layouts only write its bounds.
type Label interface {
	Bounds() image.Rectangle
	SetBounds(image.Rectangle)
	// Valid reports false when the label needs a fresh layout regardless of
	// any cached result.
	Valid() bool
}

// Centerer is implemented by labels that can center their text inside
// bounds narrower or wider than their preferred size.
type Centerer interface {
	SetCentered(bool)
}

// LabelFunc resolves the label of a tab. It may return nil.
type LabelFunc func(id string) Label

// Toolbar describes the toolbar attached to the selected tab. The host
// resolves it again before every pass; layouts never keep it.
type Toolbar struct {
	Size     image.Point
	MinWidth int
	// Horizontal toolbars sit above the content, the others beside it.
	Horizontal bool
}

func (t *Toolbar) empty() bool {
	return t == nil || (t.Size.X <= 0 && t.Size.Y <= 0)
}

// Context carries everything a pass needs from the host.
type Context struct {
	// Size is the viewport of the whole tabbed component.
	Size          image.Point
	Insets        Insets
	ActionsInsets Insets
	Orientation   Orientation

	HideTabs       bool
	SingleRow      bool
	PinnedSeparate bool
	// Compressible shrinks tabs proportionally instead of wrapping them
	// when the table layout runs out of room. It is off unless the host asks
	// for it, so an unset table wraps tabs that do not fit. Pinned tabs on
	// their own row are always compressed.
	Compressible bool

	FirstTabOffset int
	HGap           int
	MinTabWidth    int
	HeaderHeight   int

	TitleSize      image.Point
	MoreSize       image.Point
	EntryPointSize image.Point

	Toolbar             *Toolbar
	SideComponentBefore bool
	SeparatorWidth      int

	Selected       string
	MouseOverStrip bool
	// Force discards any cached pass.
	Force bool

	DragOutMultiplier float64
	Deadzone          int

	Labels LabelFunc
}

func (gtx Context) label(id string) Label {
	if gtx.Labels == nil {
		return nil
	}
	return gtx.Labels(id)
}

func (gtx Context) setBounds(id string, r image.Rectangle) {
	if l := gtx.label(id); l != nil {
		l.SetBounds(r)
	}
}

func (gtx Context) setCentered(id string, centered bool) {
	if c, ok := gtx.label(id).(Centerer); ok {
		c.SetCentered(centered)
	}
}

func (gtx Context) deadzone() int {
	if gtx.Deadzone <= 0 {
		return DefaultDeadzone
	}
	return gtx.Deadzone
}

func (gtx Context) dragOutMultiplier() float64 {
	if gtx.DragOutMultiplier <= 0 {
		return DefaultDragOutMultiplier
	}
	return gtx.DragOutMultiplier
}

// toolbar returns the selected tab's toolbar, or nil when it has none.
func (gtx Context) toolbar() *Toolbar {
	if gtx.Selected == "" || gtx.Toolbar.empty() {
		return nil
	}
	return gtx.Toolbar
}

// Rect returns the rectangle at (x, y) with the given width and height.
// Negative sizes collapse to zero; unlike image.Rect the corners are never
// swapped.
func Rect(x, y, w, h int) image.Rectangle {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x+w, y+h)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
