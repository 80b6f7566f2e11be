// Package strip hosts a tab strip: it owns the tabs and their label
// handles, feeds them to a layout engine and answers questions about the
// resulting geometry. All methods are safe for concurrent use.
package strip

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/hy4ri/tabstrip/internal/layout"
)

// ErrNotFound is returned for operations on a tab the strip does not own.
var ErrNotFound = errors.New("tab not found")

// ToolbarPlacement says where the selected tab's toolbar goes.
type ToolbarPlacement string

const (
	ToolbarNone  ToolbarPlacement = "none"
	ToolbarTop   ToolbarPlacement = "top"
	ToolbarLeft  ToolbarPlacement = "left"
	ToolbarRight ToolbarPlacement = "right"
)

// Decorations drawn around the tabs, in cells.
const (
	MoreText       = " » "
	EntryPointText = " + "
	HeaderHeight   = 1
)

// Options configure a Strip.
type Options struct {
	Mode        layout.Mode
	Orientation layout.Orientation

	PinnedSeparate bool
	Compressible   bool
	// SingleRow keeps a table on one scrolling row.
	SingleRow bool
	HideTabs  bool

	Gap            int
	MinTabWidth    int
	FirstTabOffset int
	// Padding is added on both sides of every label.
	Padding int

	Title          string
	ShowEntryPoint bool

	Toolbar      ToolbarPlacement
	ToolbarWidth int

	DragOutMultiplier float64
	Deadzone          int

	Logger *log.Logger
}

// Strip is a set of tabs laid out by one of the layout modes.
type Strip struct {
	mu sync.Mutex

	opts   Options
	engine layout.Layout
	logger *log.Logger

	items    []Item
	labels   map[string]*label
	selected string

	size      image.Point
	mouseOver bool
	// held keeps a manual scroll in place until the selection changes.
	held bool

	dirty bool
	pass  layout.Pass
}

// New creates an empty strip.
func New(opts Options) *Strip {
	if opts.Mode == "" {
		opts.Mode = layout.ModeScrollable
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Strip{
		opts:   opts,
		engine: layout.New(opts.Mode),
		logger: logger,
		labels: make(map[string]*label),
	}
}

// Add appends a tab and returns its id. The first tab becomes selected.
func (s *Strip) Add(title string, pinned bool) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.items = append(s.items, Item{ID: id, Title: title, Pinned: pinned})
	s.labels[id] = &label{stale: true}
	s.order()
	if s.selected == "" {
		s.selected = id
	}
	s.dirty = true
	return id
}

// Close removes a tab. When it was selected, its right neighbour (or the
// new last tab) takes over.
func (s *Strip) Close(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("close %s: %w", id, ErrNotFound)
	}
	s.items = slices.Delete(s.items, i, i+1)
	delete(s.labels, id)
	if s.selected == id {
		s.selected = ""
		if len(s.items) > 0 {
			s.selected = s.items[min(i, len(s.items)-1)].ID
		}
	}
	s.dirty = true
	return nil
}

// Rename changes a tab title.
func (s *Strip) Rename(id, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("rename %s: %w", id, ErrNotFound)
	}
	s.items[i].Title = title
	s.labels[id].stale = true
	return nil
}

// TogglePin pins or unpins a tab. Pinned tabs are kept first.
func (s *Strip) TogglePin(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("pin %s: %w", id, ErrNotFound)
	}
	s.items[i].Pinned = !s.items[i].Pinned
	s.labels[id].stale = true
	s.order()
	s.dirty = true
	return nil
}

// order moves pinned tabs in front of the others, keeping relative order.
func (s *Strip) order() {
	slices.SortStableFunc(s.items, func(a, b Item) int {
		switch {
		case a.Pinned == b.Pinned:
			return 0
		case a.Pinned:
			return -1
		default:
			return 1
		}
	})
}

// Move shifts a tab by delta positions without crossing the pinned boundary.
func (s *Strip) Move(id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("move %s: %w", id, ErrNotFound)
	}
	j := max(0, min(i+delta, len(s.items)-1))
	if s.items[j].Pinned != s.items[i].Pinned {
		return nil
	}
	it := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)
	s.items = slices.Insert(s.items, j, it)
	s.dirty = true
	return nil
}

// Select makes a tab the selected one.
func (s *Strip) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) < 0 {
		return fmt.Errorf("select %s: %w", id, ErrNotFound)
	}
	s.selected = id
	s.held = false
	return nil
}

// Cycle moves the selection by delta tabs, wrapping around.
func (s *Strip) Cycle(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.items)
	if n == 0 {
		return
	}
	i := s.indexOf(s.selected)
	if i < 0 {
		i = 0
	}
	s.selected = s.items[((i+delta)%n+n)%n].ID
	s.held = false
}

// Selected returns the selected tab id, or "" when the strip is empty.
func (s *Strip) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Items returns a copy of the tabs in display order.
func (s *Strip) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// Item returns one tab.
func (s *Strip) Item(id string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return Item{}, false
	}
	return s.items[i], true
}

// Centered reports whether the last pass asked for the tab text to be
// centered in its rectangle.
func (s *Strip) Centered(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.labels[id]
	return ok && l.centered
}

func (s *Strip) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(it Item) bool { return it.ID == id })
}

// SetSize sets the viewport of the whole tabbed component.
func (s *Strip) SetSize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.size = image.Pt(max(width, 0), max(height, 0))
}

// SetMouseOver tells the strip whether the pointer is over its tabs, which
// suspends scrolling to the selection.
func (s *Strip) SetMouseOver(over bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mouseOver = over
}

// SetOrientation puts the tabs above or below the content.
func (s *Strip) SetOrientation(o layout.Orientation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.Orientation = o
	s.dirty = true
}

// SetMode swaps the layout engine. The scroll offset starts over.
func (s *Strip) SetMode(m layout.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m == s.opts.Mode {
		return
	}
	s.logger.Printf("layout mode %s -> %s", s.opts.Mode, m)
	s.opts.Mode = m
	s.engine = layout.New(m)
	s.pass = nil
	s.dirty = true
}

// Options returns the current options.
func (s *Strip) Options() Options {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts
}

// Update changes the options in place. Mode changes go through SetMode.
func (s *Strip) Update(fn func(*Options)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mode := s.opts.Mode
	fn(&s.opts)
	s.opts.Mode = mode
	s.dirty = true
}

// Mode returns the active layout mode.
func (s *Strip) Mode() layout.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.Mode
}

// Relayout runs a layout pass and returns it. With force set, a cached pass
// is never reused.
func (s *Strip) Relayout(force bool) layout.Pass {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.relayout(force)
}

func (s *Strip) relayout(force bool) layout.Pass {
	gtx := s.context()
	gtx.Force = force || s.dirty
	s.pass = s.engine.Layout(gtx, s.tabs())
	s.dirty = false
	s.logger.Printf("pass %s: %d tabs, %d dropped, offset %d, required %d",
		s.opts.Mode, len(s.items), len(s.pass.Dropped()), s.pass.Info().ScrollOffset, s.pass.RequiredLength())
	return s.pass
}

// Pass returns the last pass, computing one if there is none yet.
func (s *Strip) Pass() layout.Pass {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pass == nil {
		return s.relayout(true)
	}
	return s.pass
}

// Scroll moves the strip by units cells, then lays it out again.
func (s *Strip) Scroll(units int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pass == nil {
		s.relayout(true)
	}
	s.held = true
	before := s.engine.ScrollOffset()
	s.engine.Scroll(units)
	if after := s.engine.ScrollOffset(); after != before+units {
		s.logger.Printf("scroll by %d clamped to %d", units, after)
	}
	s.relayout(false)
}

// ScrollOffset returns the offset of the active engine.
func (s *Strip) ScrollOffset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.ScrollOffset()
}

// CanScroll reports whether the active engine scrolls.
func (s *Strip) CanScroll() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.CanScroll()
}

// Hidden returns the tabs the last pass could not show in full, in display
// order. These are the entries behind the more indicator.
func (s *Strip) Hidden() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pass == nil {
		return nil
	}
	var hidden []Item
	for _, it := range s.items {
		if s.engine.IsTabHidden(it.ID) {
			hidden = append(hidden, it)
		}
	}
	return hidden
}

// Target is what a point of the strip hits.
type Target int

const (
	TargetNone Target = iota
	TargetTab
	TargetMore
	TargetEntryPoint
	TargetTitle
)

// HitTest finds what lies under a point of the last pass. For TargetTab the
// tab id is returned too.
func (s *Strip) HitTest(pt image.Point) (Target, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pass == nil {
		return TargetNone, ""
	}
	info := s.pass.Info()
	switch {
	case pt.In(info.MoreRect):
		return TargetMore, ""
	case pt.In(info.EntryPointRect):
		return TargetEntryPoint, ""
	case pt.In(info.TitleRect):
		return TargetTitle, ""
	}
	for _, id := range s.pass.ToLayout() {
		if pt.In(info.Bounds(id)) {
			return TargetTab, id
		}
	}
	return TargetNone, ""
}

// InHeader reports whether a point lies on the tab rows.
func (s *Strip) InHeader(pt image.Point) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pass == nil {
		return false
	}
	info := s.pass.Info()
	header := s.pass.HeaderRect().Union(info.MoreRect).Union(info.EntryPointRect).Union(info.TitleRect)
	return pt.In(header)
}

// IsDragOut reports whether dragging a tab by (dx, dy) detaches it.
func (s *Strip) IsDragOut(id string, dx, dy int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.IsDragOut(id, dx, dy)
}

func (s *Strip) tabs() []layout.Tab {
	tabs := make([]layout.Tab, 0, len(s.items))
	for _, it := range s.items {
		tabs = append(tabs, layout.Tab{
			ID:            it.ID,
			PreferredSize: image.Pt(cellWidth(it.Text())+2*s.opts.Padding, HeaderHeight),
			Pinned:        it.Pinned,
		})
	}
	return tabs
}

func (s *Strip) context() layout.Context {
	o := s.opts
	gtx := layout.Context{
		Size:              s.size,
		Orientation:       o.Orientation,
		HideTabs:          o.HideTabs,
		SingleRow:         o.SingleRow,
		PinnedSeparate:    o.PinnedSeparate,
		Compressible:      o.Compressible,
		FirstTabOffset:    o.FirstTabOffset,
		HGap:              o.Gap,
		MinTabWidth:       o.MinTabWidth,
		HeaderHeight:      HeaderHeight,
		MoreSize:          image.Pt(cellWidth(MoreText), HeaderHeight),
		Selected:          s.selected,
		MouseOverStrip:    s.mouseOver || s.held,
		DragOutMultiplier: o.DragOutMultiplier,
		Deadzone:          o.Deadzone,
		Labels: func(id string) layout.Label {
			if l, ok := s.labels[id]; ok {
				return l
			}
			return nil
		},
	}
	if o.Title != "" {
		gtx.TitleSize = image.Pt(cellWidth(o.Title)+1, HeaderHeight)
	}
	if o.ShowEntryPoint {
		gtx.EntryPointSize = image.Pt(cellWidth(EntryPointText), HeaderHeight)
	}
	switch o.Toolbar {
	case ToolbarTop:
		gtx.Toolbar = &layout.Toolbar{Size: image.Pt(o.ToolbarWidth, 1), Horizontal: true}
	case ToolbarLeft, ToolbarRight:
		gtx.Toolbar = &layout.Toolbar{Size: image.Pt(max(o.ToolbarWidth, 1), 0)}
		gtx.SideComponentBefore = o.Toolbar == ToolbarLeft
		gtx.SeparatorWidth = 1
	}
	return gtx
}
