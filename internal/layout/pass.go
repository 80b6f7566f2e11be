package layout

import "image"

// Pass is the result of one layout computation. A pass is never modified
// after the layout that produced it returns it.
type Pass interface {
	Info() *PassInfo
	RowCount() int
	// HeaderRect is the union of the laid out tab labels.
	HeaderRect() image.Rectangle
	// RequiredLength is the main-axis length all tabs would need.
	RequiredLength() int
	// ScrollExtent is the main-axis length visible through the strip.
	ScrollExtent() int
	// ToLayout and Dropped partition the visible tabs.
	ToLayout() []string
	Dropped() []string
}

// PassInfo is the part of a pass every layout mode fills in.
type PassInfo struct {
	Visible []Tab

	TitleRect      image.Rectangle
	MoreRect       image.Rectangle
	EntryPointRect image.Rectangle
	ContentRect    image.Rectangle
	ToolbarRect    image.Rectangle
	TabRect        image.Rectangle

	// ScrollOffset is the offset in effect when the pass was computed.
	ScrollOffset int

	bounds map[string]image.Rectangle
	index  map[string]int
}

func newPassInfo(tabs []Tab, offset int) PassInfo {
	visible := make([]Tab, len(tabs))
	copy(visible, tabs)
	index := make(map[string]int, len(visible))
	for i, t := range visible {
		index[t.ID] = i
	}
	return PassInfo{
		Visible:      visible,
		ScrollOffset: offset,
		bounds:       make(map[string]image.Rectangle, len(visible)),
		index:        index,
	}
}

// Info returns the shared part of the pass.
func (p *PassInfo) Info() *PassInfo { return p }

// Bounds returns the rectangle assigned to a tab, or the zero rectangle.
func (p *PassInfo) Bounds(id string) image.Rectangle {
	return p.bounds[id]
}

func (p *PassInfo) tab(id string) (Tab, bool) {
	i, ok := p.index[id]
	if !ok {
		return Tab{}, false
	}
	return p.Visible[i], true
}

func (p *PassInfo) place(gtx Context, id string, r image.Rectangle) {
	p.bounds[id] = r
	gtx.setBounds(id, r)
}

// SingleRowPass is produced by SingleRow and Scrollable.
type SingleRowPass struct {
	PassInfo

	gtx      Context
	insets   Insets
	hToolbar *Toolbar

	layoutSize   image.Point
	contentCount int

	// position is the cursor along the main axis; start is where the first
	// tab begins when nothing is scrolled.
	position       int
	start          int
	requiredLength int
	toFitLength    int

	toLayout []string
	toDrop   []string

	entryPointAxisSize int
	moreAxisSize       int
}

func newSingleRowPass(gtx Context, s Strategy, tabs []Tab, offset int) *SingleRowPass {
	return &SingleRowPass{
		PassInfo:           newPassInfo(tabs, offset),
		gtx:                gtx,
		layoutSize:         gtx.Size,
		contentCount:       len(tabs),
		entryPointAxisSize: s.EntryPointAxisSize(gtx),
		moreAxisSize:       s.MoreAxisSize(gtx),
	}
}

func (p *SingleRowPass) RowCount() int { return 1 }

func (p *SingleRowPass) HeaderRect() image.Rectangle { return p.TabRect }

func (p *SingleRowPass) RequiredLength() int { return p.requiredLength }

// ToFitLength is the main-axis length the tabs had to fit into.
func (p *SingleRowPass) ToFitLength() int { return p.toFitLength }

func (p *SingleRowPass) ScrollExtent() int {
	switch {
	case !p.MoreRect.Empty():
		return p.MoreRect.Min.X - p.gtx.ActionsInsets.Left
	case !p.EntryPointRect.Empty():
		return p.EntryPointRect.Min.X - p.gtx.ActionsInsets.Left
	default:
		return p.layoutSize.X
	}
}

func (p *SingleRowPass) ToLayout() []string { return p.toLayout }

func (p *SingleRowPass) Dropped() []string { return p.toDrop }

// layoutComp places the selected content below an optional horizontal
// toolbar, starting at (dx, dy) and adjusted by (dw, dh).
func (p *SingleRowPass) layoutComp(dx, dy, dw, dh int) (content, toolbar image.Rectangle) {
	size := p.gtx.Size
	if p.hToolbar == nil {
		return contentRect(p.gtx, Rect(dx, dy, size.X, size.Y), dw, dh), image.Rectangle{}
	}
	th := p.hToolbar.Size.Y
	content = contentRect(p.gtx, Rect(dx, th+dy, size.X, size.Y), dw, dh)
	toolbar = Rect(content.Min.X, content.Min.Y-th, content.Dx(), th)
	return content, toolbar
}

// TableRow is one visual row of a table pass.
type TableRow struct {
	Tabs  []string
	Width int
}

func (r *TableRow) add(id string, width int) {
	r.Tabs = append(r.Tabs, id)
	r.Width += width
}

// TablePass is produced by Table.
type TablePass struct {
	PassInfo

	gtx   Context
	toFit image.Rectangle

	rows  []*TableRow
	rowOf map[string]int

	invisible []string
	lengths   map[string]int

	requiredLength int
	// rowStart and scrollLength describe the window of the scrolling row.
	rowStart     int
	scrollLength int
}

func newTablePass(gtx Context, tabs []Tab, offset int) *TablePass {
	in := gtx.Insets
	return &TablePass{
		PassInfo: newPassInfo(tabs, offset),
		gtx:      gtx,
		toFit:    Rect(in.Left, in.Top, gtx.Size.X-in.Horizontal(), gtx.Size.Y-in.Vertical()),
		rowOf:    make(map[string]int, len(tabs)),
		lengths:  make(map[string]int, len(tabs)),
	}
}

func (p *TablePass) RowCount() int { return len(p.rows) }

// Rows returns the rows from top to bottom.
func (p *TablePass) Rows() []*TableRow { return p.rows }

// Row returns the index of the row holding a tab, or -1.
func (p *TablePass) Row(id string) int {
	if i, ok := p.rowOf[id]; ok {
		return i
	}
	return -1
}

// IsInSelectionRow reports whether a tab sits in the last row, the one
// adjacent to the content.
func (p *TablePass) IsInSelectionRow(id string) bool {
	i := p.Row(id)
	return i != -1 && i == len(p.rows)-1
}

// Length returns the width allocated to a tab.
func (p *TablePass) Length(id string) int { return p.lengths[id] }

func (p *TablePass) HeaderRect() image.Rectangle { return p.TabRect }

func (p *TablePass) RequiredLength() int { return p.requiredLength }

func (p *TablePass) ScrollExtent() int {
	actions := p.gtx.ActionsInsets
	switch {
	case !p.MoreRect.Empty():
		return p.MoreRect.Min.X - p.toFit.Min.X - actions.Left
	case len(p.rows) > 1 || p.EntryPointRect.Empty():
		return p.toFit.Dx()
	default:
		return p.EntryPointRect.Min.X - p.toFit.Min.X - actions.Left
	}
}

func (p *TablePass) ToLayout() []string {
	hidden := make(map[string]bool, len(p.invisible))
	for _, id := range p.invisible {
		hidden[id] = true
	}
	ids := make([]string, 0, len(p.Visible)-len(hidden))
	for _, t := range p.Visible {
		if !hidden[t.ID] {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

func (p *TablePass) Dropped() []string { return p.invisible }

func (p *TablePass) markInvisible(id string) {
	for _, v := range p.invisible {
		if v == id {
			return
		}
	}
	p.invisible = append(p.invisible, id)
}
