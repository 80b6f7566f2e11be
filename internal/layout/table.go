package layout

import (
	"image"
	"math"
	"slices"
)

// Table lays tabs out in rows. Tabs wrap to a new row when the current one
// is full, unless the context asks for a single row, in which case the row
// scrolls and the tabs past its end are clipped and reported invisible.
// Pinned tabs get a row of their own when PinnedSeparate is set.
//
// Table always places its rows at the top of the viewport. A single-row
// table scrolls to the selected tab on every pass unless the mouse is over
// the strip, whether or not pinned tabs have a row of their own.
type Table struct {
	scrollOffset int
	last         *TablePass
}

// NewTable returns a table layout.
func NewTable() *Table {
	return &Table{}
}

func (l *Table) Layout(gtx Context, tabs []Tab) Pass {
	p := l.compute(gtx, tabs)

	var united image.Rectangle
	for _, t := range p.Visible {
		united = united.Union(p.Bounds(t.ID))
	}
	if gtx.Selected != "" {
		p.ContentRect, p.ToolbarRect = l.layoutContent(p, united)
	}
	p.TabRect = united

	l.last = p
	return p
}

func (l *Table) compute(gtx Context, tabs []Tab) *TablePass {
	p := newTablePass(gtx, tabs, l.scrollOffset)
	if gtx.HideTabs {
		for _, t := range p.Visible {
			p.place(gtx, t.ID, image.Rectangle{})
			p.markInvisible(t.ID)
		}
		return p
	}

	scrollable := gtx.SingleRow
	fit := p.toFit
	h := gtx.HeaderHeight
	actions := gtx.ActionsInsets

	entryX := fit.Max.X - gtx.EntryPointSize.X - actions.Right
	p.TitleRect = Rect(fit.Min.X, fit.Min.Y, gtx.TitleSize.X, h)
	p.EntryPointRect = Rect(entryX, fit.Min.Y, gtx.EntryPointSize.X, h)
	p.MoreRect = Rect(entryX, fit.Min.Y, 0, h)

	var pinned, unpinned []Tab
	for _, t := range p.Visible {
		if gtx.PinnedSeparate && t.Pinned {
			pinned = append(pinned, t)
		} else {
			unpinned = append(unpinned, t)
		}
	}
	pinnedRow := len(pinned) > 0

	// The first row shares the header with the title and the entry point;
	// the rows below span the whole width.
	firstStart := p.TitleRect.Max.X
	firstEnd := entryX - actions.Left
	rowStart, rowEnd := firstStart, firstEnd
	if pinnedRow {
		rowStart, rowEnd = fit.Min.X, fit.Max.X
	}

	if pinnedRow {
		l.calculateCompressibleLengths(p, pinned, firstEnd-firstStart)
	}
	l.calculateLengths(p, unpinned, rowEnd-rowStart)
	if scrollable && p.totalLength(unpinned) > rowEnd-rowStart {
		moreW := gtx.MoreSize.X
		if pinnedRow {
			p.MoreRect = Rect(fit.Max.X-moreW-actions.Right, fit.Min.Y+h, moreW, h)
		} else {
			p.MoreRect = Rect(entryX-moreW, fit.Min.Y, moreW, h)
		}
		rowEnd = p.MoreRect.Min.X - actions.Left
		l.calculateLengths(p, unpinned, rowEnd-rowStart)
	}
	p.rowStart = rowStart
	p.scrollLength = max(rowEnd-rowStart, 0)
	p.requiredLength = p.totalLength(unpinned)

	if scrollable {
		l.clamp(p)
		l.scrollToSelected(p, unpinned)
		l.clamp(p)
	} else {
		l.scrollOffset = 0
	}
	p.ScrollOffset = l.scrollOffset

	x, y := firstStart, fit.Min.Y
	for _, t := range pinned {
		w := p.lengths[t.ID]
		p.place(gtx, t.ID, Rect(x, y, w, h))
		x += w
	}

	start, end := rowStart, rowEnd
	if pinnedRow {
		y += h
	}
	x = start
	offset := p.ScrollOffset
	for _, t := range unpinned {
		w := p.lengths[t.ID]
		if !scrollable && x > start && x+w > end {
			y += h
			start, end = fit.Min.X, fit.Max.X
			x = start
		}
		drawn := w
		if scrollable && x-offset+w > end {
			drawn = max(0, end-x+offset)
			p.markInvisible(t.ID)
		}
		r := Rect(x-offset, y, drawn, h)
		p.place(gtx, t.ID, r)
		if scrollable && (r.Min.X < start || r.Dx() < w) {
			p.markInvisible(t.ID)
		}
		x += w
	}

	if len(p.invisible) == 0 {
		p.MoreRect = image.Rectangle{}
	}

	l.groupRows(p)
	return p
}

// groupRows collects the tabs sharing a vertical position into rows, top to
// bottom, keeping the visible order inside each row.
func (l *Table) groupRows(p *TablePass) {
	byY := make(map[int]*TableRow)
	var ys []int
	for _, t := range p.Visible {
		b := p.Bounds(t.ID)
		row, ok := byY[b.Min.Y]
		if !ok {
			row = &TableRow{}
			byY[b.Min.Y] = row
			ys = append(ys, b.Min.Y)
		}
		row.add(t.ID, b.Dx())
	}
	slices.Sort(ys)
	for i, y := range ys {
		row := byY[y]
		p.rows = append(p.rows, row)
		for _, id := range row.Tabs {
			p.rowOf[id] = i
		}
	}
}

func (l *Table) calculateLengths(p *TablePass, tabs []Tab, toFit int) {
	if p.gtx.Compressible {
		l.calculateCompressibleLengths(p, tabs, toFit)
		return
	}
	l.calculateRawLengths(p, tabs)
}

// calculateRawLengths gives every tab its preferred width plus the gap.
func (l *Table) calculateRawLengths(p *TablePass, tabs []Tab) {
	for _, t := range tabs {
		p.lengths[t.ID] = max(p.gtx.MinTabWidth, t.PreferredSize.X+p.gtx.HGap)
	}
}

// calculateCompressibleLengths shrinks the tabs proportionally when their
// widths exceed toFit. Tabs whose share falls below the minimum width are
// held at the minimum and the rest of toFit is split among the others, until
// no further tab hits the floor. The last free tab takes whatever is left so
// the row adds up to toFit exactly whenever every tab can have its minimum.
func (l *Table) calculateCompressibleLengths(p *TablePass, tabs []Tab, toFit int) {
	if len(tabs) == 0 {
		return
	}
	minW := p.gtx.MinTabWidth

	demand := make([]int, len(tabs))
	estimation := 0
	for i, t := range tabs {
		demand[i] = max(minW, t.PreferredSize.X+p.gtx.HGap)
		estimation += demand[i]
	}
	if estimation <= toFit {
		for i, t := range tabs {
			p.lengths[t.ID] = demand[i]
		}
		return
	}

	floored := make([]bool, len(tabs))
	rest, free := toFit, estimation
	for changed := true; changed && free > 0; {
		changed = false
		for i := range tabs {
			if floored[i] || demand[i]*rest/free >= minW {
				continue
			}
			floored[i] = true
			changed = true
		}
		rest, free = toFit, 0
		for i := range tabs {
			if floored[i] {
				rest -= minW
			} else {
				free += demand[i]
			}
		}
	}

	last := -1
	for i := range tabs {
		if !floored[i] {
			last = i
		}
	}
	spent := 0
	for i, t := range tabs {
		length := minW
		switch {
		case floored[i] || free == 0:
		case i == last:
			length = max(minW, rest-spent)
		default:
			length = max(minW, demand[i]*rest/free)
			spent += length
		}
		p.lengths[t.ID] = length
	}
}

func (p *TablePass) totalLength(tabs []Tab) int {
	total := 0
	for _, t := range tabs {
		total += p.lengths[t.ID]
	}
	return total
}

// Scroll moves the offset of a single-row table. Multi-row tables do not
// scroll.
func (l *Table) Scroll(units int) {
	if l.last == nil || !l.last.gtx.SingleRow {
		l.scrollOffset = 0
		return
	}
	l.scrollOffset += units
	l.clamp(l.last)
}

func (l *Table) ScrollOffset() int { return l.scrollOffset }

func (l *Table) clamp(p *TablePass) {
	if p == nil {
		return
	}
	if p.requiredLength <= p.scrollLength {
		l.scrollOffset = 0
		return
	}
	l.scrollOffset = max(0, min(l.scrollOffset, p.requiredLength-p.scrollLength))
}

func (l *Table) scrollToSelected(p *TablePass, tabs []Tab) {
	gtx := p.gtx
	if gtx.MouseOverStrip || gtx.Selected == "" || len(p.lengths) == 0 {
		return
	}

	offset := -l.scrollOffset
	for _, t := range tabs {
		length := p.lengths[t.ID]
		if t.ID != gtx.Selected {
			offset += length
			continue
		}
		if offset < 0 {
			l.scrollOffset += offset
		} else if offset+length > p.scrollLength {
			// the leading edge stays visible
			if length < p.scrollLength {
				l.scrollOffset += offset + length - p.scrollLength
			} else {
				l.scrollOffset += offset
			}
		}
		return
	}
}

// layoutContent places the selected content below the tab rows, with the
// selected toolbar above it or beside it.
func (l *Table) layoutContent(p *TablePass, united image.Rectangle) (content, toolbar image.Rectangle) {
	gtx := p.gtx
	size := gtx.Size
	y := gtx.Insets.Top
	if !united.Empty() {
		y = united.Max.Y
	}
	y -= gtx.Insets.Top

	tb := gtx.toolbar()
	switch {
	case tb == nil:
		content = contentRect(gtx, Rect(0, y, size.X, size.Y), 0, 0)
	case tb.Horizontal:
		th := tb.Size.Y
		content = contentRect(gtx, Rect(0, y+th, size.X, size.Y), 0, 0)
		toolbar = Rect(content.Min.X, content.Min.Y-th, content.Dx(), th)
	default:
		tw := tb.Size.X
		sep := 0
		if tw > 0 {
			sep = gtx.SeparatorWidth
		}
		if gtx.SideComponentBefore {
			content = contentRect(gtx, Rect(tw+sep, y, size.X, size.Y), 0, 0)
			toolbar = Rect(content.Min.X-tw-sep, content.Min.Y, tw, content.Dy())
		} else {
			content = contentRect(gtx, Rect(0, y, size.X-tw-sep, size.Y), 0, 0)
			toolbar = Rect(content.Max.X+sep, content.Min.Y, tw, content.Dy())
		}
	}
	return content, toolbar
}

// IsTabHidden reports whether a tab lies left of the viewport or is narrower
// than its preferred width by more than the deadzone.
func (l *Table) IsTabHidden(id string) bool {
	if l.last == nil {
		return false
	}
	t, ok := l.last.tab(id)
	if !ok {
		return false
	}
	b := l.last.Bounds(id)
	dz := l.last.gtx.deadzone()
	return b.Min.X < -dz || b.Dx() < t.PreferredSize.X-dz
}

// IsDragOut reports whether a vertical drag left the rows of the strip.
func (l *Table) IsDragOut(id string, dx, dy int) bool {
	if l.last == nil {
		return false
	}
	p := l.last
	label := p.Bounds(id)
	if _, ok := p.tab(id); !ok {
		return false
	}
	area := Rect(0, 0, p.toFit.Dx(), label.Dy())
	for _, t := range p.Visible {
		area = area.Union(p.Bounds(t.ID))
	}
	return math.Abs(float64(dy)) > float64(area.Dy())*p.gtx.dragOutMultiplier()
}

func (l *Table) Last() Pass {
	if l.last == nil {
		return nil
	}
	return l.last
}

func (l *Table) CanScroll() bool {
	return l.last != nil && l.last.gtx.SingleRow
}
