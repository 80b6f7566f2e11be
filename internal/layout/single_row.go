package layout

import "image"

// rowPolicy is what SingleRow and Scrollable do differently.
type rowPolicy interface {
	offset() int
	shouldRelayout(gtx Context, tabs []Tab) bool
	recompute(p *SingleRowPass, s Strategy)
	applyTab(p *SingleRowPass, s Strategy, t Tab, length int) bool
	layoutMore(p *SingleRowPass, s Strategy)
	lastVisible(p *SingleRowPass) string
}

// singleRow lays every tab out along one line.
type singleRow struct {
	last   *SingleRowPass
	policy rowPolicy
}

func (l *singleRow) layout(gtx Context, tabs []Tab) *SingleRowPass {
	if l.last != nil && !l.policy.shouldRelayout(gtx, tabs) {
		return l.reuse(gtx)
	}

	s := StrategyFor(gtx.Orientation)
	p := newSingleRowPass(gtx, s, tabs, l.policy.offset())
	l.prepare(p, s)

	if gtx.HideTabs {
		for _, t := range p.Visible {
			p.drop(t.ID)
		}
	} else {
		l.policy.recompute(p, s)
		p.ScrollOffset = l.policy.offset()
		p.position = s.StartPosition(p) - p.ScrollOffset

		p.TitleRect = s.TitleRect(p)
		p.position += p.TitleRect.Dx()
		p.start = s.StartPosition(p) + p.TitleRect.Dx()

		l.layoutLabels(p, s)
		p.EntryPointRect = s.EntryPointRect(p)
		l.policy.layoutMore(p, s)
	}

	if gtx.Selected != "" {
		p.ContentRect, p.ToolbarRect = s.ContentRect(p)
	}

	if len(p.toLayout) > 0 {
		first := p.Bounds(p.toLayout[0])
		if id := l.policy.lastVisible(p); id != "" {
			last := p.Bounds(id)
			p.TabRect = image.Rectangle{Min: first.Min, Max: last.Max}
		}
	}

	l.last = p
	return p
}

// reuse keeps the cached tab geometry and lays out the content of the
// current selection again.
func (l *singleRow) reuse(gtx Context) *SingleRowPass {
	p := l.last
	p.gtx.Selected = gtx.Selected
	p.gtx.Labels = gtx.Labels
	p.ContentRect, p.ToolbarRect = image.Rectangle{}, image.Rectangle{}
	if gtx.Selected != "" {
		p.ContentRect, p.ToolbarRect = StrategyFor(p.gtx.Orientation).ContentRect(p)
	}
	return p
}

func (l *singleRow) prepare(p *SingleRowPass, s Strategy) {
	gtx := p.gtx
	p.insets = gtx.Insets
	p.insets.Left += gtx.FirstTabOffset
	p.hToolbar = horizontalToolbar(gtx)
	p.toFitLength = s.ToFitLength(p)
}

// horizontalToolbar returns a copy of the selected tab's toolbar when it sits
// above the content.
func horizontalToolbar(gtx Context) *Toolbar {
	tb := gtx.toolbar()
	if tb == nil || !tb.Horizontal {
		return nil
	}
	c := *tb
	return &c
}

func sameToolbar(a, b *Toolbar) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (l *singleRow) layoutLabels(p *SingleRowPass, s Strategy) {
	stopped := false
	for _, t := range p.Visible {
		if stopped {
			p.drop(t.ID)
			continue
		}
		length := s.LengthIncrement(p, t.PreferredSize)
		if !l.policy.applyTab(p, s, t, length) {
			stopped = true
			continue
		}
		p.position = s.MaxPosition(p.Bounds(t.ID)) + p.gtx.HGap
	}

	dropped := make(map[string]bool, len(p.toDrop))
	for _, id := range p.toDrop {
		dropped[id] = true
	}
	kept := p.toLayout[:0]
	for _, id := range p.toLayout {
		if !dropped[id] {
			kept = append(kept, id)
		}
	}
	p.toLayout = kept
}

// calculateRequiredLength sums the length of every tab and schedules all of
// them for layout.
func calculateRequiredLength(p *SingleRowPass, s Strategy) {
	for _, t := range p.Visible {
		p.requiredLength += requiredLength(p, s, t)
		p.toLayout = append(p.toLayout, t.ID)
	}
	p.requiredLength += s.AdditionalLength()
}

func requiredLength(p *SingleRowPass, s Strategy, t Tab) int {
	return s.LengthIncrement(p, t.PreferredSize) + p.gtx.HGap
}

func (p *SingleRowPass) drop(id string) {
	p.place(p.gtx, id, image.Rectangle{})
	p.toDrop = append(p.toDrop, id)
}

// moreReserve is the main-axis length kept free for the more indicator.
func (p *SingleRowPass) moreReserve() int {
	reserve := p.moreAxisSize
	if p.entryPointAxisSize == 0 {
		reserve += p.gtx.ActionsInsets.Horizontal()
	}
	return reserve
}

// used is the main-axis length consumed so far, relative to the first tab.
func (p *SingleRowPass) used() int {
	return p.position - p.start
}

func (p *SingleRowPass) placeTab(s Strategy, id string, length int, centered bool) {
	p.place(p.gtx, id, s.LayoutRect(p, p.position, length))
	p.gtx.setCentered(id, centered)
}

// SingleRow places tabs on one line and drops the ones that do not fit.
// Results are cached while nothing relevant changes.
type SingleRow struct {
	singleRow
}

// NewSingleRow returns a single-row layout.
func NewSingleRow() *SingleRow {
	l := &SingleRow{}
	l.policy = l
	return l
}

// Layout computes a pass, or reuses the previous tab geometry when the tab
// count, viewport, offset and toolbar are unchanged, every label is valid and
// the selected label already has a width. The content region is laid out for
// the current selection either way.
func (l *SingleRow) Layout(gtx Context, tabs []Tab) Pass {
	return l.layout(gtx, tabs)
}

func (l *SingleRow) offset() int { return 0 }

func (l *SingleRow) shouldRelayout(gtx Context, tabs []Tab) bool {
	last := l.last
	switch {
	case gtx.Force, last == nil:
		return true
	case last.contentCount != len(tabs):
		return true
	case last.layoutSize != gtx.Size:
		return true
	case last.ScrollOffset != l.offset():
		return true
	case last.gtx.Orientation != gtx.Orientation:
		return true
	case !sameToolbar(last.hToolbar, horizontalToolbar(gtx)):
		return true
	}

	relayout := true
	for _, t := range tabs {
		label := gtx.label(t.ID)
		if label == nil {
			continue
		}
		if !label.Valid() {
			return true
		}
		if t.ID == gtx.Selected && label.Bounds().Dx() != 0 {
			relayout = false
		}
	}
	return relayout
}

func (l *SingleRow) recompute(p *SingleRowPass, s Strategy) {
	calculateRequiredLength(p, s)
}

func (l *SingleRow) applyTab(p *SingleRowPass, s Strategy, t Tab, length int) bool {
	limit := p.toFitLength
	if p.requiredLength > p.toFitLength {
		limit -= p.moreReserve()
	}
	if p.used()+length > limit {
		p.drop(t.ID)
		return false
	}
	p.placeTab(s, t.ID, length, s.CenterTextWhenStretched())
	return true
}

func (l *SingleRow) layoutMore(p *SingleRowPass, s Strategy) {
	if len(p.toDrop) > 0 {
		p.MoreRect = s.MoreRect(p)
	}
}

func (l *SingleRow) lastVisible(p *SingleRowPass) string {
	return p.toLayout[len(p.toLayout)-1]
}

// Scroll does nothing; a single row without scrolling has no offset.
func (l *SingleRow) Scroll(int) {}

func (l *SingleRow) ScrollOffset() int { return 0 }

// IsTabHidden reports whether the last pass dropped the tab.
func (l *SingleRow) IsTabHidden(id string) bool {
	if l.last == nil {
		return false
	}
	for _, d := range l.last.toDrop {
		if d == id {
			return true
		}
	}
	return false
}

func (l *SingleRow) IsDragOut(id string, dx, dy int) bool {
	return l.singleRow.isDragOut(id, dx, dy)
}

func (l *SingleRow) Last() Pass {
	if l.last == nil {
		return nil
	}
	return l.last
}

func (l *SingleRow) CanScroll() bool { return false }

func (l *singleRow) isDragOut(id string, dx, dy int) bool {
	if l.last == nil {
		return false
	}
	gtx := l.last.gtx
	return StrategyFor(gtx.Orientation).IsDragOut(l.last.Bounds(id), dx, dy, gtx.dragOutMultiplier())
}
