package layout

// Scrollable is a single row that scrolls instead of dropping tabs. The
// offset survives between passes and is clamped after every change.
type Scrollable struct {
	singleRow
	scrollOffset int
}

// NewScrollable returns a scrollable single-row layout.
func NewScrollable() *Scrollable {
	l := &Scrollable{}
	l.policy = l
	return l
}

// Layout always recomputes: the auto-scroll step depends on the selection
// and on the pointer, neither of which is part of the cache key.
func (l *Scrollable) Layout(gtx Context, tabs []Tab) Pass {
	return l.layout(gtx, tabs)
}

func (l *Scrollable) offset() int { return l.scrollOffset }

func (l *Scrollable) shouldRelayout(Context, []Tab) bool { return true }

func (l *Scrollable) recompute(p *SingleRowPass, s Strategy) {
	calculateRequiredLength(p, s)
	l.clamp(p)
	l.scrollToSelected(p, s)
	l.clamp(p)
}

// Scroll moves the offset by units and clamps it against the last pass.
func (l *Scrollable) Scroll(units int) {
	l.scrollOffset += units
	l.clamp(l.last)
}

func (l *Scrollable) ScrollOffset() int { return l.scrollOffset }

func (l *Scrollable) clamp(p *SingleRowPass) {
	if p == nil {
		return
	}
	if p.requiredLength <= p.toFitLength {
		l.scrollOffset = 0
		return
	}
	limit := p.requiredLength - p.toFitLength + p.moreReserve()
	l.scrollOffset = max(0, min(l.scrollOffset, limit))
}

// scrollToSelected moves the offset so the selected tab is fully visible.
// The leading edge wins when the tab is longer than the visible length.
func (l *Scrollable) scrollToSelected(p *SingleRowPass, s Strategy) {
	gtx := p.gtx
	if gtx.MouseOverStrip || gtx.Selected == "" {
		return
	}

	offset := -l.scrollOffset
	for _, t := range p.Visible {
		length := requiredLength(p, s, t)
		if t.ID != gtx.Selected {
			offset += length
			continue
		}

		if offset < 0 {
			l.scrollOffset += offset
			return
		}
		maxLength := p.toFitLength - p.moreReserve()
		if offset+length > maxLength {
			if length < maxLength {
				l.scrollOffset += offset + length - maxLength
			} else {
				l.scrollOffset += offset
			}
		}
		return
	}
}

func (l *Scrollable) applyTab(p *SingleRowPass, s Strategy, t Tab, length int) bool {
	if p.requiredLength > p.toFitLength {
		limit := p.toFitLength - p.moreReserve()
		if p.used()+length > limit {
			clipped := limit - p.used()
			if s.DrawPartialOverflowTabs() && clipped > 0 {
				p.placeTab(s, t.ID, clipped, true)
			} else {
				p.drop(t.ID)
			}
			return false
		}
	}
	p.placeTab(s, t.ID, length, s.CenterTextWhenStretched())
	return true
}

func (l *Scrollable) layoutMore(p *SingleRowPass, s Strategy) {
	if p.requiredLength > p.toFitLength {
		p.MoreRect = s.MoreRect(p)
	}
}

func (l *Scrollable) lastVisible(p *SingleRowPass) string {
	for i := len(p.toLayout) - 1; i >= 0; i-- {
		if id := p.toLayout[i]; !p.Bounds(id).Empty() {
			return id
		}
	}
	return ""
}

// IsTabHidden reports whether a tab is scrolled away or clipped by more than
// the deadzone.
func (l *Scrollable) IsTabHidden(id string) bool {
	if l.last == nil {
		return false
	}
	t, ok := l.last.tab(id)
	if !ok {
		return false
	}
	s := StrategyFor(l.last.gtx.Orientation)
	b := l.last.Bounds(id)
	dz := l.last.gtx.deadzone()
	return s.MinPosition(b) < -dz ||
		b.Dx() < t.PreferredSize.X-dz ||
		b.Dy() < t.PreferredSize.Y-dz
}

func (l *Scrollable) IsDragOut(id string, dx, dy int) bool {
	return l.singleRow.isDragOut(id, dx, dy)
}

func (l *Scrollable) Last() Pass {
	if l.last == nil {
		return nil
	}
	return l.last
}

func (l *Scrollable) CanScroll() bool { return true }
