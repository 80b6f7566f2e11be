package layout

import (
	"image"
	"testing"
)

func scrollFixture() (*fixture, Context) {
	f := newFixture(50, 50, 50, 50, 50)
	gtx := f.ctx(100)
	gtx.MoreSize = image.Pt(20, 1)
	return f, gtx
}

func TestScrollableClampsOffset(t *testing.T) {
	f, gtx := scrollFixture()
	l := NewScrollable()
	l.Layout(gtx, f.tabs)

	// required 250, fit 100, more 20
	const limit = 170
	tests := []struct {
		delta int
		want  int
	}{
		{delta: 30, want: 30},
		{delta: 1000, want: limit},
		{delta: -40, want: limit - 40},
		{delta: -5000, want: 0},
		{delta: limit, want: limit},
	}
	for _, tt := range tests {
		l.Scroll(tt.delta)
		if got := l.ScrollOffset(); got != tt.want {
			t.Errorf("after Scroll(%d) offset = %d, want %d", tt.delta, got, tt.want)
		}
	}
}

func TestScrollableOffsetAlwaysInBounds(t *testing.T) {
	f, gtx := scrollFixture()
	l := NewScrollable()
	l.Layout(gtx, f.tabs)
	for _, delta := range []int{1, -1, 7, 250, -251, 1 << 20, -(1 << 20), 169, 2} {
		l.Scroll(delta)
		if off := l.ScrollOffset(); off < 0 || off > 170 {
			t.Fatalf("offset %d out of [0, 170] after Scroll(%d)", off, delta)
		}
	}
}

func TestScrollableForcesZeroWhenContentFits(t *testing.T) {
	f := newFixture(50, 50)
	l := NewScrollable()
	l.Layout(f.ctx(100), f.tabs)

	l.Scroll(40)
	if l.ScrollOffset() != 0 {
		t.Errorf("offset = %d, want 0 when everything fits", l.ScrollOffset())
	}
	if !l.Last().Info().MoreRect.Empty() {
		t.Error("more indicator shown although everything fits")
	}
}

func TestScrollableScrollsToSelection(t *testing.T) {
	f, gtx := scrollFixture()
	gtx.Selected = "t3"
	l := NewScrollable()

	p := l.Layout(gtx, f.tabs)

	if l.ScrollOffset() != 120 {
		t.Fatalf("offset = %d, want 120", l.ScrollOffset())
	}
	if p.Info().ScrollOffset != 120 {
		t.Errorf("pass offset = %d, want 120", p.Info().ScrollOffset)
	}
	sel := p.Info().Bounds("t3")
	if sel != Rect(30, 0, 50, 1) {
		t.Errorf("selected bounds = %v", sel)
	}
	if got := p.Info().MoreRect; got != image.Rect(80, 0, 100, 1) {
		t.Errorf("more rect = %v", got)
	}
	if !l.IsTabHidden("t0") || !l.IsTabHidden("t2") || !l.IsTabHidden("t4") {
		t.Error("t0, t2 and t4 should be hidden")
	}
	if l.IsTabHidden("t3") {
		t.Error("the selected tab should be visible")
	}

	gtx.Selected = "t0"
	p = l.Layout(gtx, f.tabs)
	if l.ScrollOffset() != 0 {
		t.Errorf("offset = %d, want 0 after selecting the first tab", l.ScrollOffset())
	}
	if got := p.Info().Bounds("t0"); got != Rect(0, 0, 50, 1) {
		t.Errorf("first tab = %v", got)
	}
}

func TestScrollableSelectionAlwaysVisible(t *testing.T) {
	for _, width := range []int{60, 80, 100, 140, 230} {
		f := newFixture(30, 45, 20, 50, 35, 40, 25)
		gtx := f.ctx(width)
		gtx.MoreSize = image.Pt(10, 1)
		l := NewScrollable()
		for _, tab := range f.tabs {
			gtx.Selected = tab.ID
			p := l.Layout(gtx, f.tabs).(*SingleRowPass)
			b := p.Bounds(tab.ID)
			if b.Min.X < 0 || b.Max.X > p.ToFitLength() || b.Dx() != tab.PreferredSize.X {
				t.Errorf("width %d: selected %s at %v, fit %d", width, tab.ID, b, p.ToFitLength())
			}
		}
	}
}

func TestScrollableKeepsOffsetWhileMouseOver(t *testing.T) {
	f, gtx := scrollFixture()
	gtx.Selected = "t4"
	gtx.MouseOverStrip = true
	l := NewScrollable()

	l.Layout(gtx, f.tabs)

	if l.ScrollOffset() != 0 {
		t.Errorf("offset = %d, want 0 while the pointer is over the strip", l.ScrollOffset())
	}
}

func TestScrollableClipsPartialTab(t *testing.T) {
	f := newFixture(50, 45, 50)
	gtx := f.ctx(100)
	gtx.MoreSize = image.Pt(20, 1)
	l := NewScrollable()

	p := l.Layout(gtx, f.tabs)

	if got := p.Info().Bounds("t1"); got != Rect(50, 0, 30, 1) {
		t.Errorf("clipped tab = %v, want width 30", got)
	}
	if !f.labels["t1"].centered {
		t.Error("clipped tab should center its text")
	}
	if !sameIDs(p.ToLayout(), []string{"t0", "t1"}) || !sameIDs(p.Dropped(), []string{"t2"}) {
		t.Errorf("to layout = %v dropped = %v", p.ToLayout(), p.Dropped())
	}
	if got := p.HeaderRect(); got != image.Rect(0, 0, 80, 1) {
		t.Errorf("header rect = %v", got)
	}
	if !l.IsTabHidden("t1") {
		t.Error("a tab clipped by 15 cells is hidden")
	}
}

func TestScrollableDeadzone(t *testing.T) {
	f := newFixture(50, 45, 50)
	gtx := f.ctx(100)
	gtx.MoreSize = image.Pt(10, 1)
	l := NewScrollable()

	l.Layout(gtx, f.tabs)

	// t1 is clipped to 40 of 45 cells, within the default deadzone
	if got := l.Last().Info().Bounds("t1"); got.Dx() != 40 {
		t.Fatalf("t1 width = %d, want 40", got.Dx())
	}
	if l.IsTabHidden("t1") {
		t.Error("a tab clipped within the deadzone is not hidden")
	}
	gtx.Deadzone = 2
	l.Layout(gtx, f.tabs)
	if !l.IsTabHidden("t1") {
		t.Error("with a 2 cell deadzone the clipped tab is hidden")
	}
}

func TestScrollableThreeTabsOverflow(t *testing.T) {
	f := newFixture(50, 50, 50)
	l := NewScrollable()

	p := l.Layout(f.ctx(100), f.tabs)

	if got := p.Info().Bounds("t0"); got != Rect(0, 0, 50, 1) {
		t.Errorf("t0 = %v", got)
	}
	if got := p.Info().Bounds("t1"); got != Rect(50, 0, 50, 1) {
		t.Errorf("t1 = %v", got)
	}
	if !l.IsTabHidden("t2") || !sameIDs(p.Dropped(), []string{"t2"}) {
		t.Errorf("t2 should overflow, dropped = %v", p.Dropped())
	}
	if got := p.Info().MoreRect.Min; got != image.Pt(100, 0) {
		t.Errorf("more indicator at %v, want the end of the row", got)
	}
}
