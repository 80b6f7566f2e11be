package layout

import (
	"image"
	"testing"
)

func TestSingleRowFitsAllTabs(t *testing.T) {
	f := newFixture(50, 50, 50)
	l := NewSingleRow()

	p := l.Layout(f.ctx(200), f.tabs)

	want := []image.Rectangle{Rect(0, 0, 50, 1), Rect(50, 0, 50, 1), Rect(100, 0, 50, 1)}
	for i, tab := range f.tabs {
		if got := p.Info().Bounds(tab.ID); got != want[i] {
			t.Errorf("bounds of %s = %v, want %v", tab.ID, got, want[i])
		}
		if got := f.labels[tab.ID].bounds; got != want[i] {
			t.Errorf("label of %s = %v, want %v", tab.ID, got, want[i])
		}
	}
	if len(p.Dropped()) != 0 {
		t.Errorf("dropped = %v, want none", p.Dropped())
	}
	if p.RequiredLength() != 150 {
		t.Errorf("required length = %d, want 150", p.RequiredLength())
	}
	if !p.Info().MoreRect.Empty() {
		t.Errorf("more rect = %v, want empty", p.Info().MoreRect)
	}
	if got := p.HeaderRect(); got != image.Rect(0, 0, 150, 1) {
		t.Errorf("header rect = %v", got)
	}
}

func TestSingleRowDropsOverflowingTabs(t *testing.T) {
	f := newFixture(50, 50, 50)
	gtx := f.ctx(120)
	gtx.MoreSize = image.Pt(10, 1)
	l := NewSingleRow()

	p := l.Layout(gtx, f.tabs)

	if !sameIDs(p.ToLayout(), []string{"t0", "t1"}) {
		t.Errorf("to layout = %v", p.ToLayout())
	}
	if !sameIDs(p.Dropped(), []string{"t2"}) {
		t.Errorf("dropped = %v", p.Dropped())
	}
	if got := p.Info().Bounds("t2"); got != (image.Rectangle{}) {
		t.Errorf("dropped tab bounds = %v, want zero", got)
	}
	if got := p.Info().MoreRect; got != image.Rect(110, 0, 120, 1) {
		t.Errorf("more rect = %v", got)
	}
	if !l.IsTabHidden("t2") || l.IsTabHidden("t0") {
		t.Error("only t2 should be hidden")
	}
}

func TestSingleRowWideTabNeverOverlapsMore(t *testing.T) {
	f := newFixture(100)
	gtx := f.ctx(40)
	gtx.MoreSize = image.Pt(10, 1)

	p := NewSingleRow().Layout(gtx, f.tabs)

	if !sameIDs(p.Dropped(), []string{"t0"}) {
		t.Fatalf("dropped = %v, want [t0]", p.Dropped())
	}
	if !p.HeaderRect().Empty() {
		t.Errorf("header rect = %v, want empty", p.HeaderRect())
	}
	if p.Info().MoreRect.Overlaps(p.Info().Bounds("t0")) {
		t.Error("tab overlaps the more indicator")
	}
}

func TestSingleRowPartitionsVisibleTabs(t *testing.T) {
	for _, width := range []int{0, 30, 75, 120, 400} {
		f := newFixture(40, 25, 60, 10, 35)
		gtx := f.ctx(width)
		gtx.MoreSize = image.Pt(8, 1)
		p := NewSingleRow().Layout(gtx, f.tabs)

		seen := make(map[string]int)
		for _, id := range p.ToLayout() {
			seen[id]++
		}
		for _, id := range p.Dropped() {
			seen[id]++
		}
		if len(seen) != len(f.tabs) {
			t.Errorf("width %d: partition covers %d tabs, want %d", width, len(seen), len(f.tabs))
		}
		for id, n := range seen {
			if n != 1 {
				t.Errorf("width %d: %s appears %d times", width, id, n)
			}
		}
	}
}

func TestSingleRowZeroTabs(t *testing.T) {
	gtx := newFixture().ctx(200)
	gtx.TitleSize = image.Pt(10, 1)
	gtx.EntryPointSize = image.Pt(5, 1)

	p := NewSingleRow().Layout(gtx, nil)

	if p.RequiredLength() != 0 || len(p.Dropped()) != 0 {
		t.Errorf("required = %d dropped = %v", p.RequiredLength(), p.Dropped())
	}
	if got := p.Info().TitleRect; got != image.Rect(0, 0, 10, 1) {
		t.Errorf("title rect = %v", got)
	}
	if got := p.Info().EntryPointRect; got != image.Rect(195, 0, 200, 1) {
		t.Errorf("entry point rect = %v", got)
	}
}

func TestSingleRowReusesCachedPass(t *testing.T) {
	f := newFixture(50, 50)
	gtx := f.ctx(200)
	gtx.Selected = "t1"
	l := NewSingleRow()

	first := l.Layout(gtx, f.tabs)
	if second := l.Layout(gtx, f.tabs); second != first {
		t.Fatal("expected the cached pass when nothing changed")
	}

	tests := []struct {
		name   string
		mutate func(gtx *Context)
	}{
		{"forced", func(gtx *Context) { gtx.Force = true }},
		{"resized", func(gtx *Context) { gtx.Size = image.Pt(180, 20) }},
		{"invalid label", func(*Context) { f.labels["t0"].invalid = true }},
		{"selected label collapsed", func(*Context) { f.labels["t1"].bounds = image.Rectangle{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cached := l.Layout(gtx, f.tabs)
			next := gtx
			tt.mutate(&next)
			if got := l.Layout(next, f.tabs); got == cached {
				t.Error("expected a fresh pass")
			}
			f.labels["t0"].invalid = false
			l.Layout(Context{Force: true, Size: gtx.Size, HeaderHeight: 1, Labels: f.lookup, Selected: "t1"}, f.tabs)
		})
	}
}

func TestSingleRowCachedPassFollowsSelectionAndToolbar(t *testing.T) {
	f := newFixture(50, 50)
	gtx := f.ctx(200)
	gtx.Selected = "t1"
	l := NewSingleRow()
	first := l.Layout(gtx, f.tabs)

	gtx.Selected = "t0"
	p := l.Layout(gtx, f.tabs)
	if p != first {
		t.Fatal("a selection change alone keeps the cached tab geometry")
	}
	if got := p.Info().ContentRect; got != image.Rect(0, 1, 200, 20) {
		t.Errorf("content = %v", got)
	}

	gtx.Toolbar = &Toolbar{Size: image.Pt(40, 2), Horizontal: true}
	p = l.Layout(gtx, f.tabs)
	if p == first {
		t.Fatal("a new toolbar needs a fresh pass")
	}
	if got := p.Info().ToolbarRect; got != image.Rect(0, 1, 200, 3) {
		t.Errorf("toolbar = %v", got)
	}
	if got := p.Info().ContentRect; got != image.Rect(0, 3, 200, 20) {
		t.Errorf("content = %v", got)
	}
}

func TestSingleRowRecomputesWithoutSelection(t *testing.T) {
	f := newFixture(50)
	l := NewSingleRow()
	first := l.Layout(f.ctx(100), f.tabs)
	if second := l.Layout(f.ctx(100), f.tabs); second == first {
		t.Error("without a selected tab every call should recompute")
	}
}

func TestSingleRowTabCountChange(t *testing.T) {
	f := newFixture(50, 50)
	gtx := f.ctx(200)
	gtx.Selected = "t0"
	l := NewSingleRow()
	first := l.Layout(gtx, f.tabs)
	if got := l.Layout(gtx, f.tabs[:1]); got == first {
		t.Error("a different tab count must invalidate the cache")
	}
}

func TestSingleRowWithoutLabels(t *testing.T) {
	f := newFixture(30, 30)
	gtx := f.ctx(100)
	gtx.Labels = nil

	p := NewSingleRow().Layout(gtx, f.tabs)

	if got := p.Info().Bounds("t1"); got != Rect(30, 0, 30, 1) {
		t.Errorf("bounds = %v", got)
	}
}

func TestSingleRowHideTabs(t *testing.T) {
	f := newFixture(30, 30)
	gtx := f.ctx(100)
	gtx.HideTabs = true
	gtx.Selected = "t0"

	p := NewSingleRow().Layout(gtx, f.tabs)

	if len(p.ToLayout()) != 0 || len(p.Dropped()) != 2 {
		t.Errorf("to layout = %v dropped = %v", p.ToLayout(), p.Dropped())
	}
	if got := p.Info().ContentRect; got != image.Rect(0, 0, 100, 20) {
		t.Errorf("content rect = %v", got)
	}
}

func TestSingleRowFirstTabOffsetAndInsets(t *testing.T) {
	f := newFixture(20, 20)
	gtx := f.ctx(100)
	gtx.FirstTabOffset = 3
	gtx.Insets = Insets{Left: 2}
	gtx.TitleSize = image.Pt(5, 1)

	p := NewSingleRow().Layout(gtx, f.tabs)

	if got := p.Info().Bounds("t0"); got != Rect(10, 0, 20, 1) {
		t.Errorf("first tab = %v, want it after insets, offset and title", got)
	}
}

func TestSingleRowGapAndMinWidth(t *testing.T) {
	f := newFixture(5, 30)
	gtx := f.ctx(100)
	gtx.HGap = 2
	gtx.MinTabWidth = 10

	p := NewSingleRow().Layout(gtx, f.tabs)

	if got := p.Info().Bounds("t0"); got != Rect(0, 0, 10, 1) {
		t.Errorf("t0 = %v", got)
	}
	if got := p.Info().Bounds("t1"); got != Rect(12, 0, 30, 1) {
		t.Errorf("t1 = %v", got)
	}
	if p.RequiredLength() != 44 {
		t.Errorf("required length = %d, want 44", p.RequiredLength())
	}
}

func TestSingleRowOrientation(t *testing.T) {
	f := newFixture(30)
	gtx := f.ctx(100)
	gtx.Selected = "t0"

	top := NewSingleRow().Layout(gtx, f.tabs)
	if got := top.Info().Bounds("t0"); got != Rect(0, 0, 30, 1) {
		t.Errorf("top tab = %v", got)
	}
	if got := top.Info().ContentRect; got != image.Rect(0, 1, 100, 20) {
		t.Errorf("top content = %v", got)
	}

	gtx.Orientation = Bottom
	bottom := NewSingleRow().Layout(gtx, f.tabs)
	if got := bottom.Info().Bounds("t0"); got != Rect(0, 19, 30, 1) {
		t.Errorf("bottom tab = %v", got)
	}
	if got := bottom.Info().ContentRect; got != image.Rect(0, 0, 100, 19) {
		t.Errorf("bottom content = %v", got)
	}
}

func TestSingleRowHorizontalToolbar(t *testing.T) {
	f := newFixture(30)
	gtx := f.ctx(100)
	gtx.Selected = "t0"
	gtx.Toolbar = &Toolbar{Size: image.Pt(40, 2), MinWidth: 10, Horizontal: true}

	p := NewSingleRow().Layout(gtx, f.tabs).(*SingleRowPass)

	if p.ToFitLength() != 90 {
		t.Errorf("to fit length = %d, want 90", p.ToFitLength())
	}
	if got := p.ToolbarRect; got != image.Rect(0, 1, 100, 3) {
		t.Errorf("toolbar = %v", got)
	}
	if got := p.ContentRect; got != image.Rect(0, 3, 100, 20) {
		t.Errorf("content = %v", got)
	}
}

func TestSingleRowDragOut(t *testing.T) {
	f := newFixture(30)
	gtx := f.ctx(100)
	gtx.DragOutMultiplier = 2
	l := NewSingleRow()
	if l.IsDragOut("t0", 0, 100) {
		t.Error("no pass yet, nothing can be dragged out")
	}
	l.Layout(gtx, f.tabs)

	if l.IsDragOut("t0", 50, 2) {
		t.Error("horizontal moves stay inside a horizontal strip")
	}
	if !l.IsDragOut("t0", 0, 3) {
		t.Error("a drag beyond twice the label height is out")
	}
}
