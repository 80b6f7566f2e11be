package strip

import (
	"errors"
	"fmt"
	"image"
	"sync"
	"testing"

	"github.com/hy4ri/tabstrip/internal/layout"
)

// newStrip returns a 20x5 strip holding tabs "aaaa", "bbbb", ... each six
// cells wide once padded.
func newStrip(t *testing.T, mode layout.Mode, n int) (*Strip, []string) {
	t.Helper()
	s := New(Options{Mode: mode, Padding: 1})
	s.SetSize(20, 5)
	var ids []string
	for i := 0; i < n; i++ {
		c := string(rune('a' + i))
		ids = append(ids, s.Add(c+c+c+c, false))
	}
	return s, ids
}

func TestAddSelectsFirstTab(t *testing.T) {
	s, ids := newStrip(t, layout.ModeSingleRow, 3)
	if got := s.Selected(); got != ids[0] {
		t.Errorf("selected = %s, want the first tab", got)
	}
	if len(ids[0]) != 36 || ids[0] == ids[1] {
		t.Errorf("ids should be distinct UUIDs, got %q and %q", ids[0], ids[1])
	}
}

func TestCloseMovesSelection(t *testing.T) {
	s, ids := newStrip(t, layout.ModeSingleRow, 3)
	if err := s.Select(ids[1]); err != nil {
		t.Fatal(err)
	}

	if err := s.Close(ids[1]); err != nil {
		t.Fatal(err)
	}
	if got := s.Selected(); got != ids[2] {
		t.Errorf("after closing the middle tab selected = %s, want its right neighbour", got)
	}

	if err := s.Close(ids[2]); err != nil {
		t.Fatal(err)
	}
	if got := s.Selected(); got != ids[0] {
		t.Errorf("after closing the last tab selected = %s, want %s", got, ids[0])
	}

	if err := s.Close(ids[0]); err != nil {
		t.Fatal(err)
	}
	if s.Selected() != "" {
		t.Error("an empty strip has no selection")
	}
}

func TestUnknownTab(t *testing.T) {
	s, _ := newStrip(t, layout.ModeSingleRow, 1)
	ops := map[string]func() error{
		"close":  func() error { return s.Close("missing") },
		"select": func() error { return s.Select("missing") },
		"rename": func() error { return s.Rename("missing", "x") },
		"pin":    func() error { return s.TogglePin("missing") },
		"move":   func() error { return s.Move("missing", 1) },
	}
	for name, op := range ops {
		if err := op(); !errors.Is(err, ErrNotFound) {
			t.Errorf("%s: err = %v, want ErrNotFound", name, err)
		}
	}
}

func TestPinnedTabsComeFirst(t *testing.T) {
	s, ids := newStrip(t, layout.ModeSingleRow, 3)

	if err := s.TogglePin(ids[2]); err != nil {
		t.Fatal(err)
	}
	items := s.Items()
	if items[0].ID != ids[2] || !items[0].Pinned {
		t.Fatalf("pinned tab at %v", items)
	}
	if items[0].Text() != PinMarker+"cccc" {
		t.Errorf("text = %q", items[0].Text())
	}

	// unpinned tabs cannot be moved in front of pinned ones
	if err := s.Move(ids[0], -1); err != nil {
		t.Fatal(err)
	}
	if s.Items()[0].ID != ids[2] {
		t.Error("move crossed the pinned boundary")
	}
	if err := s.Move(ids[0], 1); err != nil {
		t.Fatal(err)
	}
	if got := s.Items(); got[1].ID != ids[1] || got[2].ID != ids[0] {
		t.Errorf("order after move = %v", got)
	}
}

func TestCycleWraps(t *testing.T) {
	s, ids := newStrip(t, layout.ModeSingleRow, 3)
	s.Cycle(-1)
	if s.Selected() != ids[2] {
		t.Errorf("cycling back from the first tab selected %s", s.Selected())
	}
	s.Cycle(2)
	if s.Selected() != ids[1] {
		t.Errorf("selected = %s, want %s", s.Selected(), ids[1])
	}
}

func TestSingleRowHiddenAndHitTest(t *testing.T) {
	s, ids := newStrip(t, layout.ModeSingleRow, 5)

	p := s.Relayout(false)

	if got := p.Info().Bounds(ids[1]); got != image.Rect(6, 0, 12, 1) {
		t.Errorf("second tab = %v", got)
	}
	hidden := s.Hidden()
	if len(hidden) != 3 || hidden[0].ID != ids[2] {
		t.Errorf("hidden = %v, want the last three tabs", hidden)
	}

	tests := []struct {
		pt     image.Point
		target Target
		id     string
	}{
		{image.Pt(1, 0), TargetTab, ids[0]},
		{image.Pt(11, 0), TargetTab, ids[1]},
		{image.Pt(18, 0), TargetMore, ""},
		{image.Pt(14, 0), TargetNone, ""},
		{image.Pt(1, 3), TargetNone, ""},
	}
	for _, tt := range tests {
		target, id := s.HitTest(tt.pt)
		if target != tt.target || id != tt.id {
			t.Errorf("HitTest(%v) = %v %q, want %v %q", tt.pt, target, id, tt.target, tt.id)
		}
	}
	if !s.InHeader(image.Pt(18, 0)) || s.InHeader(image.Pt(1, 2)) {
		t.Error("header covers the tab row only")
	}
}

func TestScrollHoldsUntilSelectionChanges(t *testing.T) {
	s, ids := newStrip(t, layout.ModeScrollable, 5)

	s.Scroll(100)
	// required 30, fit 20, more indicator 3
	if got := s.ScrollOffset(); got != 13 {
		t.Fatalf("offset = %d, want 13", got)
	}
	s.Relayout(true)
	if got := s.ScrollOffset(); got != 13 {
		t.Errorf("offset = %d after relayout, want it held", got)
	}

	if err := s.Select(ids[0]); err != nil {
		t.Fatal(err)
	}
	s.Relayout(false)
	if got := s.ScrollOffset(); got != 0 {
		t.Errorf("offset = %d, want 0 once the first tab is selected again", got)
	}
}

func TestSetModeSwapsEngine(t *testing.T) {
	s, _ := newStrip(t, layout.ModeScrollable, 5)
	if !s.CanScroll() {
		t.Error("scrollable mode scrolls")
	}

	s.SetMode(layout.ModeTable)
	p, ok := s.Pass().(*layout.TablePass)
	if !ok {
		t.Fatalf("pass is %T, want a table pass", s.Pass())
	}
	if p.RowCount() != 2 {
		t.Errorf("rows = %d, want 2", p.RowCount())
	}
	if s.Mode() != layout.ModeTable || s.CanScroll() {
		t.Error("a wrapping table does not scroll")
	}

	s.Update(func(o *Options) { o.SingleRow = true })
	if p := s.Relayout(false); p.RowCount() != 1 {
		t.Errorf("single-row table has %d rows", p.RowCount())
	}
}

func TestRenameInvalidatesCachedPass(t *testing.T) {
	s, ids := newStrip(t, layout.ModeSingleRow, 2)
	first := s.Relayout(false)
	if second := s.Relayout(false); second != first {
		t.Fatal("expected the cached pass")
	}

	if err := s.Rename(ids[1], "a much longer title"); err != nil {
		t.Fatal(err)
	}
	if s.Relayout(false) == first {
		t.Error("a renamed tab must be laid out again")
	}
}

func TestBottomOrientation(t *testing.T) {
	s, ids := newStrip(t, layout.ModeSingleRow, 1)
	s.SetOrientation(layout.Bottom)

	p := s.Relayout(false)

	if got := p.Info().Bounds(ids[0]); got != image.Rect(0, 4, 6, 5) {
		t.Errorf("tab = %v, want it on the last row", got)
	}
}

func TestFind(t *testing.T) {
	s := New(Options{})
	for _, title := range []string{"main.go", "README.md", "strip_test.go"} {
		s.Add(title, false)
	}

	tests := []struct {
		query string
		want  string
		found bool
	}{
		{"readme", "README.md", true},
		{"mian.go", "main.go", true},
		{"test", "strip_test.go", true},
		{"zzzzzz", "", false},
		{"  ", "", false},
	}
	for _, tt := range tests {
		it, ok := s.Find(tt.query)
		if ok != tt.found || it.Title != tt.want {
			t.Errorf("Find(%q) = %q, %v, want %q, %v", tt.query, it.Title, ok, tt.want, tt.found)
		}
	}
}

func TestConcurrentAccess(t *testing.T) {
	s, _ := newStrip(t, layout.ModeScrollable, 3)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := s.Add(fmt.Sprintf("tab-%d", i), i%3 == 0)
			s.Relayout(i%2 == 0)
			s.Scroll(i - 10)
			s.Cycle(1)
			s.Hidden()
			_ = s.Select(id)
		}(i)
	}
	wg.Wait()

	if got := len(s.Items()); got != 23 {
		t.Errorf("items = %d, want 23", got)
	}
}
