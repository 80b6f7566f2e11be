package layout

import (
	"fmt"
	"image"
)

type fakeLabel struct {
	bounds   image.Rectangle
	invalid  bool
	centered bool
}

func (l *fakeLabel) Bounds() image.Rectangle     { return l.bounds }
func (l *fakeLabel) SetBounds(r image.Rectangle) { l.bounds = r }
func (l *fakeLabel) Valid() bool                 { return !l.invalid }
func (l *fakeLabel) SetCentered(c bool)          { l.centered = c }

type fixture struct {
	tabs   []Tab
	labels map[string]*fakeLabel
}

// newFixture builds one-cell-high tabs t0, t1, ... with the given widths.
func newFixture(widths ...int) *fixture {
	f := &fixture{labels: make(map[string]*fakeLabel)}
	for i, w := range widths {
		id := fmt.Sprintf("t%d", i)
		f.tabs = append(f.tabs, Tab{ID: id, PreferredSize: image.Pt(w, 1)})
		f.labels[id] = &fakeLabel{}
	}
	return f
}

func (f *fixture) add(id string, width int, pinned bool) {
	f.tabs = append(f.tabs, Tab{ID: id, PreferredSize: image.Pt(width, 1), Pinned: pinned})
	f.labels[id] = &fakeLabel{}
}

func (f *fixture) lookup(id string) Label {
	if l, ok := f.labels[id]; ok {
		return l
	}
	return nil
}

func (f *fixture) ctx(width int) Context {
	return Context{
		Size:         image.Pt(width, 20),
		HeaderHeight: 1,
		Labels:       f.lookup,
	}
}

func sameIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
