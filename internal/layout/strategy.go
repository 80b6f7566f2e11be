package layout

import (
	"image"
	"math"
)

// Strategy maps the abstract main axis of a single-row pass onto concrete
// rectangles. Layout code never branches on orientation; it asks the
// strategy.
type Strategy interface {
	StartPosition(p *SingleRowPass) int
	// ToFitLength is the main-axis length available to tab labels once the
	// insets, title, toolbar and entry point are taken out.
	ToFitLength(p *SingleRowPass) int
	LengthIncrement(p *SingleRowPass, pref image.Point) int
	MinPosition(r image.Rectangle) int
	MaxPosition(r image.Rectangle) int
	FixedPosition(p *SingleRowPass) int
	FixedFitLength(p *SingleRowPass) int
	LayoutRect(p *SingleRowPass, position, length int) image.Rectangle
	TitleRect(p *SingleRowPass) image.Rectangle
	MoreRect(p *SingleRowPass) image.Rectangle
	EntryPointRect(p *SingleRowPass) image.Rectangle
	// ContentRect places the selected tab's content and its horizontal
	// toolbar, if any.
	ContentRect(p *SingleRowPass) (content, toolbar image.Rectangle)
	MoreAxisSize(gtx Context) int
	EntryPointAxisSize(gtx Context) int
	AdditionalLength() int
	// DrawPartialOverflowTabs reports whether a tab that does not fit in a
	// scrollable row is clipped (true) or hidden altogether (false).
	DrawPartialOverflowTabs() bool
	CenterTextWhenStretched() bool
	IsDragOut(label image.Rectangle, dx, dy int, multiplier float64) bool
}

var (
	topStrategy    Strategy = top{}
	bottomStrategy Strategy = bottom{}
)

// StrategyFor returns the strategy of an orientation.
func StrategyFor(o Orientation) Strategy {
	if o == Bottom {
		return bottomStrategy
	}
	return topStrategy
}

// horizontal holds what top and bottom placement share.
type horizontal struct{}

func (horizontal) StartPosition(p *SingleRowPass) int { return p.insets.Left }

func (horizontal) ToFitLength(p *SingleRowPass) int {
	gtx := p.gtx
	length := gtx.Size.X - p.insets.Horizontal()
	if p.hToolbar != nil {
		length -= p.hToolbar.MinWidth
	}
	if entry := gtx.EntryPointSize.X; entry > 0 {
		length -= entry + gtx.ActionsInsets.Horizontal()
	}
	length -= gtx.TitleSize.X
	return max(length, 0)
}

func (horizontal) LengthIncrement(p *SingleRowPass, pref image.Point) int {
	return max(pref.X, p.gtx.MinTabWidth)
}

func (horizontal) MinPosition(r image.Rectangle) int { return r.Min.X }

func (horizontal) MaxPosition(r image.Rectangle) int { return r.Max.X }

func (horizontal) FixedFitLength(p *SingleRowPass) int { return p.gtx.HeaderHeight }

func (horizontal) MoreAxisSize(gtx Context) int { return gtx.MoreSize.X }

func (horizontal) EntryPointAxisSize(gtx Context) int { return gtx.EntryPointSize.X }

func (horizontal) AdditionalLength() int { return 0 }

func (horizontal) DrawPartialOverflowTabs() bool { return true }

func (horizontal) CenterTextWhenStretched() bool { return true }

func (horizontal) IsDragOut(label image.Rectangle, dx, dy int, multiplier float64) bool {
	return math.Abs(float64(dy)) > float64(label.Dy())*multiplier
}

type top struct{ horizontal }

func (top) FixedPosition(p *SingleRowPass) int { return p.insets.Top }

func (s top) LayoutRect(p *SingleRowPass, position, length int) image.Rectangle {
	return Rect(position, s.FixedPosition(p), length, s.FixedFitLength(p))
}

func (s top) TitleRect(p *SingleRowPass) image.Rectangle {
	return Rect(p.gtx.Insets.Left, s.FixedPosition(p), p.gtx.TitleSize.X, p.gtx.HeaderHeight)
}

func (s top) MoreRect(p *SingleRowPass) image.Rectangle {
	return moreRect(p, s.FixedPosition(p))
}

func (s top) EntryPointRect(p *SingleRowPass) image.Rectangle {
	return entryPointRect(p, s.FixedPosition(p))
}

func (top) ContentRect(p *SingleRowPass) (content, toolbar image.Rectangle) {
	gtx := p.gtx
	if gtx.HideTabs {
		return p.layoutComp(0, 0, 0, 0)
	}
	var th int
	if p.hToolbar != nil {
		th = max(p.hToolbar.Size.Y, 0)
	}
	content = contentRect(gtx, Rect(0, gtx.HeaderHeight+th, gtx.Size.X, gtx.Size.Y), 0, 0)
	if p.hToolbar != nil {
		toolbar = Rect(content.Min.X, content.Min.Y-th, content.Dx(), th)
	}
	return content, toolbar
}

type bottom struct{ horizontal }

func (bottom) FixedPosition(p *SingleRowPass) int {
	return p.gtx.Size.Y - p.insets.Bottom - p.gtx.HeaderHeight
}

func (s bottom) LayoutRect(p *SingleRowPass, position, length int) image.Rectangle {
	return Rect(position, s.FixedPosition(p), length, s.FixedFitLength(p))
}

func (s bottom) TitleRect(p *SingleRowPass) image.Rectangle {
	return Rect(p.gtx.Insets.Left, s.FixedPosition(p), p.gtx.TitleSize.X, p.gtx.HeaderHeight)
}

func (s bottom) MoreRect(p *SingleRowPass) image.Rectangle {
	return moreRect(p, s.FixedPosition(p))
}

func (s bottom) EntryPointRect(p *SingleRowPass) image.Rectangle {
	return entryPointRect(p, s.FixedPosition(p))
}

func (bottom) ContentRect(p *SingleRowPass) (content, toolbar image.Rectangle) {
	if p.gtx.HideTabs {
		return p.layoutComp(0, 0, 0, 0)
	}
	return p.layoutComp(0, 0, 0, -p.gtx.HeaderHeight)
}

func moreRect(p *SingleRowPass, y int) image.Rectangle {
	x := p.gtx.Size.X - p.gtx.ActionsInsets.Right - p.moreAxisSize - p.entryPointAxisSize
	return Rect(x, y, p.moreAxisSize, p.gtx.HeaderHeight)
}

func entryPointRect(p *SingleRowPass, y int) image.Rectangle {
	x := p.gtx.Size.X - p.gtx.ActionsInsets.Right - p.entryPointAxisSize
	return Rect(x, y, p.entryPointAxisSize, p.gtx.HeaderHeight)
}

// contentRect shrinks bounds by the layout insets. The deltas only apply
// while tabs are shown.
func contentRect(gtx Context, bounds image.Rectangle, dw, dh int) image.Rectangle {
	in := gtx.Insets
	x := in.Left + bounds.Min.X
	y := in.Top + bounds.Min.Y
	w := bounds.Dx() - in.Horizontal() - bounds.Min.X
	h := bounds.Dy() - in.Vertical() - bounds.Min.Y
	if !gtx.HideTabs {
		w += dw
		h += dh
	}
	return Rect(x, y, w, h)
}
