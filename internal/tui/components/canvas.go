package components

import (
	"image"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// span is a styled run of cells on one row.
type span struct {
	x, w  int
	text  string
	style lipgloss.Style
}

// canvas collects styled spans on a fixed grid of terminal cells and joins
// them into lines. Where spans overlap on a row, the leftmost one is kept and
// the others are skipped, whatever the paint order.
type canvas struct {
	bounds image.Rectangle
	rows   [][]span
}

func newCanvas(width, height int) *canvas {
	return &canvas{
		bounds: image.Rect(0, 0, max(width, 0), max(height, 0)),
		rows:   make([][]span, max(height, 0)),
	}
}

// fill paints text on the first row of r and blanks the remaining rows,
// all in style. Parts of r outside the canvas are cut off.
func (c *canvas) fill(r image.Rectangle, text string, style lipgloss.Style, centered bool) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		line := ""
		if y == r.Min.Y {
			line = text
		}
		c.line(image.Rect(r.Min.X, y, r.Max.X, y+1), line, style, centered)
	}
}

// lines paints one line of text per row of r.
func (c *canvas) lines(r image.Rectangle, text []string, style lipgloss.Style) {
	for i := 0; i < r.Dy(); i++ {
		line := ""
		if i < len(text) {
			line = text[i]
		}
		c.line(image.Rect(r.Min.X, r.Min.Y+i, r.Max.X, r.Min.Y+i+1), line, style, false)
	}
}

func (c *canvas) line(r image.Rectangle, text string, style lipgloss.Style, centered bool) {
	clipped := r.Intersect(c.bounds)
	if clipped.Empty() {
		return
	}
	w := clipped.Dx()
	text = runewidth.Truncate(text, w, "…")
	if centered {
		pad := (w - runewidth.StringWidth(text)) / 2
		text = strings.Repeat(" ", pad) + text
	}
	text = runewidth.FillRight(text, w)
	y := clipped.Min.Y
	c.rows[y] = append(c.rows[y], span{x: clipped.Min.X, w: w, text: text, style: style})
}

// String renders every row, filling the gaps between spans with blanks.
func (c *canvas) String() string {
	out := make([]string, len(c.rows))
	for y, row := range c.rows {
		slices.SortStableFunc(row, func(a, b span) int { return a.x - b.x })
		var b strings.Builder
		cursor := 0
		for _, s := range row {
			if s.x < cursor {
				continue
			}
			b.WriteString(strings.Repeat(" ", s.x-cursor))
			b.WriteString(s.style.Render(s.text))
			cursor = s.x + s.w
		}
		b.WriteString(strings.Repeat(" ", max(c.bounds.Dx()-cursor, 0)))
		out[y] = b.String()
	}
	return strings.Join(out, "\n")
}
