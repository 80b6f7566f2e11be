package components

import (
	"fmt"
	"image"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tabstrip/internal/layout"
	"github.com/hy4ri/tabstrip/internal/strip"
	"github.com/hy4ri/tabstrip/internal/tui/styles"
)

// press is a left button press on a tab that has not been released yet.
type press struct {
	id  string
	at  image.Point
	out bool
}

// TabStripModel renders a strip pass into terminal cells and turns mouse
// input into strip operations.
type TabStripModel struct {
	strip         *strip.Strip
	width, height int

	hover bool
	press *press
	pass  layout.Pass
}

// NewTabStrip creates a TabStripModel drawing s.
func NewTabStrip(s *strip.Strip) *TabStripModel {
	return &TabStripModel{strip: s}
}

// Init implements Component.
func (m *TabStripModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (m *TabStripModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return m, nil
	}
	cmd := m.handleMouse(mouse)
	m.Refresh()
	return m, cmd
}

// Refresh lays the strip out again. View draws the pass computed here.
func (m *TabStripModel) Refresh() {
	m.pass = m.strip.Relayout(false)
}

func (m *TabStripModel) handleMouse(mouse tea.MouseMsg) tea.Cmd {
	pt := image.Pt(mouse.X, mouse.Y)

	switch {
	case mouse.Button == tea.MouseButtonWheelUp || mouse.Button == tea.MouseButtonWheelLeft:
		m.strip.Scroll(-layout.ScrollUnitIncrement)
	case mouse.Button == tea.MouseButtonWheelDown || mouse.Button == tea.MouseButtonWheelRight:
		m.strip.Scroll(layout.ScrollUnitIncrement)

	case mouse.Action == tea.MouseActionMotion:
		m.setHover(m.strip.InHeader(pt))
		if m.press != nil {
			d := pt.Sub(m.press.at)
			m.press.out = m.strip.IsDragOut(m.press.id, d.X, d.Y)
		}

	case mouse.Action == tea.MouseActionPress && mouse.Button == tea.MouseButtonLeft:
		return m.click(pt)

	case mouse.Action == tea.MouseActionRelease:
		p := m.press
		m.press = nil
		if p == nil {
			return nil
		}
		d := pt.Sub(p.at)
		if p.out || m.strip.IsDragOut(p.id, d.X, d.Y) {
			return func() tea.Msg { return TabDetachedMsg{ID: p.id} }
		}
	}
	return nil
}

func (m *TabStripModel) setHover(over bool) {
	if over == m.hover {
		return
	}
	m.hover = over
	m.strip.SetMouseOver(over)
}

func (m *TabStripModel) click(pt image.Point) tea.Cmd {
	target, id := m.strip.HitTest(pt)
	switch target {
	case strip.TargetTab:
		m.press = &press{id: id, at: pt}
		return func() tea.Msg { return TabSelectedMsg{ID: id} }
	case strip.TargetMore:
		hidden := m.strip.Hidden()
		return func() tea.Msg { return HiddenTabsMsg{Items: hidden} }
	case strip.TargetEntryPoint:
		return func() tea.Msg { return NewTabRequestMsg{} }
	}
	return nil
}

// Dragging reports whether a tab is held beyond the drag-out distance.
func (m *TabStripModel) Dragging() (string, bool) {
	if m.press == nil {
		return "", false
	}
	return m.press.id, m.press.out
}

// View implements Component.
func (m *TabStripModel) View() string {
	p := m.pass
	if p == nil {
		return newCanvas(m.width, m.height).String()
	}
	info := p.Info()
	opts := m.strip.Options()
	selected := m.strip.Selected()
	c := newCanvas(m.width, m.height)

	if opts.Title != "" {
		c.fill(info.TitleRect, opts.Title, styles.StripTitle, false)
	}
	for _, id := range p.ToLayout() {
		it, ok := m.strip.Item(id)
		if !ok {
			continue
		}
		centered := m.strip.Centered(id)
		style := styles.Tab
		switch {
		case id == selected:
			style = styles.TabSelected
		case centered:
			style = styles.TabClipped
		case it.Pinned:
			style = styles.TabPinned
		}
		if dragged, out := m.Dragging(); out && dragged == id {
			style = style.Copy().Faint(true)
		}
		c.fill(info.Bounds(id), tabText(it, opts.Padding), style, centered)
	}
	if !info.MoreRect.Empty() {
		c.fill(info.MoreRect, fmt.Sprintf("»%d", len(m.strip.Hidden())), styles.More, true)
	}
	if !info.EntryPointRect.Empty() {
		c.fill(info.EntryPointRect, strings.TrimSpace(strip.EntryPointText), styles.EntryPoint, true)
	}

	if selected != "" {
		it, _ := m.strip.Item(selected)
		m.paintToolbar(c, info, it)
		c.lines(info.ContentRect, m.contentLines(p, it), styles.ContentText)
	}
	return c.String()
}

// tabText pads the label the way the strip measured it.
func tabText(it strip.Item, padding int) string {
	pad := strings.Repeat(" ", max(padding, 0))
	return pad + it.Text() + pad
}

func (m *TabStripModel) paintToolbar(c *canvas, info *layout.PassInfo, it strip.Item) {
	tb := info.ToolbarRect
	if tb.Empty() {
		return
	}
	c.fill(tb, "⚙ "+it.Title, styles.Toolbar, false)

	content := info.ContentRect
	var sep image.Rectangle
	switch {
	case tb.Max.X < content.Min.X:
		sep = image.Rect(tb.Max.X, tb.Min.Y, content.Min.X, tb.Max.Y)
	case content.Max.X < tb.Min.X:
		sep = image.Rect(content.Max.X, tb.Min.Y, tb.Min.X, tb.Max.Y)
	default:
		return
	}
	bar := make([]string, sep.Dy())
	for i := range bar {
		bar[i] = "│"
	}
	c.lines(sep, bar, styles.Separator)
}

func (m *TabStripModel) contentLines(p layout.Pass, it strip.Item) []string {
	info := p.Info()
	lines := []string{
		it.Title,
		"",
		field("id", it.ID),
		field("pinned", fmt.Sprint(it.Pinned)),
		field("bounds", fmt.Sprint(info.Bounds(it.ID))),
		field("mode", string(m.strip.Mode())),
		field("rows", fmt.Sprint(p.RowCount())),
		field("offset", fmt.Sprintf("%d (extent %d of %d)", info.ScrollOffset, p.ScrollExtent(), p.RequiredLength())),
		field("hidden", fmt.Sprint(len(p.Dropped()))),
	}
	if tp, ok := p.(*layout.TablePass); ok {
		lines = append(lines, field("row", fmt.Sprintf("%d, selection row %v", tp.Row(it.ID), tp.IsInSelectionRow(it.ID))))
	}
	return lines
}

func field(label, value string) string {
	return fmt.Sprintf("%-8s%s", label, value)
}

// SetSize implements Component.
func (m *TabStripModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.strip.SetSize(width, height)
	m.Refresh()
}
