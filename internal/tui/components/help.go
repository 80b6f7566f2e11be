package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/tabstrip/internal/tui/styles"
)

// HelpModel renders the help view with keyboard shortcuts.
type HelpModel struct {
	width, height int
	keymap        [][]string
}

// NewHelp creates a new HelpModel.
func NewHelp() *HelpModel {
	return &HelpModel{}
}

// Init implements Component.
func (h *HelpModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (h *HelpModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "?", "q":
			return h, func() tea.Msg { return CloseHelpMsg{} }
		}
	}
	return h, nil
}

// firstColumn lists the sections shown on the left.
var firstColumn = map[string]bool{
	"Navigation": true,
	"Tabs":       true,
}

// View implements Component.
func (h *HelpModel) View() string {
	if len(h.keymap) == 0 {
		return styles.Dialog.Render("No keybindings registered")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	var left, right strings.Builder
	column := &left
	keyStyle := styles.HelpKey.Copy().Width(10).Align(lipgloss.Right).PaddingRight(2)

	for _, item := range h.keymap {
		if len(item) < 2 {
			continue
		}
		key, desc := item[0], item[1]

		switch {
		case desc == "" && key != "":
			column = &right
			if firstColumn[key] {
				column = &left
			}
			column.WriteString("\n" + styles.SectionHeader.Render(" "+key+" ") + "\n")
		case key == "" && desc == "":
			column.WriteString("\n")
		default:
			column.WriteString(keyStyle.Render(key) + styles.HelpDesc.Render(desc) + "\n")
		}
	}

	colWidth := min(h.width/2, 50)
	columnStyle := lipgloss.NewStyle().Width(colWidth).PaddingLeft(2).PaddingRight(2)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		columnStyle.Render(left.String()),
		columnStyle.Render(right.String()),
	))
	b.WriteString("\n\n")

	footer := styles.HelpDesc.Render("Press ESC or ? to close")
	b.WriteString(lipgloss.NewStyle().Width(h.width).Align(lipgloss.Center).Render(footer))

	return b.String()
}

// SetSize implements Component.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// SetKeymap sets the help items.
func (h *HelpModel) SetKeymap(items [][]string) {
	h.keymap = items
}
