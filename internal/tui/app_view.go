package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/tabstrip/internal/tui/styles"
)

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return ""
	}
	if a.showHelp {
		return a.helpComp.View()
	}
	return a.stripComp.View() + "\n" + a.bottomLine()
}

// bottomLine is the prompt while one is open, the status bar otherwise.
func (a *App) bottomLine() string {
	if a.prompt != promptNone {
		line := a.input.View()
		if a.prompt == promptCommand {
			if names := CommandNames(firstWord(a.input.Value())); len(names) > 0 && len(names) < 6 {
				line += "  " + styles.CommandSuggestion.Render(strings.Join(names, " "))
			}
		}
		return line
	}

	if a.statusMsg != "" {
		style := styles.StatusBar
		if a.statusErr {
			style = styles.StatusError
		}
		return style.MaxWidth(a.width).Render(a.statusMsg)
	}

	s := a.strip
	status := fmt.Sprintf(" %s │ %d tabs │ %d hidden │ offset %d │ ? help",
		s.Mode(), len(s.Items()), len(s.Hidden()), s.ScrollOffset())
	return lipgloss.NewStyle().MaxWidth(a.width).Render(styles.StatusBar.Render(status))
}

func firstWord(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return ""
}
