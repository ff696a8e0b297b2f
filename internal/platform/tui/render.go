package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-vanilla/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. Named colors carry their
// hex value; lipgloss degrades it to what the terminal supports.
var colorStyles = buildColorStyles()

func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c := core.ColorRed; c <= core.ColorLime; c++ {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	return styles
}

var (
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorRed.Hex())).Bold(true)
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
// Every line is shifted right by indent columns.
func RenderScreen(s *core.Screen, indent int) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height()*(indent+1))
	pad := strings.Repeat(" ", max(indent, 0))

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(pad)

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
