package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// attrStyles maps core.Attr to lipgloss styles.
var attrStyles = map[core.Attr]lipgloss.Style{
	core.AttrNormal: lipgloss.NewStyle(),
	core.AttrDim:    lipgloss.NewStyle().Faint(true),
	core.AttrBold:   lipgloss.NewStyle().Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same attribute to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Attr

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Attr != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := attrStyles[start]
			if !ok {
				style = attrStyles[core.AttrNormal]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
