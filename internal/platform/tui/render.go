package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile-puzzles/internal/core"
)

// HUD styles shared by the puzzle and adventure views.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hudStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	solvedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// hexColor converts an RGBA cell colour to a lipgloss colour. A zero alpha
// means the terminal default and yields ok == false.
func hexColor(c color.RGBA) (lipgloss.Color, bool) {
	if c.A == 0 {
		return "", false
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), true
}

// cellStyle builds the style for a foreground/background pair.
func cellStyle(fg, bg color.RGBA) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := hexColor(fg); ok {
		style = style.Foreground(c)
	}
	if c, ok := hexColor(bg); ok {
		style = style.Background(c)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.Get(x, y)

			// Collect consecutive cells with the same colours
			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.FG.A == 0 && start.BG.A == 0 {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(cellStyle(start.FG, start.BG).Render(run.String()))
		}
	}
	return sb.String()
}
