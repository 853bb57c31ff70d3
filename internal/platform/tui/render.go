package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jungle-runner/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorSky:         lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorFoliageFar:  lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	core.ColorFoliageMid:  lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorFoliageNear: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorGround:      lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorPlayer:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorStone:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorLog:         lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorHole:        lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	core.ColorBanana:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	core.ColorHUD:         lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
