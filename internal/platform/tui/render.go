package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

// palette holds the terminal style of every core.Color.
var palette = newPalette()

func newPalette() [core.ColorCount]lipgloss.Style {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	var p [core.ColorCount]lipgloss.Style
	p[core.ColorDefault] = lipgloss.NewStyle()
	p[core.ColorMinoI] = fg("14")
	p[core.ColorMinoO] = fg("11")
	p[core.ColorMinoS] = fg("10")
	p[core.ColorMinoZ] = fg("9")
	p[core.ColorMinoJ] = fg("12")
	p[core.ColorMinoL] = fg("208")
	p[core.ColorMinoT] = fg("13")
	p[core.ColorFrame] = fg("245")
	p[core.ColorFlash] = fg("15").Bold(true)
	p[core.ColorAlert] = fg("9").Bold(true)
	p[core.ColorNotice] = fg("11").Bold(true)
	p[core.ColorSuccess] = fg("10").Bold(true)
	p[core.ColorSpin] = fg("13").Bold(true)
	return p
}

func styleOf(c core.Color) lipgloss.Style {
	if c >= core.ColorCount {
		return palette[core.ColorDefault]
	}
	return palette[c]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each run of same-colored cells is styled once.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run []rune
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run = run[:0]
			for ; x < s.Width(); x++ {
				c := s.GetCell(x, y)
				if c.Color != color {
					break
				}
				run = append(run, c.Rune)
			}
			if color == core.ColorDefault {
				sb.WriteString(string(run))
				continue
			}
			sb.WriteString(styleOf(color).Render(string(run)))
		}
	}
	return sb.String()
}
