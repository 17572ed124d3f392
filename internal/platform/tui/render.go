package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sisyphus/internal/core"
)

// palette maps core.Color to ANSI 256-color codes.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBrown:         "130",
	core.ColorSky:           "153",
	core.ColorStone:         "250",
}

// colorPair is the style key of a cell.
type colorPair struct {
	fg, bg core.Color
}

// styleCache memoizes lipgloss styles per color pair.
// Only used from View, which Bubble Tea calls from a single goroutine per
// program; SSH sessions each render through their own cache.
type styleCache map[colorPair]lipgloss.Style

func (c styleCache) style(p colorPair) lipgloss.Style {
	if s, ok := c[p]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if fg, ok := palette[p.fg]; ok {
		s = s.Foreground(fg)
	}
	if bg, ok := palette[p.bg]; ok {
		s = s.Background(bg)
	}
	c[p] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, make(styleCache))
}

func renderScreen(s *core.Screen, cache styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := colorPair{cell.Fg, cell.Bg}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != key.fg || cell.Bg != key.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if key == (colorPair{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(cache.style(key).Render(run.String()))
		}
	}
	return sb.String()
}
