package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// colorKey identifies a foreground/background pair.
type colorKey struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per color pair seen so far.
var styleCache = map[colorKey]lipgloss.Style{}

// styleFor returns the style for a color pair. Translucent colors are blended
// over the board background, since terminals have no alpha.
func styleFor(fg, bg core.Color) lipgloss.Style {
	k := colorKey{fg, bg}
	if s, ok := styleCache[k]; ok {
		return s
	}

	s := lipgloss.NewStyle()
	if fg != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(hexColor(fg)))
	}
	if bg != core.ColorDefault {
		s = s.Background(lipgloss.Color(hexColor(bg)))
	}
	styleCache[k] = s
	return s
}

// hexColor returns the #rrggbb form of c composited over the board background.
func hexColor(c core.Color) string {
	v := blend(c.NRGBA(), snake.ColorBackground.NRGBA())
	return fmt.Sprintf("#%02x%02x%02x", v.R, v.G, v.B)
}

func blend(src, dst color.NRGBA) color.NRGBA {
	a := int(src.A)
	mix := func(s, d uint8) uint8 {
		return uint8((int(s)*a + int(d)*(255-a)) / 255)
	}
	return color.NRGBA{R: mix(src.R, dst.R), G: mix(src.G, dst.G), B: mix(src.B, dst.B), A: 255}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
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
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
