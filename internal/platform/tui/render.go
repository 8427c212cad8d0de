package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockspiral/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Painted cells get a truecolor background; adjacent cells with the same
// background are grouped to minimize ANSI escape sequences.
func RenderScreen(t Theme, s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[core.Color]lipgloss.Style)
	styleFor := func(c core.Color) lipgloss.Style {
		st, ok := styles[c]
		if !ok {
			st = t.Swatch(c.String())
			styles[c] = st
		}
		return st
	}

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)

			// Collect consecutive cells with the same background
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Painted != first.Painted || cell.Bg != first.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if !first.Painted {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(first.Bg).Render(run.String()))
		}
	}
	return sb.String()
}

// emptyHint is shown below the origin while the grid has no blocks.
const emptyHint = "No blocks yet. Press space to add one."

// drawGrid draws the blocks onto s, plus a marker on the next spiral cell
// when ghost is set.
func drawGrid(s *core.Screen, blocks []core.Block, ghost *core.Position, cellW, cellH int) {
	s.Clear()
	if ghost != nil {
		s.DrawBox(core.CellRect(*ghost, cellW, cellH))
	}
	if len(blocks) == 0 {
		r := core.CellRect(core.Pos(0, 1), cellW, cellH)
		s.DrawText(r.X, r.Y, emptyHint)
		return
	}
	for _, b := range blocks {
		s.Paint(core.CellRect(b.Position, cellW, cellH), b.Color)
	}
}
