package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shaperun/internal/core"
)

// cellColors is the (foreground, background) pair a run of cells shares.
type cellColors struct {
	fg, bg core.Color
}

// Painter converts Screen buffers to styled strings for one lipgloss renderer.
// SSH sessions each get their own renderer so color detection follows the
// client terminal, not the server's.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[cellColors]lipgloss.Style
}

// NewPainter creates a painter. A nil renderer uses the process default.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[cellColors]lipgloss.Style),
	}
}

func (p *Painter) style(c cellColors) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	s := p.renderer.NewStyle()
	if hex := c.fg.Hex(); hex != "" {
		s = s.Foreground(lipgloss.Color(hex))
	}
	if hex := c.bg.Hex(); hex != "" {
		s = s.Background(lipgloss.Color(hex))
	}
	p.styles[c] = s
	return s
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			colors := cellColors{fg: cell.Color, bg: cell.Background}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != colors.fg || cell.Background != colors.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.style(colors).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders s with the default lipgloss renderer.
func RenderScreen(s *core.Screen) string {
	return NewPainter(nil).Render(s)
}
