package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/boxfish/internal/core"
)

// emphasized roles are drawn bold so they stand out against the board.
var emphasized = map[core.Color]bool{
	core.ColorTitle:        true,
	core.ColorMismatch:     true,
	core.ColorHead:         true,
	core.ColorHeadInflated: true,
	core.ColorHeadBumped:   true,
}

// Painter turns a Screen into styled terminal output.
type Painter struct {
	styles []lipgloss.Style // indexed by core.Color
}

// NewPainter builds a painter for the palette.
func NewPainter(p core.Palette) *Painter {
	roles := core.Colors()
	pt := &Painter{styles: make([]lipgloss.Style, len(roles))}
	for _, c := range roles {
		style := lipgloss.NewStyle()
		if fg := p[c]; fg != "" {
			style = style.Foreground(lipgloss.Color(fg))
		}
		if emphasized[c] {
			style = style.Bold(true)
		}
		pt.styles[c] = style
	}
	return pt
}

func (p *Painter) style(c core.Color) lipgloss.Style {
	if int(c) < len(p.styles) {
		return p.styles[c]
	}
	return p.styles[core.ColorDefault]
}

// Render draws the screen row by row, one styled span per run of cells
// sharing a role. Unstyled spans are written as is.
func (p *Painter) Render(s *core.Screen) string {
	var out strings.Builder
	out.Grow(s.Width()*s.Height()*2 + s.Height())

	var span strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}

		role := s.GetCell(0, y).Color
		flush := func() {
			if role == core.ColorDefault {
				out.WriteString(span.String())
			} else {
				out.WriteString(p.style(role).Render(span.String()))
			}
			span.Reset()
		}

		for x, w := 0, s.Width(); x < w; x++ {
			cell := s.GetCell(x, y)
			if cell.Color != role {
				flush()
				role = cell.Color
			}
			span.WriteRune(cell.Rune)
		}
		flush()
	}
	return out.String()
}

// RenderScreen renders with the default palette.
func RenderScreen(s *core.Screen) string {
	return NewPainter(core.DefaultPalette()).Render(s)
}
