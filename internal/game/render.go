package game

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/boxfish/internal/boxfish"
	"github.com/vovakirdan/boxfish/internal/core"
	"github.com/vovakirdan/boxfish/internal/grid"
	"github.com/vovakirdan/boxfish/internal/stage"
)

const (
	hudHeight   = 2 // status line and separator
	footHeight  = 2 // hint and controls
	cellWidth   = 2 // terminal columns per tile
	controlLine = "arrows swim  space inflate  z undo  r reload  p pause  q quit"
)

// board maps tile coordinates to screen cells for the current stage.
type board struct {
	left, top int
}

// cell returns the screen position of the left column of tile c.
func (b board) cell(c grid.TileCoord) (x, y int) {
	return b.left + (c.X+1)*cellWidth, b.top + c.Y + 1
}

// world returns the screen position of a world coordinate, at half-tile
// horizontal resolution.
func (b board) world(v grid.Vec) (x, y int) {
	tx := v.X / grid.TileSize
	ty := v.Y / grid.TileSize
	return b.left + int(math.Round((tx+1)*cellWidth)), b.top + int(math.Round(ty+1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	st := g.stages[g.index]
	w, h := st.Size()
	needW := (w + 2) * cellWidth
	needH := h + 2 + hudHeight + footHeight

	g.renderHUD(dst, st)

	if dst.Width() < needW || dst.Height() < needH {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	b := board{
		left: core.Clamp((dst.Width()-needW)/2, 0, dst.Width()),
		top:  hudHeight,
	}
	g.renderStage(dst, b)
	g.renderAvatar(dst, b)

	hintY := b.top + h + 2
	if st.Hint != "" {
		dst.DrawTextCenteredColored(hintY, st.Hint, core.ColorMuted)
	}
	dst.DrawTextCenteredColored(dst.Height()-1, controlLine, core.ColorMuted)

	switch {
	case g.won:
		g.renderOverlay(dst,
			"All stages cleared!",
			fmt.Sprintf("Steps: %d  Rank: %s", g.engine.Steps(), g.rank),
			"Press Enter for a new run",
		)
	case g.stageClear:
		g.renderOverlay(dst, "Stage cleared!", st.Name)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, st *stage.Stage) {
	hud := fmt.Sprintf(" Boxfish | %s (%d/%d) | Steps: %d | Bits: %s",
		st.Name, g.index+1, len(g.stages), g.engine.Steps(), bitString(g.engine.Avatar().Bits()))
	dst.DrawTextColored(0, 0, hud, core.ColorText)

	if phase := g.engine.Expansion(); phase != boxfish.Contracted {
		label := phase.String() + " "
		dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(label), 0, label, core.ColorHeadInflated)
	}
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// bitString formats register values as "1 0 1".
func bitString(bits []bool) string {
	parts := make([]string, len(bits))
	for i, b := range bits {
		parts[i] = "0"
		if b {
			parts[i] = "1"
		}
	}
	return strings.Join(parts, " ")
}

// renderStage draws every tile including the outline.
func (g *Game) renderStage(dst *core.Screen, b board) {
	geo := g.engine.Geometry()
	for y := -1; y <= geo.Height; y++ {
		for x := -1; x <= geo.Width; x++ {
			c := grid.C(x, y)
			l, r, color := g.tileGlyph(geo.TileAt(c))
			sx, sy := b.cell(c)
			dst.SetColored(sx, sy, l, color)
			dst.SetColored(sx+1, sy, r, color)
		}
	}
}

// tileGlyph returns the two runes and color used for a tile.
func (g *Game) tileGlyph(t stage.Tile) (left, right rune, color core.Color) {
	switch t.Kind {
	case stage.TileWall:
		return '█', '█', core.ColorWall
	case stage.TileGoal:
		return '[', ']', core.ColorGoal
	case stage.TileGate:
		return ' ', t.Gate.Letter(), core.ColorGate
	case stage.TileBit:
		digit := '0'
		if t.Value {
			digit = '1'
		}
		if g.highlighted(t.At) {
			return '!', digit, core.ColorMismatch
		}
		return ' ', digit, core.ColorBit
	default:
		return ' ', ' ', core.ColorDefault
	}
}

// renderAvatar draws the boxfish from the tail forward so the head and the
// foremost register end up on top.
func (g *Game) renderAvatar(dst *core.Screen, b board) {
	a := g.engine.Avatar()

	for i := len(a.Segments) - 1; i >= 0; i-- {
		seg := a.Segments[i]
		x, y := b.world(a.SegmentPos(i))
		if seg.Tail {
			dst.SetColored(x, y, '<', core.ColorTail)
			dst.SetColored(x+1, y, '=', core.ColorTail)
			continue
		}
		digit := '0'
		if seg.Register.Value {
			digit = '1'
		}
		dst.SetColored(x, y, '=', core.ColorRegister)
		dst.SetColored(x+1, y, digit, core.ColorRegister)
	}

	color := core.ColorHead
	if g.engine.Motion().Phase == boxfish.MotionCollided {
		color = core.ColorHeadBumped
	} else if a.Head.Expanding {
		color = core.ColorHeadInflated
	}
	x, y := b.world(a.Head.Pos)
	dst.SetColored(x, y, 'O', color)
	dst.SetColored(x+1, y, '>', color)
}

// renderOverlay draws a centered box with one message per line.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}

	screen := core.NewRect(0, 0, dst.Width(), dst.Height())
	box := screen.Centered(width+4, len(lines)*2+1)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		color := core.ColorText
		if i == 0 {
			color = core.ColorTitle
		}
		dst.DrawTextCenteredColored(box.Y+1+i*2, l, color)
	}
}
