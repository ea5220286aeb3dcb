package stage

import (
	"github.com/vovakirdan/boxfish/internal/collision"
	"github.com/vovakirdan/boxfish/internal/grid"
)

// Geometry is the static per-stage data the engine reads every tick.
// It is rebuilt wholesale on every stage load or reset.
type Geometry struct {
	Width  int
	Height int

	Walls collision.Set // never passable
	Soft  collision.Set // gate letters and registers; passable while expanded
	Hard  collision.Set // Walls ∪ Soft; used while contracted
	Goals collision.Set

	Gates []LogicGateTile

	tiles  map[grid.TileCoord]Tile
	byTile map[grid.TileCoord]LogicGateTile
}

// Build computes the geometry for a width×height layout from its tiles.
// An outline of walls one tile outside the layout is always added.
func Build(width, height int, tiles []Tile) *Geometry {
	g := &Geometry{
		Width:  width,
		Height: height,
		tiles:  make(map[grid.TileCoord]Tile, len(tiles)),
		byTile: make(map[grid.TileCoord]LogicGateTile),
	}

	for _, t := range tiles {
		g.tiles[t.At] = t
		switch t.Kind {
		case TileWall:
			g.Walls.Add(t.At)
		case TileGate:
			g.Soft.Add(t.At)
		case TileBit:
			g.Soft.Add(t.At)
			gate := LogicGateTile{At: t.At, Value: t.Value, Kind: t.Gate}
			g.Gates = append(g.Gates, gate)
			g.byTile[t.At] = gate
		case TileGoal:
			g.Goals.Add(t.At)
		}
	}

	for _, c := range outline(width, height) {
		g.Walls.Add(c)
		g.tiles[c] = Tile{At: c, Kind: TileWall}
	}

	g.Hard = g.Walls.Union(g.Soft)
	return g
}

// outline returns the frame of tiles surrounding a width×height layout.
func outline(width, height int) []grid.TileCoord {
	coords := make([]grid.TileCoord, 0, 2*(width+height)+4)
	for x := -1; x <= width; x++ {
		coords = append(coords, grid.C(x, -1), grid.C(x, height))
	}
	for y := 0; y < height; y++ {
		coords = append(coords, grid.C(-1, y), grid.C(width, y))
	}
	return coords
}

// GateAt returns the gate register at c, if any.
func (g *Geometry) GateAt(c grid.TileCoord) (LogicGateTile, bool) {
	gate, ok := g.byTile[c]
	return gate, ok
}

// TileAt returns the typed tile at c. Cells with nothing on them are TileEmpty.
func (g *Geometry) TileAt(c grid.TileCoord) Tile {
	if t, ok := g.tiles[c]; ok {
		return t
	}
	return Tile{At: c, Kind: TileEmpty}
}

// InBounds returns true if c lies inside the layout (the outline excluded).
func (g *Geometry) InBounds(c grid.TileCoord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Blockers returns the set a boxfish collides with in the given state.
func (g *Geometry) Blockers(expanding bool) collision.Set {
	if expanding {
		return g.Walls
	}
	return g.Hard
}
