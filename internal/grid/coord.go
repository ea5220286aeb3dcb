// Package grid provides integer tile coordinates, single-axis travels and
// their conversion to continuous world positions.
// It has no dependencies so every other engine package can build on it.
package grid

import "fmt"

// TileSize is the edge length of one tile in world units.
const TileSize = 16

// TileCoord represents a cell on the stage grid.
// X increases to the right, Y increases downward (screen coordinates).
type TileCoord struct {
	X int
	Y int
}

// C is a convenience constructor for TileCoord.
func C(x, y int) TileCoord {
	return TileCoord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c TileCoord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new TileCoord offset by (dx, dy).
func (c TileCoord) Add(dx, dy int) TileCoord {
	return TileCoord{X: c.X + dx, Y: c.Y + dy}
}

// AddCoord returns the sum of two coordinates.
func (c TileCoord) AddCoord(other TileCoord) TileCoord {
	return TileCoord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Sub returns the difference of two coordinates.
func (c TileCoord) Sub(other TileCoord) TileCoord {
	return TileCoord{X: c.X - other.X, Y: c.Y - other.Y}
}

// Behind returns the coordinate n tiles behind c along the body's trailing
// axis. The boxfish always trails to the left of its head.
func (c TileCoord) Behind(n int) TileCoord {
	return c.Add(-n, 0)
}

// Vec is a continuous position in world units.
type Vec struct {
	X float64
	Y float64
}

// Add returns the component-wise sum.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// ToWorld converts a tile coordinate to its world position.
func ToWorld(c TileCoord) Vec {
	return Vec{X: float64(c.X * TileSize), Y: float64(c.Y * TileSize)}
}

// ToTile converts a world position to the nearest tile.
func ToTile(v Vec) TileCoord {
	return TileCoord{X: roundDiv(v.X), Y: roundDiv(v.Y)}
}

func roundDiv(f float64) int {
	t := f / TileSize
	if t < 0 {
		return -int(-t + 0.5)
	}
	return int(t + 0.5)
}
