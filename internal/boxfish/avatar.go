// Package boxfish is the movement, gate and register engine.
//
// An Avatar is a head followed by N register segments and a tail, trailing
// along -X. The Engine advances it one tick at a time: it validates moves
// against the stage collision sets, sweeps every register over the gates it
// passes, keeps the undo history and counts steps. Anything the outside world
// needs to react to is appended to an event outbox.
package boxfish

import (
	"github.com/vovakirdan/boxfish/internal/grid"
	"github.com/vovakirdan/boxfish/internal/stage"
)

// Register is one boolean bit carried by the boxfish, with its own undo log.
type Register struct {
	Value   bool
	history []bool
}

// push records the current value before a mutation.
func (r *Register) push() {
	r.history = append(r.history, r.Value)
}

// pop restores the last recorded value. It returns false on an empty log.
func (r *Register) pop() bool {
	n := len(r.history)
	if n == 0 {
		return false
	}
	r.Value = r.history[n-1]
	r.history = r.history[:n-1]
	return true
}

// History returns a copy of the register's undo log, oldest first.
func (r *Register) History() []bool {
	return append([]bool(nil), r.history...)
}

// Head is the leading tile of the boxfish.
type Head struct {
	Tile      grid.TileCoord
	Pos       grid.Vec // animated world position
	Expanding bool

	history []grid.TileCoord
}

// History returns a copy of the head's previous tiles, oldest first.
func (h *Head) History() []grid.TileCoord {
	return append([]grid.TileCoord(nil), h.history...)
}

// Segment is a body part behind the head: a register or the tail.
type Segment struct {
	Index    int // 0 is directly behind the head; the tail is N
	Tail     bool
	Register *Register // nil for the tail
	Offset   float64   // animated distance from the head in tiles
	Ideal    int       // distance the segment is heading for
}

// settled reports whether the segment has reached its ideal distance.
func (s *Segment) settled() bool {
	return s.Offset == float64(s.Ideal)
}

// contractedIdeal is where a segment rests when the boxfish is not inflated.
func (s *Segment) contractedIdeal() int {
	if s.Tail {
		return 2
	}
	return 1
}

// expandedIdeal is where a segment rests when fully inflated.
func (s *Segment) expandedIdeal() int {
	return s.Index + 1
}

// Avatar is the whole boxfish.
type Avatar struct {
	Head     Head
	Segments []Segment // N registers followed by the tail
}

// NewAvatar builds a contracted boxfish at the spawn point.
func NewAvatar(spawn stage.Spawn) *Avatar {
	a := &Avatar{
		Head: Head{
			Tile: spawn.Origin,
			Pos:  grid.ToWorld(spawn.Origin),
		},
		Segments: make([]Segment, 0, len(spawn.Bits)+1),
	}
	for i, bit := range spawn.Bits {
		a.Segments = append(a.Segments, Segment{
			Index:    i,
			Register: &Register{Value: bit},
		})
	}
	a.Segments = append(a.Segments, Segment{Index: len(spawn.Bits), Tail: true})

	for i := range a.Segments {
		s := &a.Segments[i]
		s.Ideal = s.contractedIdeal()
		s.Offset = float64(s.Ideal)
	}
	return a
}

// Registers returns the register segments in index order.
func (a *Avatar) Registers() []*Register {
	regs := make([]*Register, 0, len(a.Segments))
	for _, s := range a.Segments {
		if s.Register != nil {
			regs = append(regs, s.Register)
		}
	}
	return regs
}

// Bits returns the current register values in index order.
func (a *Avatar) Bits() []bool {
	regs := a.Registers()
	bits := make([]bool, len(regs))
	for i, r := range regs {
		bits[i] = r.Value
	}
	return bits
}

// Extent is the farthest tile behind the head the body claims.
// Collision checks every offset from 0 to Extent inclusive.
func (a *Avatar) Extent() int {
	extent := 0
	for _, s := range a.Segments {
		if s.Ideal > extent {
			extent = s.Ideal
		}
	}
	return extent
}

// Occupied returns the head tile followed by each segment's ideal tile.
// Contracted registers share a tile, so the list may hold duplicates.
func (a *Avatar) Occupied() []grid.TileCoord {
	tiles := make([]grid.TileCoord, 0, len(a.Segments)+1)
	tiles = append(tiles, a.Head.Tile)
	for _, s := range a.Segments {
		tiles = append(tiles, a.Head.Tile.Behind(s.Ideal))
	}
	return tiles
}

// BodySettled reports whether every segment has reached its ideal distance.
func (a *Avatar) BodySettled() bool {
	for i := range a.Segments {
		if !a.Segments[i].settled() {
			return false
		}
	}
	return true
}

// SegmentPos returns the animated world position of segment i.
func (a *Avatar) SegmentPos(i int) grid.Vec {
	return a.Head.Pos.Add(grid.Vec{X: -a.Segments[i].Offset * grid.TileSize})
}
