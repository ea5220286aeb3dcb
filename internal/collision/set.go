// Package collision provides the tile sets the boxfish collides with and the
// sweep queries used to validate a multi-tile travel.
package collision

import (
	"sort"

	"github.com/vovakirdan/boxfish/internal/grid"
)

// Set is a deduplicated set of blocking tile coordinates.
// The zero value is an empty set ready to use.
type Set struct {
	tiles map[grid.TileCoord]struct{}
}

// NewSet creates a set holding the given coordinates.
func NewSet(coords ...grid.TileCoord) Set {
	s := Set{tiles: make(map[grid.TileCoord]struct{}, len(coords))}
	for _, c := range coords {
		s.tiles[c] = struct{}{}
	}
	return s
}

// Add inserts a coordinate. Adding an existing coordinate is a no-op.
func (s *Set) Add(c grid.TileCoord) {
	if s.tiles == nil {
		s.tiles = make(map[grid.TileCoord]struct{})
	}
	s.tiles[c] = struct{}{}
}

// Contains returns true if c is a member.
func (s Set) Contains(c grid.TileCoord) bool {
	_, ok := s.tiles[c]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s.tiles)
}

// Union returns a new set holding the members of both sets.
func (s Set) Union(other Set) Set {
	out := Set{tiles: make(map[grid.TileCoord]struct{}, len(s.tiles)+len(other.tiles))}
	for c := range s.tiles {
		out.tiles[c] = struct{}{}
	}
	for c := range other.tiles {
		out.tiles[c] = struct{}{}
	}
	return out
}

// Coords returns the members ordered by row then column.
func (s Set) Coords() []grid.TileCoord {
	coords := make([]grid.TileCoord, 0, len(s.tiles))
	for c := range s.tiles {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Y != coords[j].Y {
			return coords[i].Y < coords[j].Y
		}
		return coords[i].X < coords[j].X
	})
	return coords
}

// SweepBlocked returns true if travelling from origin crosses any member.
// The origin itself is not tested.
func (s Set) SweepBlocked(origin grid.TileCoord, travel grid.Travel) bool {
	_, hit := s.SweepFirstHit(origin, travel)
	return hit
}

// SweepFirstHit returns the first member crossed when travelling from origin,
// in route order (nearest first).
func (s Set) SweepFirstHit(origin grid.TileCoord, travel grid.Travel) (grid.TileCoord, bool) {
	if len(s.tiles) == 0 {
		return grid.TileCoord{}, false
	}
	for _, c := range travel.Route(origin) {
		if s.Contains(c) {
			return c, true
		}
	}
	return grid.TileCoord{}, false
}
