package stage

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/boxfish/internal/grid"
)

// Validation errors.
var (
	ErrNoGoal            = errors.New("stage: no goal tile")
	ErrNoBits            = errors.New("stage: boxfish needs at least one bit")
	ErrOriginOutOfBounds = errors.New("stage: origin outside layout")
	ErrOriginBlocked     = errors.New("stage: origin overlaps a blocking tile")
)

// Spawn is where the boxfish starts a stage and what it carries.
type Spawn struct {
	Origin grid.TileCoord
	Bits   []bool
}

// Stage is a complete stage definition.
type Stage struct {
	ID       string
	Name     string
	Hint     string
	Layout   string
	Spawn    Spawn
	FilePath string

	width  int
	height int
	tiles  []Tile
}

// New parses and validates a stage definition.
func New(id, name, hint, layout string, spawn Spawn) (*Stage, error) {
	w, h, tiles, err := ParseLayout(layout)
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", id, err)
	}
	s := &Stage{
		ID:     id,
		Name:   name,
		Hint:   hint,
		Layout: layout,
		Spawn:  spawn,
		width:  w,
		height: h,
		tiles:  tiles,
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("stage %s: %w", id, err)
	}
	return s, nil
}

// Size returns the layout dimensions in tiles.
func (s *Stage) Size() (w, h int) {
	return s.width, s.height
}

// Geometry builds a fresh geometry for the stage.
func (s *Stage) Geometry() *Geometry {
	return Build(s.width, s.height, s.tiles)
}

// validate checks the stage is playable from its spawn.
// The contracted boxfish occupies the origin and the two tiles behind it.
func (s *Stage) validate() error {
	if len(s.Spawn.Bits) == 0 {
		return ErrNoBits
	}

	geo := s.Geometry()
	if geo.Goals.Len() == 0 {
		return ErrNoGoal
	}
	if !geo.InBounds(s.Spawn.Origin) {
		return fmt.Errorf("%w: %s", ErrOriginOutOfBounds, s.Spawn.Origin)
	}
	for i := 0; i <= 2; i++ {
		c := s.Spawn.Origin.Behind(i)
		if geo.Hard.Contains(c) {
			return fmt.Errorf("%w: %s", ErrOriginBlocked, c)
		}
	}
	return nil
}
