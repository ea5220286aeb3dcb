package stage

import (
	"errors"
	"testing"

	"github.com/vovakirdan/boxfish/internal/grid"
)

func TestParseLayout(t *testing.T) {
	w, h, tiles, err := ParseLayout("W E\nX10X\n")
	if err != nil {
		t.Fatalf("ParseLayout() error: %v", err)
	}
	if w != 4 || h != 2 {
		t.Errorf("size = %dx%d, want 4x2", w, h)
	}

	want := map[grid.TileCoord]Tile{
		grid.C(0, 0): {At: grid.C(0, 0), Kind: TileWall},
		grid.C(2, 0): {At: grid.C(2, 0), Kind: TileGoal},
		grid.C(0, 1): {At: grid.C(0, 1), Kind: TileGate, Gate: GateXor},
		grid.C(1, 1): {At: grid.C(1, 1), Kind: TileBit, Gate: GateXor, Value: true},
		grid.C(2, 1): {At: grid.C(2, 1), Kind: TileBit, Gate: GateXor, Value: false},
		grid.C(3, 1): {At: grid.C(3, 1), Kind: TileGate, Gate: GateXor},
	}
	if len(tiles) != len(want) {
		t.Fatalf("got %d tiles, want %d", len(tiles), len(want))
	}
	for _, tile := range tiles {
		if want[tile.At] != tile {
			t.Errorf("tile at %s = %+v, want %+v", tile.At, tile, want[tile.At])
		}
	}
}

func TestParseLayoutBitKindFollowsLastLetter(t *testing.T) {
	_, _, tiles, err := ParseLayout("A1O0")
	if err != nil {
		t.Fatalf("ParseLayout() error: %v", err)
	}
	kinds := map[grid.TileCoord]GateKind{}
	for _, tile := range tiles {
		if tile.Kind == TileBit {
			kinds[tile.At] = tile.Gate
		}
	}
	if kinds[grid.C(1, 0)] != GateAnd {
		t.Errorf("bit at (1,0) kind = %s, want AND", kinds[grid.C(1, 0)])
	}
	if kinds[grid.C(3, 0)] != GateOr {
		t.Errorf("bit at (3,0) kind = %s, want OR", kinds[grid.C(3, 0)])
	}
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   error
	}{
		{"empty", "", ErrEmptyLayout},
		{"blank lines", "\n\n", ErrEmptyLayout},
		{"bit first", "1X", ErrBitWithoutGate},
		{"kind does not carry over lines", "X1\n0", ErrBitWithoutGate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := ParseLayout(tt.layout)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseLayout(%q) error = %v, want %v", tt.layout, err, tt.want)
			}
		})
	}
}

func TestGeometrySets(t *testing.T) {
	s, err := New("t", "test", "", "W  E\nG01G", Spawn{Origin: grid.C(3, 0), Bits: []bool{true}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	geo := s.Geometry()

	if !geo.Walls.Contains(grid.C(0, 0)) {
		t.Error("layout wall missing from Walls")
	}
	for _, c := range []grid.TileCoord{grid.C(-1, -1), grid.C(4, 0), grid.C(0, 2), grid.C(-1, 1)} {
		if !geo.Walls.Contains(c) {
			t.Errorf("outline wall %s missing", c)
		}
	}
	for x := 0; x < 4; x++ {
		c := grid.C(x, 1)
		if !geo.Soft.Contains(c) || !geo.Hard.Contains(c) {
			t.Errorf("%s should be soft and hard", c)
		}
		if geo.Walls.Contains(c) {
			t.Errorf("%s should not be a wall", c)
		}
	}
	if len(geo.Gates) != 2 {
		t.Fatalf("got %d gates, want 2", len(geo.Gates))
	}
	gate, ok := geo.GateAt(grid.C(2, 1))
	if !ok || gate.Kind != GateEqual || !gate.Value {
		t.Errorf("GateAt((2,1)) = %v, %v", gate, ok)
	}
	if _, ok := geo.GateAt(grid.C(0, 1)); ok {
		t.Error("gate letter should not be a register")
	}
	if !geo.Goals.Contains(grid.C(3, 0)) {
		t.Error("goal missing")
	}
	if geo.Blockers(true).Contains(grid.C(1, 1)) {
		t.Error("expanded blockers should only be walls")
	}
	if !geo.Blockers(false).Contains(grid.C(1, 1)) {
		t.Error("contracted blockers should include soft tiles")
	}
	if got := geo.TileAt(grid.C(1, 0)).Kind; got != TileEmpty {
		t.Errorf("TileAt((1,0)).Kind = %d, want empty", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		spawn  Spawn
		want   error
	}{
		{"no bits", "   E", Spawn{Origin: grid.C(2, 0)}, ErrNoBits},
		{"no goal", "....", Spawn{Origin: grid.C(2, 0), Bits: []bool{true}}, ErrNoGoal},
		{"outside", "   E", Spawn{Origin: grid.C(9, 0), Bits: []bool{true}}, ErrOriginOutOfBounds},
		{"tail in wall", "W  E", Spawn{Origin: grid.C(2, 0), Bits: []bool{true}}, ErrOriginBlocked},
		{"head on gate", " X1X E", Spawn{Origin: grid.C(3, 0), Bits: []bool{true}}, ErrOriginBlocked},
		{"tail off layout", "   E", Spawn{Origin: grid.C(1, 0), Bits: []bool{true}}, ErrOriginBlocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("t", tt.name, "", tt.layout, tt.spawn)
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGateKindLetter(t *testing.T) {
	for r, kind := range gateLetters {
		if kind.Letter() != r {
			t.Errorf("%s.Letter() = %q, want %q", kind, kind.Letter(), r)
		}
	}
}
