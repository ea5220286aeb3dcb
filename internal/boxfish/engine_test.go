package boxfish

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/boxfish/internal/grid"
	"github.com/vovakirdan/boxfish/internal/stage"
)

// load builds an engine on a raw layout. Spawn validation is skipped so
// tests can place the boxfish anywhere.
func load(t *testing.T, layout string, origin grid.TileCoord, bits ...bool) *Engine {
	t.Helper()
	w, h, tiles, err := stage.ParseLayout(layout)
	require.NoError(t, err)

	e := NewEngine(DefaultTuning())
	e.Load(stage.Build(w, h, tiles), stage.Spawn{Origin: origin, Bits: bits})
	return e
}

// settle ticks until the head and body have stopped animating.
func settle(e *Engine, inflate bool) {
	for i := 0; i < 100; i++ {
		if e.Motion().Phase == MotionSettled && e.Avatar().BodySettled() {
			return
		}
		e.Tick(Intent{Inflate: inflate}, 1)
	}
}

func step(e *Engine, travel grid.Travel, inflate bool) {
	e.Tick(Intent{Travel: travel, Inflate: inflate}, 1)
	settle(e, inflate)
}

func inflate(t *testing.T, e *Engine) {
	t.Helper()
	e.Tick(Intent{Inflate: true}, 1)
	settle(e, true)
	require.Equal(t, Extended, e.Expansion())
}

func TestNewAvatar(t *testing.T) {
	a := NewAvatar(stage.Spawn{Origin: grid.C(4, 2), Bits: []bool{true, false, true}})

	require.Len(t, a.Segments, 4)
	for i, s := range a.Segments {
		assert.Equal(t, i, s.Index)
	}
	assert.True(t, a.Segments[3].Tail)
	assert.Nil(t, a.Segments[3].Register)
	assert.Equal(t, []bool{true, false, true}, a.Bits())
	assert.Equal(t, 2, a.Extent())
	assert.Equal(t, grid.ToWorld(grid.C(4, 2)), a.Head.Pos)
	assert.True(t, a.BodySettled())
	assert.Equal(t, []grid.TileCoord{
		grid.C(4, 2), grid.C(3, 2), grid.C(3, 2), grid.C(3, 2), grid.C(2, 2),
	}, a.Occupied())
}

func TestMoveCommits(t *testing.T) {
	e := load(t, "........", grid.C(3, 0), true)

	step(e, grid.Right, false)

	a := e.Avatar()
	assert.Equal(t, grid.C(4, 0), a.Head.Tile)
	assert.Equal(t, grid.ToWorld(grid.C(4, 0)), a.Head.Pos)
	assert.Equal(t, []grid.TileCoord{grid.C(3, 0)}, a.Head.History())
	assert.Equal(t, 1, e.Steps())
	assert.Equal(t, []Event{
		EventMoved{Travel: grid.Right, From: grid.C(3, 0), To: grid.C(4, 0)},
	}, e.Drain())
	assert.Empty(t, e.Drain())
}

func TestMoveInterpolates(t *testing.T) {
	e := load(t, "........", grid.C(3, 0), true)
	start := grid.ToWorld(grid.C(3, 0))

	e.Tick(Intent{Travel: grid.Right}, 0.1)
	assert.Equal(t, MotionInterpolating, e.Motion().Phase)
	assert.Equal(t, start, e.Avatar().Head.Pos)

	e.Tick(Intent{Travel: grid.Right}, 0.1)
	assert.Equal(t, MotionInterpolating, e.Motion().Phase)
	assert.InDelta(t, start.X+8, e.Avatar().Head.Pos.X, 1e-9)

	e.Tick(Intent{Travel: grid.Right}, 0.1)
	assert.Equal(t, MotionSettled, e.Motion().Phase)
	assert.Equal(t, grid.ToWorld(grid.C(4, 0)), e.Avatar().Head.Pos)
	assert.Equal(t, 1, e.Steps(), "input while sliding is ignored")
}

func TestBlockedMove(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		origin grid.TileCoord
		travel grid.Travel
	}{
		{"wall ahead", "...W....", grid.C(2, 0), grid.Right},
		{"wall above tail", "W.......\n........", grid.C(2, 1), grid.Up},
		{"outline", "........", grid.C(7, 0), grid.Right},
		{"gate while contracted", "........\n..X1X...", grid.C(4, 0), grid.Down},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := load(t, tt.layout, tt.origin, true)

			e.Tick(Intent{Travel: tt.travel}, 0.016)

			assert.Equal(t, tt.origin, e.Avatar().Head.Tile)
			assert.Equal(t, 0, e.Steps())
			assert.Empty(t, e.Avatar().Head.History())
			assert.Equal(t, MotionCollided, e.Motion().Phase)
			assert.Equal(t, []Event{EventCollided{Travel: tt.travel}}, e.Drain())
		})
	}
}

func TestBounce(t *testing.T) {
	e := load(t, "...W....", grid.C(2, 0), true)
	base := grid.ToWorld(grid.C(2, 0))

	e.Tick(Intent{Travel: grid.Right}, 0.016)
	require.Equal(t, MotionCollided, e.Motion().Phase)

	e.Tick(Intent{}, (math.Pi/2)/6)
	assert.InDelta(t, base.X+grid.TileSize/2, e.Avatar().Head.Pos.X, 1e-6)

	e.Tick(Intent{Travel: grid.Left}, (math.Pi/2)/6+0.01)
	assert.Equal(t, MotionSettled, e.Motion().Phase)
	assert.Equal(t, base, e.Avatar().Head.Pos)
	assert.Equal(t, grid.C(2, 0), e.Avatar().Head.Tile, "input during the bounce is ignored")
}

// gateLayout puts a single gate register at (2,1) for a one-bit boxfish
// standing at (3,2).
func gateLayout(kind stage.GateKind, value bool) string {
	v := '0'
	if value {
		v = '1'
	}
	l := kind.Letter()
	return fmt.Sprintf("......\n.%c%c%c..\n......", l, v, l)
}

func TestGateTruth(t *testing.T) {
	tests := []struct {
		kind    stage.GateKind
		bit     bool
		gate    bool
		want    bool
		history []bool
	}{
		{stage.GateAnd, true, true, true, []bool{true}},
		{stage.GateAnd, true, false, false, []bool{true}},
		{stage.GateAnd, false, true, false, []bool{false}},
		{stage.GateOr, false, false, false, []bool{false}},
		{stage.GateOr, false, true, true, []bool{false}},
		{stage.GateOr, true, false, true, []bool{true}},
		{stage.GateXor, true, true, false, []bool{true}},
		{stage.GateXor, false, true, true, []bool{false}},
		{stage.GateXor, true, false, true, []bool{true}},
		{stage.GateNot, true, true, false, []bool{true}},
		{stage.GateNot, false, true, true, []bool{false}},
		{stage.GateNot, true, false, true, nil},
		{stage.GateNot, false, false, false, nil},
		{stage.GateEqual, true, true, true, nil},
		{stage.GateEqual, false, false, false, nil},
		{stage.GateUndo, true, false, true, nil},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s(%v,%v)", tt.kind, tt.bit, tt.gate), func(t *testing.T) {
			e := load(t, gateLayout(tt.kind, tt.gate), grid.C(3, 2), tt.bit)
			inflate(t, e)
			e.Drain()

			step(e, grid.Up, true)

			reg := e.Avatar().Registers()[0]
			assert.Equal(t, tt.want, reg.Value)
			assert.Equal(t, tt.history, reg.History())
			assert.Equal(t, grid.C(3, 1), e.Avatar().Head.Tile)
			assert.Equal(t, 1, e.Steps())
		})
	}
}

func TestUndoGatePopsHistory(t *testing.T) {
	e := load(t, "......\n.U1U..\n.A0A..\n......", grid.C(3, 3), true)
	inflate(t, e)

	step(e, grid.Up, true)
	reg := e.Avatar().Registers()[0]
	require.False(t, reg.Value)
	require.Equal(t, []bool{true}, reg.History())

	step(e, grid.Up, true)
	assert.True(t, reg.Value)
	assert.Empty(t, reg.History())
	assert.Equal(t, 2, e.Steps())
}

func TestContractedRegistersSweepByIndex(t *testing.T) {
	// Register 2 starts three tiles behind the head even though the
	// contracted body ends two tiles back.
	e := load(t, "........\nN.1.....\n........", grid.C(5, 2), false, false, false)
	require.Equal(t, Contracted, e.Expansion())

	step(e, grid.Up, false)

	regs := e.Avatar().Registers()
	assert.Equal(t, grid.C(5, 1), e.Avatar().Head.Tile)
	assert.Equal(t, []bool{false, false, true}, e.Avatar().Bits())
	assert.Empty(t, regs[0].History())
	assert.Empty(t, regs[1].History())
	assert.Equal(t, []bool{false}, regs[2].History())
}

func TestEqualVeto(t *testing.T) {
	e := load(t, gateLayout(stage.GateEqual, false), grid.C(3, 2), true)
	inflate(t, e)
	e.Drain()

	e.Tick(Intent{Travel: grid.Up, Inflate: true}, 0.016)

	a := e.Avatar()
	assert.Equal(t, grid.C(3, 2), a.Head.Tile)
	assert.Empty(t, a.Head.History())
	assert.True(t, a.Registers()[0].Value)
	assert.Empty(t, a.Registers()[0].History())
	assert.Equal(t, 0, e.Steps())
	assert.Equal(t, MotionCollided, e.Motion().Phase)
	assert.Equal(t, []Event{EventGateMismatch{At: grid.C(2, 1), Travel: grid.Up}}, e.Drain())
}

func TestEqualVetoIsTransactional(t *testing.T) {
	// Both registers pass XOR 1 and then EQUAL 0 in a single two-tile sweep.
	layout := "....\nG00G\nX11X\n...."

	t.Run("commit", func(t *testing.T) {
		e := load(t, layout, grid.C(3, 3), true, true)
		inflate(t, e)

		step(e, grid.Travel{Axis: grid.AxisY, Amount: -2}, true)

		assert.Equal(t, grid.C(3, 1), e.Avatar().Head.Tile)
		assert.Equal(t, []bool{false, false}, e.Avatar().Bits())
		assert.Equal(t, 1, e.Steps())
	})

	t.Run("veto", func(t *testing.T) {
		e := load(t, layout, grid.C(3, 3), true, false)
		inflate(t, e)
		e.Drain()

		e.Tick(Intent{Travel: grid.Travel{Axis: grid.AxisY, Amount: -2}, Inflate: true}, 0.016)

		a := e.Avatar()
		assert.Equal(t, grid.C(3, 3), a.Head.Tile)
		assert.Equal(t, []bool{true, false}, a.Bits(), "register 0 passed but must not change")
		for _, r := range a.Registers() {
			assert.Empty(t, r.History())
		}
		assert.Equal(t, 0, e.Steps())
		assert.Equal(t, []Event{
			EventGateMismatch{At: grid.C(1, 1), Travel: grid.Travel{Axis: grid.AxisY, Amount: -2}},
		}, e.Drain())
	})
}

func TestUndoRoundTrip(t *testing.T) {
	e := load(t, gateLayout(stage.GateXor, true), grid.C(3, 2), true)
	inflate(t, e)
	step(e, grid.Up, true)
	require.False(t, e.Avatar().Registers()[0].Value)
	e.Drain()

	e.Tick(Intent{Undo: true, Inflate: true}, 0.016)

	a := e.Avatar()
	assert.Equal(t, grid.C(3, 2), a.Head.Tile)
	assert.Equal(t, grid.ToWorld(grid.C(3, 2)), a.Head.Pos)
	assert.True(t, a.Registers()[0].Value)
	assert.Empty(t, a.Head.History())
	assert.Empty(t, a.Registers()[0].History())
	assert.Equal(t, 1, e.Steps(), "undo does not give steps back")
	assert.True(t, a.Head.Expanding, "undo does not touch inflation")
	assert.Equal(t, []Event{EventUndone{To: grid.C(3, 2)}}, e.Drain())
}

func TestUndoPopsIndependently(t *testing.T) {
	e := load(t, "......\n.X1X..\n......\n......", grid.C(3, 3), false)
	inflate(t, e)
	step(e, grid.Up, true)
	step(e, grid.Up, true)
	reg := e.Avatar().Registers()[0]
	require.True(t, reg.Value)

	e.Tick(Intent{Undo: true, Inflate: true}, 0.016)
	assert.Equal(t, grid.C(3, 2), e.Avatar().Head.Tile)
	assert.False(t, reg.Value, "register pops its own latest entry")

	e.Tick(Intent{Undo: true, Inflate: true}, 0.016)
	assert.Equal(t, grid.C(3, 3), e.Avatar().Head.Tile)
	assert.False(t, reg.Value)
}

func TestUndoEndsTick(t *testing.T) {
	e := load(t, "........", grid.C(2, 0), true)

	e.Tick(Intent{Travel: grid.Right}, 0.016)
	e.Tick(Intent{Travel: grid.Right}, 0.016)
	require.Equal(t, MotionInterpolating, e.Motion().Phase)

	e.Tick(Intent{Travel: grid.Right, Undo: true}, 0.016)

	a := e.Avatar()
	assert.Equal(t, grid.C(2, 0), a.Head.Tile)
	assert.Empty(t, a.Head.History())
	assert.Equal(t, 1, e.Steps())
	assert.Equal(t, []Event{
		EventMoved{Travel: grid.Right, From: grid.C(2, 0), To: grid.C(3, 0)},
		EventUndone{To: grid.C(2, 0)},
	}, e.Drain())

	e.Tick(Intent{Travel: grid.Right}, 0.016)
	assert.Equal(t, grid.C(3, 0), a.Head.Tile, "moves again on the next tick")
}

func TestUndoEmpty(t *testing.T) {
	e := load(t, "........", grid.C(3, 0), true, false)

	e.Tick(Intent{Undo: true}, 0.016)

	assert.Equal(t, grid.C(3, 0), e.Avatar().Head.Tile)
	assert.Equal(t, []bool{true, false}, e.Avatar().Bits())
	assert.Empty(t, e.Drain())
}

func TestInflate(t *testing.T) {
	e := load(t, "........", grid.C(6, 0), true, false)

	e.Tick(Intent{Inflate: true}, 0.01)
	assert.Equal(t, Extending, e.Expansion())
	assert.Equal(t, []Event{EventInflated{Expanding: true}}, e.Drain())

	settle(e, true)
	for i, s := range e.Avatar().Segments {
		assert.Equal(t, i+1, s.Ideal)
		assert.Equal(t, float64(i+1), s.Offset)
	}
	assert.Equal(t, 3, e.Avatar().Extent())

	e.Tick(Intent{}, 0.01)
	assert.Equal(t, Retracting, e.Expansion())
	settle(e, false)
	assert.Equal(t, Contracted, e.Expansion())
	assert.Equal(t, 2, e.Avatar().Extent())
}

func TestInflateClampedByWall(t *testing.T) {
	tests := []struct {
		name   string
		origin grid.TileCoord
		ideals []int
	}{
		{"wall two behind", grid.C(2, 0), []int{1, 1, 1}},
		{"wall three behind", grid.C(3, 0), []int{1, 2, 2}},
		{"room to spare", grid.C(5, 0), []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := load(t, "W.....", tt.origin, true, true)

			e.Tick(Intent{Inflate: true}, 1)
			settle(e, true)

			a := e.Avatar()
			require.True(t, a.Head.Expanding)
			for i, s := range a.Segments {
				assert.Equal(t, tt.ideals[i], s.Ideal, "segment %d", i)
				assert.Equal(t, float64(tt.ideals[i]), s.Offset, "segment %d", i)
				assert.False(t, e.Geometry().Walls.Contains(a.Head.Tile.Behind(s.Ideal)))
			}
		})
	}
}

func TestInflateStartled(t *testing.T) {
	e := load(t, "W.....", grid.C(1, 0), true)

	e.Tick(Intent{Inflate: true}, 0.016)

	assert.False(t, e.Avatar().Head.Expanding)
	assert.Equal(t, Contracted, e.Expansion())
	m := e.Motion()
	assert.Equal(t, MotionCollided, m.Phase)
	assert.True(t, m.Startled)
	assert.Equal(t, grid.Left, m.Bounce)
	assert.Equal(t, []Event{EventStartled{}}, e.Drain())

	e.Tick(Intent{Inflate: true}, 0.016)
	assert.Empty(t, e.Drain(), "no retry while the bounce plays")
}

func TestInflatedMoveIgnoresSoftTiles(t *testing.T) {
	e := load(t, "........\n..X1X...\n........", grid.C(4, 0), true)
	inflate(t, e)

	step(e, grid.Down, true)

	assert.Equal(t, grid.C(4, 1), e.Avatar().Head.Tile)
	assert.Equal(t, 1, e.Steps())
}

func TestOnGoal(t *testing.T) {
	e := load(t, "..E.....", grid.C(6, 0), true)
	assert.False(t, e.OnGoal())

	step(e, grid.Left, false)
	assert.False(t, e.OnGoal())

	step(e, grid.Left, false)
	assert.True(t, e.OnGoal(), "tail on the goal counts")
}

func TestLoadKeepsSteps(t *testing.T) {
	e := load(t, "........", grid.C(3, 0), true)
	step(e, grid.Right, false)

	w, h, tiles, err := stage.ParseLayout("........")
	require.NoError(t, err)
	e.Load(stage.Build(w, h, tiles), stage.Spawn{Origin: grid.C(3, 0), Bits: []bool{true}})

	assert.Equal(t, 1, e.Steps())
	assert.Empty(t, e.Avatar().Head.History())

	e.ResetSteps()
	assert.Equal(t, 0, e.Steps())
}

func TestTickBeforeLoadPanics(t *testing.T) {
	e := NewEngine(Tuning{})
	assert.False(t, e.Loaded())
	assert.Panics(t, func() { e.Tick(Intent{}, 0.016) })
}
