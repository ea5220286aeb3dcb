// Package stage turns stage files into the static geometry the boxfish moves
// through: typed tiles, logic gate registers and the collision sets.
// The engine consumes Geometry and Spawn; it never parses stage text itself.
package stage

import (
	"fmt"

	"github.com/vovakirdan/boxfish/internal/grid"
)

// GateKind is the boolean operator a gate applies to a passing register.
type GateKind uint8

const (
	GateAnd GateKind = iota
	GateOr
	GateNot
	GateXor
	GateUndo
	GateEqual
)

// String returns the string representation of a gate kind.
func (k GateKind) String() string {
	switch k {
	case GateAnd:
		return "AND"
	case GateOr:
		return "OR"
	case GateNot:
		return "NOT"
	case GateXor:
		return "XOR"
	case GateUndo:
		return "UNDO"
	case GateEqual:
		return "EQUAL"
	default:
		return "UNKNOWN"
	}
}

// Mutates returns true if the gate can change a register's value.
func (k GateKind) Mutates() bool {
	return k != GateEqual
}

// gateLetters maps layout characters to gate kinds.
var gateLetters = map[rune]GateKind{
	'A': GateAnd,
	'O': GateOr,
	'N': GateNot,
	'X': GateXor,
	'U': GateUndo,
	'G': GateEqual,
}

// Letter returns the layout character for the kind.
func (k GateKind) Letter() rune {
	for r, kind := range gateLetters {
		if kind == k {
			return r
		}
	}
	return '?'
}

// LogicGateTile is one register cell of a gate: the operand value and the
// operator applied to registers that sweep over it. Immutable once built.
type LogicGateTile struct {
	At    grid.TileCoord
	Value bool
	Kind  GateKind
}

// String returns a short description such as "XOR(1)@(3,4)".
func (g LogicGateTile) String() string {
	v := 0
	if g.Value {
		v = 1
	}
	return fmt.Sprintf("%s(%d)@%s", g.Kind, v, g.At)
}

// TileKind classifies a stage cell.
type TileKind uint8

const (
	TileEmpty TileKind = iota
	TileWall
	TileGate // gate letter; blocks unless expanded
	TileBit  // gate register; blocks unless expanded
	TileGoal
)

// Tile is a single typed stage cell.
type Tile struct {
	At    grid.TileCoord
	Kind  TileKind
	Gate  GateKind // valid for TileGate and TileBit
	Value bool     // valid for TileBit
}
