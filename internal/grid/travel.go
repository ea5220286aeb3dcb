package grid

import (
	"math"
	"strconv"
)

// Axis selects the direction a Travel moves along.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// String returns the string representation of an axis.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	default:
		return "Unknown"
	}
}

// Travel is a signed displacement along a single axis.
// Amount is ±1 for player input but sweeps may use larger magnitudes.
type Travel struct {
	Axis   Axis
	Amount int
}

// Unit travels for the four cardinal intents.
var (
	Up    = Travel{Axis: AxisY, Amount: -1}
	Down  = Travel{Axis: AxisY, Amount: 1}
	Left  = Travel{Axis: AxisX, Amount: -1}
	Right = Travel{Axis: AxisX, Amount: 1}
)

// None is the zero travel; IsZero reports true for it.
var None = Travel{}

// IsZero returns true if the travel does not move.
func (t Travel) IsZero() bool {
	return t.Amount == 0
}

// Len returns the number of tiles crossed.
func (t Travel) Len() int {
	if t.Amount < 0 {
		return -t.Amount
	}
	return t.Amount
}

// Delta returns the total displacement as a coordinate.
func (t Travel) Delta() TileCoord {
	if t.Axis == AxisY {
		return TileCoord{Y: t.Amount}
	}
	return TileCoord{X: t.Amount}
}

// Reverse returns the travel pointing the other way.
func (t Travel) Reverse() Travel {
	return Travel{Axis: t.Axis, Amount: -t.Amount}
}

// Apply returns origin moved by the full travel.
func (t Travel) Apply(origin TileCoord) TileCoord {
	return origin.AddCoord(t.Delta())
}

// Route returns the tiles visited when travelling from origin, one per unit
// of magnitude, in travel order. The origin is excluded and the destination
// is the last element.
func (t Travel) Route(origin TileCoord) []TileCoord {
	n := t.Len()
	if n == 0 {
		return nil
	}
	sign := 1
	if t.Amount < 0 {
		sign = -1
	}
	route := make([]TileCoord, n)
	for i := 1; i <= n; i++ {
		step := sign * i
		if t.Axis == AxisY {
			route[i-1] = origin.Add(0, step)
		} else {
			route[i-1] = origin.Add(step, 0)
		}
	}
	return route
}

// HalfWorld returns half of the travel's unit direction in world units,
// the amplitude of the bounce animation.
func (t Travel) HalfWorld() Vec {
	if t.Amount == 0 {
		return Vec{}
	}
	s := math.Copysign(TileSize/2, float64(t.Amount))
	if t.Axis == AxisY {
		return Vec{Y: s}
	}
	return Vec{X: s}
}

// String returns a short human-readable form such as "X+1".
func (t Travel) String() string {
	sign := "+"
	if t.Amount < 0 {
		sign = "-"
	}
	return t.Axis.String() + sign + strconv.Itoa(t.Len())
}
