package grid

import (
	"reflect"
	"testing"
)

func TestTravelRoute(t *testing.T) {
	tests := []struct {
		name     string
		travel   Travel
		origin   TileCoord
		expected []TileCoord
	}{
		{
			name:     "positive X",
			travel:   Travel{Axis: AxisX, Amount: 3},
			origin:   C(0, 0),
			expected: []TileCoord{C(1, 0), C(2, 0), C(3, 0)},
		},
		{
			name:     "negative X",
			travel:   Travel{Axis: AxisX, Amount: -2},
			origin:   C(0, 0),
			expected: []TileCoord{C(-1, 0), C(-2, 0)},
		},
		{
			name:     "unit down from offset origin",
			travel:   Down,
			origin:   C(4, 7),
			expected: []TileCoord{C(4, 8)},
		},
		{
			name:     "negative Y",
			travel:   Travel{Axis: AxisY, Amount: -3},
			origin:   C(2, 2),
			expected: []TileCoord{C(2, 1), C(2, 0), C(2, -1)},
		},
		{
			name:     "zero travel",
			travel:   None,
			origin:   C(1, 1),
			expected: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			route := tc.travel.Route(tc.origin)
			if !reflect.DeepEqual(route, tc.expected) {
				t.Errorf("Route(%v) = %v, expected %v", tc.origin, route, tc.expected)
			}
			if len(route) != tc.travel.Len() {
				t.Errorf("len(route) = %d, expected |amount| = %d", len(route), tc.travel.Len())
			}
			if len(route) > 0 && route[len(route)-1] != tc.travel.Apply(tc.origin) {
				t.Errorf("last route tile %v is not the destination %v", route[len(route)-1], tc.travel.Apply(tc.origin))
			}
		})
	}
}

func TestTravelDelta(t *testing.T) {
	if Up.Delta() != C(0, -1) {
		t.Errorf("Up.Delta() = %v", Up.Delta())
	}
	if Right.Delta() != C(1, 0) {
		t.Errorf("Right.Delta() = %v", Right.Delta())
	}
	if Left.Reverse() != Right {
		t.Error("Left.Reverse() should be Right")
	}
	if !None.IsZero() || Down.IsZero() {
		t.Error("IsZero mismatch")
	}
}

func TestWorldConversion(t *testing.T) {
	c := C(3, -2)
	w := ToWorld(c)
	if w.X != 48 || w.Y != -32 {
		t.Errorf("ToWorld(%v) = %+v", c, w)
	}
	if ToTile(w) != c {
		t.Errorf("ToTile(ToWorld(%v)) = %v", c, ToTile(w))
	}
	if ToTile(Vec{X: 23, Y: -9}) != C(1, -1) {
		t.Errorf("ToTile rounding = %v", ToTile(Vec{X: 23, Y: -9}))
	}
}

func TestHalfWorld(t *testing.T) {
	if got := Left.HalfWorld(); got.X != -8 || got.Y != 0 {
		t.Errorf("Left.HalfWorld() = %+v", got)
	}
	if got := Down.HalfWorld(); got.X != 0 || got.Y != 8 {
		t.Errorf("Down.HalfWorld() = %+v", got)
	}
}
