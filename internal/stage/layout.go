package stage

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/boxfish/internal/grid"
)

// Layout errors.
var (
	ErrEmptyLayout    = errors.New("stage: empty layout")
	ErrBitWithoutGate = errors.New("stage: expected a gate letter before any bit")
)

// ParseLayout interprets a character layout.
//
// Characters:
//
//	W        wall
//	E        goal
//	A O N X  AND, OR, NOT, XOR gate letter
//	G U      EQUAL, UNDO gate letter
//	0 1      gate register; takes the kind of the last gate letter on its line
//	space .  empty
//
// Unknown characters are treated as empty.
func ParseLayout(layout string) (width, height int, tiles []Tile, err error) {
	layout = strings.ReplaceAll(layout, "\r\n", "\n")
	layout = strings.TrimRight(layout, "\n")
	if strings.TrimSpace(layout) == "" {
		return 0, 0, nil, ErrEmptyLayout
	}

	lines := strings.Split(layout, "\n")
	height = len(lines)
	for y, line := range lines {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
		lineTiles, lineErr := parseLine(line, y)
		if lineErr != nil {
			return 0, 0, nil, lineErr
		}
		tiles = append(tiles, lineTiles...)
	}
	return width, height, tiles, nil
}

// parseLine interprets one row. A gate reads as letter, registers, letter:
// "X101X" is a single XOR gate with three registers.
func parseLine(line string, y int) ([]Tile, error) {
	var (
		tiles   []Tile
		bitKind GateKind
		hasKind bool
	)

	x := 0
	for _, ch := range line {
		at := grid.C(x, y)
		x++

		if kind, ok := gateLetters[ch]; ok {
			bitKind, hasKind = kind, true
			tiles = append(tiles, Tile{At: at, Kind: TileGate, Gate: kind})
			continue
		}

		switch ch {
		case '0', '1':
			if !hasKind {
				return nil, fmt.Errorf("%w: %q at %s", ErrBitWithoutGate, ch, at)
			}
			tiles = append(tiles, Tile{At: at, Kind: TileBit, Gate: bitKind, Value: ch == '1'})
		case 'W':
			tiles = append(tiles, Tile{At: at, Kind: TileWall})
		case 'E':
			tiles = append(tiles, Tile{At: at, Kind: TileGoal})
		}
	}
	return tiles, nil
}
