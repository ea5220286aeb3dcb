package core

// Color is the role a screen cell plays. The game draws roles; the
// platform decides how each role looks through a Palette.
type Color uint8

const (
	ColorDefault Color = iota
	ColorText          // HUD and overlay body
	ColorMuted         // hints and controls
	ColorTitle         // overlay headings
	ColorWall
	ColorGoal
	ColorGate
	ColorBit
	ColorMismatch // register of a gate that refused the last move
	ColorHead
	ColorHeadInflated
	ColorHeadBumped
	ColorRegister
	ColorTail

	colorCount
)

var colorNames = [colorCount]string{
	ColorDefault:      "default",
	ColorText:         "text",
	ColorMuted:        "muted",
	ColorTitle:        "title",
	ColorWall:         "wall",
	ColorGoal:         "goal",
	ColorGate:         "gate",
	ColorBit:          "bit",
	ColorMismatch:     "mismatch",
	ColorHead:         "head",
	ColorHeadInflated: "head_inflated",
	ColorHeadBumped:   "head_bumped",
	ColorRegister:     "register",
	ColorTail:         "tail",
}

// String returns the role name used in theme files.
func (c Color) String() string {
	if c >= colorCount {
		return "unknown"
	}
	return colorNames[c]
}

// ParseColor looks up a role by its theme name.
func ParseColor(name string) (Color, bool) {
	for c, n := range colorNames {
		if n == name {
			return Color(c), true
		}
	}
	return ColorDefault, false
}

// Colors returns every role in declaration order.
func Colors() []Color {
	all := make([]Color, colorCount)
	for i := range all {
		all[i] = Color(i)
	}
	return all
}

// Palette maps roles to terminal colors: ANSI 0-255 codes or "#rrggbb".
// A missing or empty entry leaves the terminal's foreground alone.
type Palette map[Color]string

// DefaultPalette is the stock look: gray walls, green goals, yellow gates,
// cyan bits and a magenta body.
func DefaultPalette() Palette {
	return Palette{
		ColorText:         "7",
		ColorMuted:        "245",
		ColorTitle:        "11",
		ColorWall:         "245",
		ColorGoal:         "10",
		ColorGate:         "3",
		ColorBit:          "6",
		ColorMismatch:     "9",
		ColorHead:         "11",
		ColorHeadInflated: "14",
		ColorHeadBumped:   "1",
		ColorRegister:     "13",
		ColorTail:         "208",
	}
}

// With returns a copy of p with the given overrides applied.
func (p Palette) With(overrides Palette) Palette {
	out := make(Palette, len(p)+len(overrides))
	for c, v := range p {
		out[c] = v
	}
	for c, v := range overrides {
		out[c] = v
	}
	return out
}
