package color

import "strings"

// NamedColor is one of the 16 standard ANSI colors. Values match the ANSI
// palette indices, so Red is 1 and its foreground escape is ESC[31m.
// The shade shown is defined by the user's terminal theme.
type NamedColor uint8

// Normal colors (SGR 30-37 foreground, 40-47 background).
const (
	Black NamedColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Bright colors (SGR 90-97 foreground, 100-107 background).
const (
	BrightBlack NamedColor = iota + 8 // usually rendered dark grey
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var namedColorNames = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

// ANSIIndex returns the palette index (0-15).
func (n NamedColor) ANSIIndex() uint8 {
	return uint8(n)
}

// IsBright returns true for the high-intensity half of the palette.
func (n NamedColor) IsBright() bool {
	return n >= BrightBlack
}

// Color returns n as a Color.
func (n NamedColor) Color() Color {
	return Named(n)
}

func (n NamedColor) String() string {
	if int(n) < len(namedColorNames) {
		return namedColorNames[n]
	}
	return "invalid"
}

// LookupNamed finds a named color by its kebab-case name. "grey"/"gray"
// is accepted for bright-black, and underscores for hyphens.
func LookupNamed(name string) (NamedColor, bool) {
	t := strings.ReplaceAll(strings.ToLower(name), "_", "-")
	if t == "grey" || t == "gray" {
		return BrightBlack, true
	}
	for i, candidate := range namedColorNames {
		if candidate == t {
			return NamedColor(i), true
		}
	}
	return 0, false
}
