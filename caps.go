package tcss

import (
	"os"
	"strings"
)

// ColorCapability is the richest color palette a terminal can show.
type ColorCapability uint8

const (
	// CapNoColor means colors must not be emitted (TERM=dumb or NO_COLOR).
	CapNoColor ColorCapability = iota
	// Cap16 is the 16 ANSI colors.
	Cap16
	// Cap256 is the xterm 256-color palette.
	Cap256
	// CapTrueColor is 24-bit RGB.
	CapTrueColor
)

func (c ColorCapability) String() string {
	switch c {
	case CapNoColor:
		return "no-color"
	case Cap16:
		return "16-color"
	case Cap256:
		return "256-color"
	case CapTrueColor:
		return "true-color"
	}
	return "unknown"
}

// Capabilities describes what the terminal can render.
type Capabilities struct {
	Colors  ColorCapability
	Unicode bool // Box-drawing glyphs are available
}

// DetectCapabilities determines terminal capabilities from environment variables
// and returns a Capabilities struct with detected settings.
// Returns conservative defaults when detection fails.
func DetectCapabilities() Capabilities {
	caps := Capabilities{
		Colors:  Cap16, // Safe default for most terminals
		Unicode: true,  // Assume modern terminal
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if term == "dumb" {
		return Capabilities{Colors: CapNoColor, Unicode: false}
	}

	// https://no-color.org: any non-empty value disables color output.
	if os.Getenv("NO_COLOR") != "" {
		caps.Colors = CapNoColor
		return caps
	}

	if hasTrueColorIndicator() {
		caps.Colors = CapTrueColor
		return caps
	}

	switch {
	case strings.Contains(term, "256color"):
		caps.Colors = Cap256
	case strings.Contains(term, "truecolor"), strings.Contains(term, "direct"):
		caps.Colors = CapTrueColor
	}
	return caps
}

// hasTrueColorIndicator reports explicit true color support: COLORTERM, or
// a terminal emulator known to support it (Windows Terminal, iTerm2,
// Kitty, Konsole, VTE-based terminals).
func hasTrueColorIndicator() bool {
	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		return true
	}
	for _, key := range []string{"WT_SESSION", "ITERM_SESSION_ID", "KITTY_WINDOW_ID", "KONSOLE_VERSION", "VTE_VERSION"} {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return false
}

// SupportsColor returns true if c can be shown without degradation.
// Abstract colors are always supported.
func (c Capabilities) SupportsColor(col Color) bool {
	switch col.Kind() {
	case ColorKindNone, ColorKindInherit:
		return true
	case ColorKindNamed:
		return c.Colors >= Cap16
	case ColorKindIndexed:
		if idx, _ := col.AsIndex(); idx < 16 {
			return c.Colors >= Cap16
		}
		return c.Colors >= Cap256
	case ColorKindRGB:
		return c.Colors >= CapTrueColor
	}
	return false
}

// Degrade returns the closest color the terminal can show. True color
// degrades to the 256 palette, then to the 16 named colors; without
// color support everything becomes None. Abstract colors are unchanged.
func (c Capabilities) Degrade(col Color) Color {
	if col.IsAbstract() || c.SupportsColor(col) {
		return col
	}
	switch c.Colors {
	case Cap256:
		return col.ToIndexed()
	case Cap16:
		return col.ToNamed()
	default:
		return NoColor()
	}
}

// DegradeStyle degrades the foreground, background and border colors of s.
// Absent fields stay absent.
func (c Capabilities) DegradeStyle(s Style) Style {
	if v, ok := s.Color.Get(); ok {
		s.Color = Some(c.Degrade(v))
	}
	if v, ok := s.Background.Get(); ok {
		s.Background = Some(c.Degrade(v))
	}
	if b, ok := s.Border.Get(); ok {
		if v, ok := b.Color.Get(); ok {
			b.Color = Some(c.Degrade(v))
			s.Border = Some(b)
		}
	}
	return s
}

// BorderGlyphs returns the glyphs for style, substituting ASCII when the
// terminal lacks Unicode box drawing.
func (c Capabilities) BorderGlyphs(style BorderStyle) BorderGlyphs {
	g := style.Glyphs()
	if c.Unicode || g.IsZero() {
		return g
	}
	return BorderGlyphs{Horizontal: '-', Vertical: '|', TopLeft: '+', TopRight: '+', BottomLeft: '+', BottomRight: '+'}
}

// String returns a human-readable description of the capabilities.
func (c Capabilities) String() string {
	parts := []string{c.Colors.String()}
	if c.Unicode {
		parts = append(parts, "unicode")
	} else {
		parts = append(parts, "ascii")
	}
	return strings.Join(parts, ", ")
}
