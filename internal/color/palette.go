package color

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ansi16RGB maps ANSI colors 0-15 to approximate RGB values.
// These are typical terminal color values; actual values vary by terminal.
var ansi16RGB = [16][3]uint8{
	{0, 0, 0},       // 0: Black
	{205, 49, 49},   // 1: Red
	{13, 188, 121},  // 2: Green
	{229, 229, 16},  // 3: Yellow
	{36, 114, 200},  // 4: Blue
	{188, 63, 188},  // 5: Magenta
	{17, 168, 205},  // 6: Cyan
	{229, 229, 229}, // 7: White
	{102, 102, 102}, // 8: Bright Black (Gray)
	{241, 76, 76},   // 9: Bright Red
	{35, 209, 139},  // 10: Bright Green
	{245, 245, 67},  // 11: Bright Yellow
	{59, 142, 234},  // 12: Bright Blue
	{214, 112, 214}, // 13: Bright Magenta
	{41, 184, 219},  // 14: Bright Cyan
	{255, 255, 255}, // 15: Bright White
}

// cubeLevels are the channel intensities of the xterm 6x6x6 cube.
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// RGBValues returns the red, green, and blue components of a concrete color.
// Named and Indexed colors are approximated. Abstract colors return false.
func (c Color) RGBValues() (r, g, b uint8, ok bool) {
	switch c.kind {
	case KindRGB:
		return c.r, c.g, c.b, true
	case KindNamed:
		rgb := ansi16RGB[c.r&0x0f]
		return rgb[0], rgb[1], rgb[2], true
	case KindIndexed:
		r, g, b := indexedRGB(c.r)
		return r, g, b, true
	}
	return 0, 0, 0, false
}

func indexedRGB(idx uint8) (r, g, b uint8) {
	switch {
	case idx < 16:
		rgb := ansi16RGB[idx]
		return rgb[0], rgb[1], rgb[2]
	case idx < 232:
		// index = 16 + 36*r + 6*g + b where r,g,b are 0-5
		idx -= 16
		return cubeLevels[idx/36], cubeLevels[(idx%36)/6], cubeLevels[idx%6]
	default:
		// 24 shades from dark grey to light grey
		grey := 8 + (idx-232)*10
		return grey, grey, grey
	}
}

// ToIndexed approximates the color with an xterm 256-palette entry.
// Named colors map to their mirror indices 0-15. RGB colors map to the
// closer (in CIE Lab) of the nearest cube cell and the nearest grey-ramp
// step. Indexed and abstract colors are returned unchanged.
func (c Color) ToIndexed() Color {
	switch c.kind {
	case KindNamed:
		return Indexed(c.r)
	case KindRGB:
		target := toColorful(c.r, c.g, c.b)

		ri, gi, bi := nearestLevel(c.r), nearestLevel(c.g), nearestLevel(c.b)
		cube := uint8(16 + 36*ri + 6*gi + bi)

		avg := (int(c.r) + int(c.g) + int(c.b)) / 3
		step := (avg - 8 + 5) / 10
		step = max(0, min(23, step))
		grey := uint8(232 + step)

		if distanceTo(target, grey) < distanceTo(target, cube) {
			return Indexed(grey)
		}
		return Indexed(cube)
	}
	return c
}

// ToNamed approximates the color with the closest of the 16 ANSI colors
// in CIE Lab. Indexed entries 0-15 map exactly. Named and abstract colors
// are returned unchanged.
func (c Color) ToNamed() Color {
	switch c.kind {
	case KindIndexed:
		if c.r < 16 {
			return Named(NamedColor(c.r))
		}
	case KindRGB:
	default:
		return c
	}

	r, g, b, _ := c.RGBValues()
	target := toColorful(r, g, b)
	best, bestDist := 0, -1.0
	for i, rgb := range ansi16RGB {
		d := target.DistanceLab(toColorful(rgb[0], rgb[1], rgb[2]))
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return Named(NamedColor(best))
}

// Luminance returns the relative luminance of the color (0.0-1.0) using
// the W3C formula over linearized sRGB. Abstract colors report 0.
func (c Color) Luminance() float64 {
	r, g, b, ok := c.RGBValues()
	if !ok {
		// Default color luminance is unknown; assume dark background
		return 0.0
	}
	lr, lg, lb := toColorful(r, g, b).LinearRgb()
	return 0.2126*lr + 0.7152*lg + 0.0722*lb
}

// IsLight returns true if the color is perceptually light.
func (c Color) IsLight() bool {
	if c.IsAbstract() {
		return false // Assume default is dark
	}
	return c.Luminance() > 0.2
}

func toColorful(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func distanceTo(target colorful.Color, idx uint8) float64 {
	r, g, b := indexedRGB(idx)
	return target.DistanceLab(toColorful(r, g, b))
}

// nearestLevel returns the cube coordinate (0-5) whose intensity is closest to v.
func nearestLevel(v uint8) int {
	best, bestDiff := 0, 256
	for i, level := range cubeLevels {
		diff := int(v) - int(level)
		if diff < 0 {
			diff = -diff
		}
		if diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	return best
}
