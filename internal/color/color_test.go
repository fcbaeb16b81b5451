package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroColorIsNone(t *testing.T) {
	var c Color
	assert.Equal(t, None(), c)
	assert.Equal(t, KindNone, c.Kind())
	assert.True(t, c.IsNone())
}

func TestFromHexBytes_Valid(t *testing.T) {
	type tc struct {
		hex      string
		expected Color
	}

	tests := map[string]tc{
		"orange":     {hex: "#ff5f00", expected: RGB(255, 95, 0)},
		"mixed case": {hex: "#aAbBcC", expected: RGB(170, 187, 204)},
		"black":      {hex: "#000000", expected: RGB(0, 0, 0)},
		"white":      {hex: "#FFFFFF", expected: RGB(255, 255, 255)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := FromHexBytes([]byte(tt.hex))
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)

			got, ok = Hex(tt.hex)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFromHexBytes_Invalid(t *testing.T) {
	tests := map[string]string{
		"no hash":       "ff5f00",
		"shorthand":     "#fff",
		"empty":         "",
		"bad nibble":    "#ff5fgg",
		"too long":      "#ff5f0000",
		"hash only":     "#",
		"non ascii":     "#ff5f0é",
		"wrong leading": "$ff5f00",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := FromHexBytes([]byte(input))
			assert.False(t, ok)
			assert.Equal(t, Color{}, got)
			_, ok = Hex(input)
			assert.False(t, ok)
		})
	}
}

func TestFromHexBytes_NilIsSafe(t *testing.T) {
	_, ok := FromHexBytes(nil)
	assert.False(t, ok)
}

func TestColor_IsAbstract(t *testing.T) {
	type tc struct {
		color    Color
		abstract bool
	}

	tests := map[string]tc{
		"none":    {color: None(), abstract: true},
		"inherit": {color: Inherit(), abstract: true},
		"rgb":     {color: RGB(0, 0, 0), abstract: false},
		"named":   {color: Named(Red), abstract: false},
		"indexed": {color: Indexed(0), abstract: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.abstract, tt.color.IsAbstract())
		})
	}
}

func TestColor_Accessors(t *testing.T) {
	n, ok := Named(Cyan).AsNamed()
	assert.True(t, ok)
	assert.Equal(t, Cyan, n)
	assert.Equal(t, uint8(6), n.ANSIIndex())

	i, ok := Indexed(240).AsIndex()
	assert.True(t, ok)
	assert.Equal(t, uint8(240), i)

	r, g, b, ok := RGB(1, 2, 3).AsRGB()
	assert.True(t, ok)
	assert.Equal(t, [3]uint8{1, 2, 3}, [3]uint8{r, g, b})

	_, ok = RGB(1, 2, 3).AsNamed()
	assert.False(t, ok)
	_, ok = Named(Red).AsIndex()
	assert.False(t, ok)
	_, _, _, ok = Indexed(3).AsRGB()
	assert.False(t, ok)
}

func TestNamed_OutOfRange(t *testing.T) {
	type tc struct {
		input    NamedColor
		expected Color
	}

	tests := map[string]tc{
		"first named":   {input: Black, expected: Color{kind: KindNamed, r: 0}},
		"last named":    {input: BrightWhite, expected: Color{kind: KindNamed, r: 15}},
		"first past":    {input: NamedColor(16), expected: Indexed(16)},
		"does not wrap": {input: NamedColor(17), expected: Indexed(17)},
		"top of range":  {input: NamedColor(255), expected: Indexed(255)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Named(tt.input)
			assert.Equal(t, tt.expected, got)
			if tt.input > BrightWhite {
				assert.NotEqual(t, Named(Black), got, "must not alias a named color")
			}
		})
	}
}

func TestNamedColor_IndicesMatchANSI(t *testing.T) {
	assert.Equal(t, uint8(0), Black.ANSIIndex())
	assert.Equal(t, uint8(7), White.ANSIIndex())
	assert.Equal(t, uint8(8), BrightBlack.ANSIIndex())
	assert.Equal(t, uint8(15), BrightWhite.ANSIIndex())
	assert.True(t, BrightRed.IsBright())
	assert.False(t, Red.IsBright())
}

func TestParseColor(t *testing.T) {
	type tc struct {
		input    string
		expected Color
		wantErr  bool
	}

	tests := map[string]tc{
		"hex":           {input: "#FF5F00", expected: RGB(255, 95, 0)},
		"named":         {input: "red", expected: Named(Red)},
		"bright":        {input: "bright-blue", expected: Named(BrightBlue)},
		"underscore":    {input: "Bright_Cyan", expected: Named(BrightCyan)},
		"grey alias":    {input: "grey", expected: Named(BrightBlack)},
		"inherit":       {input: "inherit", expected: Inherit()},
		"none":          {input: "none", expected: None()},
		"default alias": {input: "default", expected: None()},
		"index":         {input: "240", expected: Indexed(240)},
		"bad hex":       {input: "#fff", wantErr: true},
		"bad index":     {input: "256", wantErr: true},
		"unknown":       {input: "chartreuse", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestColor_StringRoundTrip(t *testing.T) {
	for _, c := range []Color{None(), Inherit(), Named(BrightMagenta), Indexed(17), RGB(1, 171, 255)} {
		got, err := ParseColor(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got, "round trip of %s", c)
	}
}
