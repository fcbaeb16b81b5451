package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFontStyle_BitValues(t *testing.T) {
	assert.Equal(t, uint8(0), Normal.Bits())
	assert.Equal(t, uint8(1), Bold.Bits())
	assert.Equal(t, uint8(2), Italic.Bits())
	assert.Equal(t, uint8(4), Underline.Bits())
	assert.Equal(t, uint8(8), Blink.Bits())
	assert.Equal(t, uint8(16), Strikethrough.Bits())
	assert.Equal(t, uint8(32), Dim.Bits())
}

func TestFontStyle_Has(t *testing.T) {
	f := Bold | Italic

	assert.True(t, f.Has(Bold))
	assert.True(t, f.Has(Italic))
	assert.True(t, f.Has(Bold|Italic))
	assert.False(t, f.Has(Underline))
	assert.False(t, f.Has(Bold|Underline))
	assert.True(t, f.HasAny(Bold|Underline))
	assert.False(t, f.HasAny(Underline|Dim))
}

func TestFontStyle_Without(t *testing.T) {
	f := Bold | Italic | Dim

	got := f.Without(Italic)
	assert.Equal(t, Bold|Dim, got)
	assert.Equal(t, f, f.Without(Underline), "removing an unset flag is a no-op")
	assert.True(t, f.Without(f).IsNormal())
}

func TestFontStyle_LatticeLaws(t *testing.T) {
	values := []FontStyle{Normal, Bold, Italic | Underline, Blink | Dim, Strikethrough, Bold | Italic | Underline | Blink | Strikethrough | Dim}

	for _, a := range values {
		assert.Equal(t, a, a.With(a), "idempotent")
		assert.Equal(t, a, a.With(Normal), "identity")
		for _, b := range values {
			assert.Equal(t, a.With(b), b.With(a), "commutative")
			assert.Equal(t, a.Intersect(b), b.Intersect(a))
			assert.False(t, a.Without(b).HasAny(b))
			for _, c := range values {
				assert.Equal(t, a.With(b).With(c), a.With(b.With(c)), "associative")
			}
		}
	}
}

func TestFontStyle_ZeroIsNormal(t *testing.T) {
	var f FontStyle
	assert.True(t, f.IsNormal())
	assert.False(t, Bold.IsNormal())
}

func TestFromBits_MasksReserved(t *testing.T) {
	assert.Equal(t, Bold|Dim, FromBits(0b1110_0001))
	assert.Equal(t, Normal, FromBits(0xc0))
}

func TestFontStyle_String(t *testing.T) {
	type tc struct {
		style    FontStyle
		expected string
	}

	tests := map[string]tc{
		"normal":   {style: Normal, expected: "normal"},
		"single":   {style: Underline, expected: "underline"},
		"ordered":  {style: Dim | Bold | Italic, expected: "bold|italic|dim"},
		"reserved": {style: FontStyle(0x41), expected: "bold|0x40"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.style.String())
		})
	}
}

func TestParse(t *testing.T) {
	type tc struct {
		input    string
		expected FontStyle
		wantErr  bool
	}

	tests := map[string]tc{
		"empty":        {input: "", expected: Normal},
		"normal":       {input: "normal", expected: Normal},
		"pipe":         {input: "bold|italic", expected: Bold | Italic},
		"spaces":       {input: "Bold  Underline", expected: Bold | Underline},
		"commas":       {input: "dim, blink", expected: Dim | Blink},
		"aliases":      {input: "strike faint", expected: Strikethrough | Dim},
		"duplicates":   {input: "bold bold", expected: Bold},
		"unknown name": {input: "bold heavy", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFontStyle)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParse_RoundTripsString(t *testing.T) {
	for _, f := range []FontStyle{Normal, Bold, Italic | Strikethrough, Bold | Italic | Underline | Blink | Strikethrough | Dim} {
		got, err := Parse(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
}
