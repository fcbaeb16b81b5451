package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBValues(t *testing.T) {
	type tc struct {
		color   Color
		r, g, b uint8
		ok      bool
	}

	tests := map[string]tc{
		"rgb":         {color: RGB(1, 2, 3), r: 1, g: 2, b: 3, ok: true},
		"named red":   {color: Named(Red), r: 205, g: 49, b: 49, ok: true},
		"indexed low": {color: Indexed(15), r: 255, g: 255, b: 255, ok: true},
		"cube black":  {color: Indexed(16), r: 0, g: 0, b: 0, ok: true},
		"cube white":  {color: Indexed(231), r: 255, g: 255, b: 255, ok: true},
		"cube mixed":  {color: Indexed(16 + 36*1 + 6*2 + 3), r: 95, g: 135, b: 175, ok: true},
		"grey first":  {color: Indexed(232), r: 8, g: 8, b: 8, ok: true},
		"grey last":   {color: Indexed(255), r: 238, g: 238, b: 238, ok: true},
		"none":        {color: None(), ok: false},
		"inherit":     {color: Inherit(), ok: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r, g, b, ok := tt.color.RGBValues()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, [3]uint8{tt.r, tt.g, tt.b}, [3]uint8{r, g, b})
		})
	}
}

func TestToIndexed(t *testing.T) {
	type tc struct {
		color    Color
		expected Color
	}

	tests := map[string]tc{
		"pure red":      {color: RGB(255, 0, 0), expected: Indexed(196)},
		"exact grey":    {color: RGB(128, 128, 128), expected: Indexed(244)},
		"exact cube":    {color: RGB(95, 135, 175), expected: Indexed(67)},
		"named mirrors": {color: Named(Red), expected: Indexed(1)},
		"indexed kept":  {color: Indexed(99), expected: Indexed(99)},
		"none kept":     {color: None(), expected: None()},
		"inherit kept":  {color: Inherit(), expected: Inherit()},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.color.ToIndexed())
		})
	}
}

func TestToNamed(t *testing.T) {
	type tc struct {
		color    Color
		expected Color
	}

	tests := map[string]tc{
		"black":         {color: RGB(0, 0, 0), expected: Named(Black)},
		"white exact":   {color: RGB(229, 229, 229), expected: Named(White)},
		"bright white":  {color: RGB(255, 255, 255), expected: Named(BrightWhite)},
		"low index":     {color: Indexed(9), expected: Named(BrightRed)},
		"cube black":    {color: Indexed(16), expected: Named(Black)},
		"named kept":    {color: Named(Cyan), expected: Named(Cyan)},
		"abstract kept": {color: Inherit(), expected: Inherit()},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.color.ToNamed())
		})
	}
}

func TestLuminance(t *testing.T) {
	assert.InDelta(t, 1.0, RGB(255, 255, 255).Luminance(), 0.001)
	assert.InDelta(t, 0.0, RGB(0, 0, 0).Luminance(), 0.001)
	assert.InDelta(t, 0.2126, RGB(255, 0, 0).Luminance(), 0.001)
	assert.Equal(t, 0.0, None().Luminance())

	assert.True(t, RGB(255, 255, 255).IsLight())
	assert.False(t, RGB(0, 0, 0).IsLight())
	assert.False(t, None().IsLight())
}
