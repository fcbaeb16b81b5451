package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnit_Classification(t *testing.T) {
	type tc struct {
		unit      Unit
		definite  bool
		intrinsic bool
		unset     bool
	}

	tests := map[string]tc{
		"cells":          {unit: Cells(10), definite: true},
		"negative cells": {unit: Cells(-1), definite: true},
		"zero cells":     {unit: Zero, definite: true},
		"percent":        {unit: Percent(50), definite: true},
		"fill":           {unit: Fill(1), intrinsic: true},
		"fill zero":      {unit: Fill(0), intrinsic: true},
		"auto":           {unit: Auto(), intrinsic: true},
		"unset":          {unit: Unset(), unset: true},
		"zero value":     {unit: Unit{}, unset: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.definite, tt.unit.IsDefinite(), "IsDefinite")
			assert.Equal(t, tt.intrinsic, tt.unit.IsIntrinsic(), "IsIntrinsic")
			assert.Equal(t, tt.unset, tt.unit.IsUnset(), "IsUnset")
		})
	}
}

func TestUnit_DefaultIsUnsetNotZeroCells(t *testing.T) {
	var u Unit
	assert.Equal(t, Unset(), u)
	assert.NotEqual(t, Zero, u)
}

func TestUnit_Extractors(t *testing.T) {
	n, ok := Cells(42).AsCells()
	assert.True(t, ok)
	assert.Equal(t, int32(42), n)

	p, ok := Percent(75).AsPercent()
	assert.True(t, ok)
	assert.Equal(t, uint8(75), p)

	w, ok := Fill(3).AsFill()
	assert.True(t, ok)
	assert.Equal(t, uint16(3), w)

	_, ok = Auto().AsCells()
	assert.False(t, ok)
	_, ok = Cells(5).AsPercent()
	assert.False(t, ok)
	_, ok = Percent(5).AsFill()
	assert.False(t, ok)
}

func TestUnit_FillZeroBehavesAsAuto(t *testing.T) {
	assert.True(t, Fill(0).IsAuto())
	assert.False(t, Fill(1).IsAuto())
	assert.Equal(t, Auto(), Fill(0).Normalize())
	assert.Equal(t, Fill(2), Fill(2).Normalize())
}

func TestUnit_PercentOverflowIsKept(t *testing.T) {
	p, ok := Percent(150).AsPercent()
	assert.True(t, ok)
	assert.Equal(t, uint8(150), p)
}

func TestParseUnit(t *testing.T) {
	type tc struct {
		input    string
		expected Unit
		wantErr  bool
	}

	tests := map[string]tc{
		"cells":           {input: "12", expected: Cells(12)},
		"negative cells":  {input: "-1", expected: Cells(-1)},
		"percent":         {input: "50%", expected: Percent(50)},
		"percent over":    {input: "200%", expected: Percent(200)},
		"fill":            {input: "2fr", expected: Fill(2)},
		"auto":            {input: "AUTO", expected: Auto()},
		"unset":           {input: "unset", expected: Unset()},
		"padded":          {input: " 3 ", expected: Cells(3)},
		"percent too big": {input: "300%", wantErr: true},
		"negative pct":    {input: "-5%", wantErr: true},
		"garbage":         {input: "wide", wantErr: true},
		"empty":           {input: "", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseUnit(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidUnit)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestUnit_StringRoundTrip(t *testing.T) {
	for _, u := range []Unit{Cells(4), Cells(-2), Percent(100), Fill(3), Auto(), Unset()} {
		got, err := ParseUnit(u.String())
		require.NoError(t, err)
		assert.Equal(t, u, got, "round trip of %s", u)
	}
}
