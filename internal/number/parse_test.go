package number

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt_Valid(t *testing.T) {
	type tc struct {
		input    string
		expected Int
	}

	tests := map[string]tc{
		"binary":          {input: "0b1010", expected: 10},
		"octal":           {input: "0o12", expected: 10},
		"hex upper":       {input: "0xFF", expected: 255},
		"hex prefix caps": {input: "0XfF", expected: 255},
		"negative":        {input: "-5", expected: -5},
		"plus":            {input: "+5", expected: 5},
		"zero":            {input: "0", expected: 0},
		"negative hex":    {input: "-0x1F", expected: -31},
		"max":             {input: "2147483647", expected: 2147483647},
		"min":             {input: "-2147483648", expected: -2147483648},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseInt(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseInt_Malformed(t *testing.T) {
	type tc struct {
		input string
		pos   int
		digit rune
	}

	tests := map[string]tc{
		"empty":          {input: "", pos: -1},
		"sign only":      {input: "-", pos: -1},
		"prefix only":    {input: "0x", pos: -1},
		"bad binary":     {input: "0b102", pos: 4, digit: '2'},
		"bad decimal":    {input: "12a", pos: 2, digit: 'a'},
		"double sign":    {input: "+-5", pos: 1, digit: '-'},
		"overflow":       {input: "2147483648", pos: 9, digit: '8'},
		"space":          {input: " 5", pos: 0, digit: ' '},
		"bad octal":      {input: "0o8", pos: 2, digit: '8'},
		"trailing space": {input: "5 ", pos: 1, digit: ' '},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseInt(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.NotErrorIs(t, err, ErrInvalidRadix)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.pos, pe.Pos)
			assert.Equal(t, tt.digit, pe.Digit)
			assert.Equal(t, tt.input, pe.Input)
		})
	}
}

func TestParseIntRadix(t *testing.T) {
	type tc struct {
		input    string
		radix    int
		expected Int
		err      error
	}

	tests := map[string]tc{
		"radix 1":         {input: "0", radix: 1, err: ErrInvalidRadix},
		"radix 37":        {input: "0", radix: 37, err: ErrInvalidRadix},
		"radix 36 z":      {input: "z", radix: 36, expected: 35},
		"radix 36 upper":  {input: "Z", radix: 36, expected: 35},
		"radix 16 g":      {input: "g", radix: 16, err: ErrMalformed},
		"radix 2":         {input: "1010", radix: 2, expected: 10},
		"radix 16 signed": {input: "-ff", radix: 16, expected: -255},
		"no prefix":       {input: "0x10", radix: 16, err: ErrMalformed},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseIntRadix(tt.input, tt.radix)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseError_Message(t *testing.T) {
	_, err := ParseIntRadix("g", 16)
	assert.EqualError(t, err, `parse "g" (radix 16): malformed number: invalid digit 'g' at offset 0`)

	_, err = ParseIntRadix("1", 40)
	assert.EqualError(t, err, `parse "1" (radix 40): invalid radix: radix must be within [2, 36]`)
}

func TestFormatPrefixed(t *testing.T) {
	type tc struct {
		fn       func(Int) string
		in       Int
		expected string
	}

	tests := map[string]tc{
		"binary":       {fn: FormatBinary, in: 10, expected: "0b1010"},
		"octal":        {fn: FormatOctal, in: 10, expected: "0o12"},
		"hex":          {fn: FormatHex, in: 255, expected: "0xff"},
		"negative hex": {fn: FormatHex, in: -31, expected: "-0x1f"},
		"min binary":   {fn: FormatBinary, in: -2147483648, expected: "-0b10000000000000000000000000000000"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.fn(tt.in))
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, v := range []Int{0, 1, -1, 42, -2147483648, 2147483647} {
		for _, format := range []func(Int) string{FormatBinary, FormatOctal, FormatHex} {
			got, err := ParseInt(format(v))
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	}
}
