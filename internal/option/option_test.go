package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOption_ZeroIsNone(t *testing.T) {
	var o Option[int]
	assert.False(t, o.IsSet())
	assert.True(t, o.IsNone())
	assert.Equal(t, None[int](), o)
}

func TestOption_SomeZeroIsNotNone(t *testing.T) {
	o := Some(0)
	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	assert.NotEqual(t, None[int](), o, "present zero must differ from absent")
}

func TestOption_Or(t *testing.T) {
	type tc struct {
		overlay  Option[string]
		base     Option[string]
		expected Option[string]
	}

	tests := map[string]tc{
		"overlay wins":        {overlay: Some("b"), base: Some("a"), expected: Some("b")},
		"absent keeps base":   {overlay: None[string](), base: Some("a"), expected: Some("a")},
		"both absent":         {overlay: None[string](), base: None[string](), expected: None[string]()},
		"overlay over absent": {overlay: Some("b"), base: None[string](), expected: Some("b")},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.overlay.Or(tt.base))
		})
	}
}

func TestOption_OrElseAndString(t *testing.T) {
	assert.Equal(t, 7, None[int]().OrElse(7))
	assert.Equal(t, 3, Some(3).OrElse(7))
	assert.Equal(t, "<none>", None[int]().String())
	assert.Equal(t, "3", Some(3).String())
}
