package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/tcss"
)

func TestRegistry_Extends(t *testing.T) {
	reg := NewRegistry()
	reg.Add(mustLoad(t, `
name: base
styles:
  button:
    color: white
    border: solid
  label:
    color: bright-black
`))
	reg.Add(mustLoad(t, `
name: dark
extends: base
styles:
  button:
    color: bright-white
    background: black
`))
	reg.Add(mustLoad(t, `
name: dark-contrast
extends: dark
styles:
  button:
    font-style: bold
`))

	assert.Equal(t, []string{"base", "dark", "dark-contrast"}, reg.Names())

	th, err := reg.Get("dark-contrast")
	require.NoError(t, err)
	assert.Equal(t, "dark-contrast", th.Name())
	assert.Equal(t, []string{"button", "label"}, th.Selectors())

	button, _ := th.Style("button")
	expected := tcss.New().
		WithColor(tcss.BrightWhite).
		WithBorder(tcss.SolidBorder).
		WithBackground(tcss.Black).
		WithFontStyle(tcss.Bold)
	assert.Equal(t, expected, button)

	label, _ := th.Style("label")
	assert.Equal(t, tcss.New().WithColor(tcss.BrightBlack), label)

	base, err := reg.Get("base")
	require.NoError(t, err)
	baseButton, _ := base.Style("button")
	assert.Equal(t, tcss.New().WithColor(tcss.White).WithBorder(tcss.SolidBorder), baseButton, "ancestors are not modified")
}

func TestRegistry_Errors(t *testing.T) {
	reg := NewRegistry()
	reg.Add(mustLoad(t, "name: a\nextends: b\n"))
	reg.Add(mustLoad(t, "name: b\nextends: a\n"))
	reg.Add(mustLoad(t, "name: orphan\nextends: nowhere\n"))

	_, err := reg.Get("a")
	assert.ErrorIs(t, err, ErrExtendsCycle)
	assert.Contains(t, err.Error(), "a -> b -> a")

	_, err = reg.Get("orphan")
	assert.ErrorIs(t, err, ErrUnknownTheme)

	_, err = reg.Get("missing")
	assert.ErrorIs(t, err, ErrUnknownTheme)
}
