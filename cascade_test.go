package tcss

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grindlemire/tcss/internal/debug"
)

func TestCascade_LayerOrder(t *testing.T) {
	theme := New().WithColor(White).WithBackground(Black).WithPaddingAll(Cells(1))
	component := New().WithColor(Cyan).WithBorder(RoundedBorder)
	inline := New().WithColor(Yellow)

	var c Cascade
	// Declared out of priority order on purpose.
	c.Inline(inline).Theme(theme).Component(component)

	got := c.Resolve()
	assert.Equal(t, Some(Yellow), got.Color)
	assert.Equal(t, Some(Black), got.Background)
	assert.Equal(t, Some(RoundedBorder), got.Border)
	assert.Equal(t, Some(EdgeAll(Cells(1))), got.Padding)
	assert.Equal(t, 3, c.Len())
}

func TestCascade_InsertionOrderWithinLayer(t *testing.T) {
	var c Cascade
	c.Add(LayerTheme, New().WithColor(Red).WithGap(Cells(1)))
	c.Add(LayerTheme, New().WithColor(Green))

	got := c.Resolve()
	assert.Equal(t, Some(Green), got.Color)
	assert.Equal(t, Some(Cells(1)), got.Gap)
}

func TestCascade_MatchesMergeAllOfSortedLayers(t *testing.T) {
	a, b, c := fullStyle(), otherStyle(), partialStyle()

	var cascade Cascade
	cascade.Component(b).Inline(c).Theme(a)

	assert.Equal(t, MergeAll(a, b, c), cascade.Resolve())
}

func TestCascade_EmptyAndReset(t *testing.T) {
	var c Cascade
	assert.True(t, c.Resolve().IsEmpty())

	c.Inline(New().WithColor(Red))
	c.Reset()
	assert.Equal(t, 0, c.Len())
	assert.True(t, c.Resolve().IsEmpty())
}

func TestCascade_ResolveDoesNotReorderDeclarations(t *testing.T) {
	var c Cascade
	c.Inline(New().WithColor(Red)).Theme(New().WithColor(Blue))
	_ = c.Resolve()

	c.Inline(New().WithColor(Green))
	assert.Equal(t, Some(Green), c.Resolve().Color)
}

func TestCascade_TracesWhenDebugEnabled(t *testing.T) {
	var buf bytes.Buffer
	debug.SetOutput(&buf)
	t.Cleanup(func() { _ = debug.Close() })

	var c Cascade
	c.Inline(New().WithColor(Red))
	_ = c.Resolve()

	assert.Contains(t, buf.String(), `"message":"cascade resolved"`)
	assert.Contains(t, buf.String(), `"declarations":1`)
}

func TestMergeAll(t *testing.T) {
	assert.True(t, MergeAll().IsEmpty())
	assert.Equal(t, fullStyle(), MergeAll(fullStyle()))
	assert.Equal(t, Some(Blue), MergeAll(New().WithColor(Red), New(), New().WithColor(Blue)).Color)
}

func TestLayer_String(t *testing.T) {
	assert.Equal(t, "theme", LayerTheme.String())
	assert.Equal(t, "component", LayerComponent.String())
	assert.Equal(t, "inline", LayerInline.String())
	assert.Equal(t, "Layer(7)", Layer(7).String())
}
