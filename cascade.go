package tcss

import (
	"fmt"
	"slices"

	"github.com/grindlemire/tcss/internal/debug"
)

// Layer is the priority of a declaration in a cascade. Higher layers win.
type Layer uint8

const (
	// LayerTheme holds theme sheet declarations.
	LayerTheme Layer = iota
	// LayerComponent holds a component's default style.
	LayerComponent
	// LayerInline holds styles declared on the element itself.
	LayerInline
)

func (l Layer) String() string {
	switch l {
	case LayerTheme:
		return "theme"
	case LayerComponent:
		return "component"
	case LayerInline:
		return "inline"
	}
	return fmt.Sprintf("Layer(%d)", uint8(l))
}

type declaration struct {
	layer Layer
	style Style
}

// Cascade collects style declarations from several layers and resolves
// them into one Style. Within a layer, later declarations win.
//
// The zero Cascade is empty and ready to use.
type Cascade struct {
	decls []declaration
}

// Add appends a declaration on the given layer.
func (c *Cascade) Add(layer Layer, s Style) *Cascade {
	c.decls = append(c.decls, declaration{layer: layer, style: s})
	return c
}

// Theme appends a theme layer declaration.
func (c *Cascade) Theme(s Style) *Cascade { return c.Add(LayerTheme, s) }

// Component appends a component layer declaration.
func (c *Cascade) Component(s Style) *Cascade { return c.Add(LayerComponent, s) }

// Inline appends an inline layer declaration.
func (c *Cascade) Inline(s Style) *Cascade { return c.Add(LayerInline, s) }

// Len returns the number of declarations.
func (c *Cascade) Len() int {
	return len(c.decls)
}

// Reset removes all declarations, keeping the allocated capacity.
func (c *Cascade) Reset() {
	c.decls = c.decls[:0]
}

// Resolve merges every declaration in ascending layer order, keeping
// insertion order within a layer. The cascade itself is not modified.
func (c *Cascade) Resolve() Style {
	ordered := slices.Clone(c.decls)
	slices.SortStableFunc(ordered, func(a, b declaration) int {
		return int(a.layer) - int(b.layer)
	})

	var out Style
	for _, d := range ordered {
		out.Merge(d.style)
	}

	if debug.Enabled() {
		log := debug.Logger()
		log.Debug().
			Int("declarations", len(ordered)).
			Str("resolved", out.String()).
			Msg("cascade resolved")
	}
	return out
}

// MergeAll folds styles left to right with Merge. Later styles win field
// by field.
func MergeAll(styles ...Style) Style {
	var out Style
	for _, s := range styles {
		out.Merge(s)
	}
	return out
}
