package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/tcss"
	"github.com/grindlemire/tcss/internal/debug"
)

// ApplyKey is the selector key whose value is a list of utility classes,
// e.g. "apply: flex-col gap-1 bold". See tcss.ParseClasses.
const ApplyKey = "apply"

// sheet is the YAML document shape.
type sheet struct {
	Name    string                       `yaml:"name" validate:"required,max=100,theme_name"`
	Extends string                       `yaml:"extends,omitempty" validate:"theme_name"`
	Styles  map[string]map[string]string `yaml:"styles" validate:"dive,keys,selector,endkeys"`
}

// Theme is a named set of per-selector styles.
// A loaded Theme is immutable and safe for concurrent use.
type Theme struct {
	name    string
	extends string
	styles  map[string]tcss.Style
}

// Load decodes and validates a theme sheet. All problems are reported
// together in an *ErrorList.
func Load(r io.Reader) (*Theme, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s sheet
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
		return nil, &Error{Err: fmt.Errorf("%w: %w", ErrInvalidSheet, err)}
	}

	var errs ErrorList
	validateSheet(&s, &errs)

	t := &Theme{
		name:    s.Name,
		extends: s.Extends,
		styles:  make(map[string]tcss.Style, len(s.Styles)),
	}
	for _, selector := range slices.Sorted(maps.Keys(s.Styles)) {
		ordered, dups := tcss.NormalizeDeclarations(s.Styles[selector])
		for _, err := range dups {
			var declErr *tcss.DeclarationError
			property := ""
			if errors.As(err, &declErr) {
				property = declErr.Property
			}
			errs.Add(&Error{Theme: s.Name, Selector: selector, Property: property, Err: err})
		}

		var style tcss.Style
		// Utility classes go first so explicit declarations override them.
		for _, d := range ordered {
			if d.Property != ApplyKey {
				continue
			}
			if err := tcss.ApplyClasses(&style, d.Value); err != nil {
				errs.Add(&Error{Theme: s.Name, Selector: selector, Property: ApplyKey, Err: err})
			}
		}
		for _, d := range ordered {
			if d.Property == ApplyKey {
				continue
			}
			if err := tcss.Declare(&style, d.Property, d.Value); err != nil {
				errs.Add(&Error{Theme: s.Name, Selector: selector, Property: d.Property, Err: err})
			}
		}
		t.styles[selector] = style
	}

	log := debug.Logger()
	if err := errs.Err(); err != nil {
		log.Debug().Str("theme", s.Name).Int("errors", errs.Len()).Msg("theme rejected")
		return nil, err
	}

	log.Debug().Str("theme", t.name).Str("extends", t.extends).Int("selectors", len(t.styles)).Msg("theme loaded")
	return t, nil
}

// LoadFile reads and loads the theme sheet at path.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}
	return Load(bytes.NewReader(data))
}

// Name returns the theme name.
func (t *Theme) Name() string {
	return t.name
}

// Extends returns the name of the parent theme, or "".
func (t *Theme) Extends() string {
	return t.extends
}

// Selectors returns the declared selectors in sorted order.
func (t *Theme) Selectors() []string {
	return slices.Sorted(maps.Keys(t.styles))
}

// Style returns the Style declared for selector.
func (t *Theme) Style(selector string) (tcss.Style, bool) {
	s, ok := t.styles[selector]
	return s, ok
}

// Resolve cascades the theme styles for selectors (in the order given, so
// later selectors win), then component, then inline. Unknown selectors
// contribute nothing.
func (t *Theme) Resolve(component, inline tcss.Style, selectors ...string) tcss.Style {
	var c tcss.Cascade
	for _, sel := range selectors {
		if s, ok := t.styles[sel]; ok {
			c.Theme(s)
		}
	}
	c.Component(component)
	c.Inline(inline)
	return c.Resolve()
}

// inheritFrom returns a copy of t whose selectors are parent's merged
// with t's own declarations on top.
func (t *Theme) inheritFrom(parent *Theme) *Theme {
	out := &Theme{
		name:    t.name,
		extends: t.extends,
		styles:  maps.Clone(parent.styles),
	}
	for sel, s := range t.styles {
		base := out.styles[sel]
		out.styles[sel] = base.MergedWith(s)
	}
	return out
}
