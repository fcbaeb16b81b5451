package tcss

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/grindlemire/tcss/internal/layout"
)

var (
	// ErrUnknownProperty means the property name is not recognized.
	ErrUnknownProperty = errors.New("unknown property")
	// ErrInvalidValue means the value does not parse for the property.
	ErrInvalidValue = errors.New("invalid value")
)

// DeclarationError reports a property declaration that could not be applied.
type DeclarationError struct {
	Property string
	Value    string
	Err      error
}

func (e *DeclarationError) Error() string {
	return fmt.Sprintf("%s: %q: %v", e.Property, e.Value, e.Err)
}

func (e *DeclarationError) Unwrap() error {
	return e.Err
}

type setter func(s *Style, value string) error

// declareWith builds a setter that parses a value into one Option field.
func declareWith[T comparable](parse func(string) (T, error), field func(*Style) *Option[T]) setter {
	return func(s *Style, value string) error {
		v, err := parse(value)
		if err != nil {
			return err
		}
		*field(s) = Some(v)
		return nil
	}
}

// declareSide builds a setter for one side of padding or margin. Sides
// not yet declared stay Unset.
func declareSide(field func(*Style) *Option[Edges[Unit]], side func(*Edges[Unit]) *Unit) setter {
	return func(s *Style, value string) error {
		u, err := ParseUnit(value)
		if err != nil {
			return err
		}
		opt := field(s)
		e := opt.OrElse(Edges[Unit]{})
		*side(&e) = u
		*opt = Some(e)
		return nil
	}
}

func parseOpacity(value string) (Float, error) {
	f, err := ParseFloat(value)
	if err != nil {
		return Float{}, err
	}
	return f.ClampUnit(), nil
}

func edgeSides(field func(*Style) *Option[Edges[Unit]], prefix string, into map[string]setter) {
	into[prefix+"-top"] = declareSide(field, func(e *Edges[Unit]) *Unit { return &e.Top })
	into[prefix+"-right"] = declareSide(field, func(e *Edges[Unit]) *Unit { return &e.Right })
	into[prefix+"-bottom"] = declareSide(field, func(e *Edges[Unit]) *Unit { return &e.Bottom })
	into[prefix+"-left"] = declareSide(field, func(e *Edges[Unit]) *Unit { return &e.Left })
}

var properties = func() map[string]setter {
	padding := func(s *Style) *Option[Edges[Unit]] { return &s.Padding }
	margin := func(s *Style) *Option[Edges[Unit]] { return &s.Margin }
	color := declareWith(ParseColor, func(s *Style) *Option[Color] { return &s.Color })
	background := declareWith(ParseColor, func(s *Style) *Option[Color] { return &s.Background })

	props := map[string]setter{
		"width":      declareWith(ParseUnit, func(s *Style) *Option[Unit] { return &s.Width }),
		"height":     declareWith(ParseUnit, func(s *Style) *Option[Unit] { return &s.Height }),
		"min-width":  declareWith(ParseUnit, func(s *Style) *Option[Unit] { return &s.MinWidth }),
		"min-height": declareWith(ParseUnit, func(s *Style) *Option[Unit] { return &s.MinHeight }),
		"max-width":  declareWith(ParseUnit, func(s *Style) *Option[Unit] { return &s.MaxWidth }),
		"max-height": declareWith(ParseUnit, func(s *Style) *Option[Unit] { return &s.MaxHeight }),
		"padding":    declareWith(ParseEdges, padding),
		"margin":     declareWith(ParseEdges, margin),

		"display":         declareWith(layout.ParseDisplay, func(s *Style) *Option[Display] { return &s.Display }),
		"flex-direction":  declareWith(layout.ParseFlexDirection, func(s *Style) *Option[FlexDirection] { return &s.FlexDirection }),
		"flex-grow":       declareWith(ParseFloat, func(s *Style) *Option[Float] { return &s.FlexGrow }),
		"flex-shrink":     declareWith(ParseFloat, func(s *Style) *Option[Float] { return &s.FlexShrink }),
		"align-items":     declareWith(layout.ParseAlign, func(s *Style) *Option[Align] { return &s.AlignItems }),
		"justify-content": declareWith(layout.ParseJustify, func(s *Style) *Option[Justify] { return &s.JustifyContent }),
		"gap":             declareWith(ParseUnit, func(s *Style) *Option[Unit] { return &s.Gap }),

		"color":            color,
		"foreground":       color,
		"background":       background,
		"background-color": background,
		"border":           declareWith(ParseBorder, func(s *Style) *Option[Border] { return &s.Border }),
		"opacity":          declareWith(parseOpacity, func(s *Style) *Option[Float] { return &s.Opacity }),

		"text-align": declareWith(layout.ParseTextAlign, func(s *Style) *Option[TextAlign] { return &s.TextAlign }),
		"font-style": declareWith(ParseFontStyle, func(s *Style) *Option[FontStyle] { return &s.FontStyle }),
		"overflow":   declareWith(layout.ParseOverflow, func(s *Style) *Option[Overflow] { return &s.Overflow }),
	}
	edgeSides(padding, "padding", props)
	edgeSides(margin, "margin", props)
	return props
}()

// Properties returns the recognized property names in sorted order.
func Properties() []string {
	return slices.Sorted(maps.Keys(properties))
}

// Declare parses value for the named CSS property and sets the matching
// field of style. Property names are case-insensitive. On error style is
// left unchanged and the returned *DeclarationError wraps
// ErrUnknownProperty or ErrInvalidValue.
//
//	var s tcss.Style
//	_ = tcss.Declare(&s, "padding", "1 2")
//	_ = tcss.Declare(&s, "border", "rounded #ff00ff")
func Declare(style *Style, property, value string) error {
	name := strings.ToLower(strings.TrimSpace(property))
	set, ok := properties[name]
	if !ok {
		return &DeclarationError{Property: property, Value: value, Err: ErrUnknownProperty}
	}
	if err := set(style, value); err != nil {
		return &DeclarationError{Property: name, Value: value, Err: fmt.Errorf("%w: %w", ErrInvalidValue, err)}
	}
	return nil
}

// Declaration is one property declaration with its name normalized to
// lower case.
type Declaration struct {
	Property string
	Value    string
}

// NormalizeDeclarations trims and lowercases the property names of decls
// and returns the declarations sorted by normalized name, so that
// "padding" always applies before "padding-top" whatever the case of the
// keys. Keys that normalize to the same name keep only the first in raw
// key order; each later one is reported as a *DeclarationError wrapping
// ErrInvalidValue.
func NormalizeDeclarations(decls map[string]string) ([]Declaration, []error) {
	var errs []error
	first := make(map[string]string, len(decls))
	out := make([]Declaration, 0, len(decls))
	for _, raw := range slices.Sorted(maps.Keys(decls)) {
		name := strings.ToLower(strings.TrimSpace(raw))
		if prev, dup := first[name]; dup {
			errs = append(errs, &DeclarationError{
				Property: raw,
				Value:    decls[raw],
				Err:      fmt.Errorf("%w: duplicate of %q", ErrInvalidValue, prev),
			})
			continue
		}
		first[name] = raw
		out = append(out, Declaration{Property: name, Value: decls[raw]})
	}
	slices.SortFunc(out, func(a, b Declaration) int {
		return strings.Compare(a.Property, b.Property)
	})
	return out, errs
}

// ParseStyle declares every property of decls in normalized, sorted
// property order, so overlapping declarations ("padding" then
// "padding-top") resolve the same way on every call. All failures are
// joined into the returned error; the Style holds every declaration that
// succeeded.
func ParseStyle(decls map[string]string) (Style, error) {
	var s Style
	ordered, errs := NormalizeDeclarations(decls)
	for _, d := range ordered {
		if err := Declare(&s, d.Property, d.Value); err != nil {
			errs = append(errs, err)
		}
	}
	return s, errors.Join(errs...)
}
