package tcss

import (
	"fmt"
	"strings"
)

// Style is the per-element bag of style declarations.
//
// Every field is an Option: absent means "not declared here", which is not
// the same as declared with the type's zero value. The zero Style declares
// nothing. Style is a plain value; copying it never allocates.
type Style struct {
	// Box model
	Width     Option[Unit]
	Height    Option[Unit]
	MinWidth  Option[Unit]
	MinHeight Option[Unit]
	MaxWidth  Option[Unit]
	MaxHeight Option[Unit]
	Padding   Option[Edges[Unit]]
	Margin    Option[Edges[Unit]]

	// Layout
	Display        Option[Display]
	FlexDirection  Option[FlexDirection]
	FlexGrow       Option[Float]
	FlexShrink     Option[Float]
	AlignItems     Option[Align]
	JustifyContent Option[Justify]
	Gap            Option[Unit]

	// Visuals
	Color      Option[Color]
	Background Option[Color]
	Border     Option[Border]
	Opacity    Option[Float]

	// Typography
	TextAlign Option[TextAlign]
	FontStyle Option[FontStyle]

	Overflow Option[Overflow]
}

// New returns a Style with nothing declared.
func New() Style {
	return Style{}
}

// Merge applies overlay on top of s. Each field declared in overlay
// replaces the same field of s; fields overlay leaves absent are kept.
// Only s is modified.
func (s *Style) Merge(overlay Style) {
	s.Width = overlay.Width.Or(s.Width)
	s.Height = overlay.Height.Or(s.Height)
	s.MinWidth = overlay.MinWidth.Or(s.MinWidth)
	s.MinHeight = overlay.MinHeight.Or(s.MinHeight)
	s.MaxWidth = overlay.MaxWidth.Or(s.MaxWidth)
	s.MaxHeight = overlay.MaxHeight.Or(s.MaxHeight)
	s.Padding = overlay.Padding.Or(s.Padding)
	s.Margin = overlay.Margin.Or(s.Margin)

	s.Display = overlay.Display.Or(s.Display)
	s.FlexDirection = overlay.FlexDirection.Or(s.FlexDirection)
	s.FlexGrow = overlay.FlexGrow.Or(s.FlexGrow)
	s.FlexShrink = overlay.FlexShrink.Or(s.FlexShrink)
	s.AlignItems = overlay.AlignItems.Or(s.AlignItems)
	s.JustifyContent = overlay.JustifyContent.Or(s.JustifyContent)
	s.Gap = overlay.Gap.Or(s.Gap)

	s.Color = overlay.Color.Or(s.Color)
	s.Background = overlay.Background.Or(s.Background)
	s.Border = overlay.Border.Or(s.Border)
	s.Opacity = overlay.Opacity.Or(s.Opacity)

	s.TextAlign = overlay.TextAlign.Or(s.TextAlign)
	s.FontStyle = overlay.FontStyle.Or(s.FontStyle)

	s.Overflow = overlay.Overflow.Or(s.Overflow)
}

// MergedWith returns s with overlay applied, leaving both unchanged.
func (s Style) MergedWith(overlay Style) Style {
	s.Merge(overlay)
	return s
}

// IsEmpty returns true if no field is declared.
func (s Style) IsEmpty() bool {
	return s == Style{}
}

// HasLayout returns true if any sizing, spacing or gap field is declared.
func (s Style) HasLayout() bool {
	return s.Width.IsSet() ||
		s.Height.IsSet() ||
		s.MinWidth.IsSet() ||
		s.MinHeight.IsSet() ||
		s.MaxWidth.IsSet() ||
		s.MaxHeight.IsSet() ||
		s.Padding.IsSet() ||
		s.Margin.IsSet() ||
		s.Gap.IsSet()
}

// HasVisuals returns true if any visual field is declared.
func (s Style) HasVisuals() bool {
	return s.Color.IsSet() ||
		s.Background.IsSet() ||
		s.Border.IsSet() ||
		s.Opacity.IsSet() ||
		s.TextAlign.IsSet() ||
		s.FontStyle.IsSet()
}

// Box model builders.

// WithWidth returns a new Style with the given width.
func (s Style) WithWidth(v Unit) Style {
	s.Width = Some(v)
	return s
}

// WithHeight returns a new Style with the given height.
func (s Style) WithHeight(v Unit) Style {
	s.Height = Some(v)
	return s
}

// WithMinWidth returns a new Style with the given minimum width.
func (s Style) WithMinWidth(v Unit) Style {
	s.MinWidth = Some(v)
	return s
}

// WithMinHeight returns a new Style with the given minimum height.
func (s Style) WithMinHeight(v Unit) Style {
	s.MinHeight = Some(v)
	return s
}

// WithMaxWidth returns a new Style with the given maximum width.
func (s Style) WithMaxWidth(v Unit) Style {
	s.MaxWidth = Some(v)
	return s
}

// WithMaxHeight returns a new Style with the given maximum height.
func (s Style) WithMaxHeight(v Unit) Style {
	s.MaxHeight = Some(v)
	return s
}

// WithPadding returns a new Style with the given padding.
func (s Style) WithPadding(v Edges[Unit]) Style {
	s.Padding = Some(v)
	return s
}

// WithPaddingAll returns a new Style with the same padding on every side.
func (s Style) WithPaddingAll(v Unit) Style {
	return s.WithPadding(EdgeAll(v))
}

// WithMargin returns a new Style with the given margin.
func (s Style) WithMargin(v Edges[Unit]) Style {
	s.Margin = Some(v)
	return s
}

// WithMarginAll returns a new Style with the same margin on every side.
func (s Style) WithMarginAll(v Unit) Style {
	return s.WithMargin(EdgeAll(v))
}

// Layout builders.

// WithDisplay returns a new Style with the given display mode.
func (s Style) WithDisplay(v Display) Style {
	s.Display = Some(v)
	return s
}

// WithFlexDirection returns a new Style with the given main axis.
func (s Style) WithFlexDirection(v FlexDirection) Style {
	s.FlexDirection = Some(v)
	return s
}

// WithFlexGrow returns a new Style with the given grow factor.
func (s Style) WithFlexGrow(v Float) Style {
	s.FlexGrow = Some(v)
	return s
}

// WithFlexShrink returns a new Style with the given shrink factor.
func (s Style) WithFlexShrink(v Float) Style {
	s.FlexShrink = Some(v)
	return s
}

// WithAlignItems returns a new Style with the given cross axis alignment.
func (s Style) WithAlignItems(v Align) Style {
	s.AlignItems = Some(v)
	return s
}

// WithJustifyContent returns a new Style with the given main axis distribution.
func (s Style) WithJustifyContent(v Justify) Style {
	s.JustifyContent = Some(v)
	return s
}

// WithGap returns a new Style with the given gap between children.
func (s Style) WithGap(v Unit) Style {
	s.Gap = Some(v)
	return s
}

// Visual builders.

// WithColor returns a new Style with the given foreground color.
func (s Style) WithColor(v Color) Style {
	s.Color = Some(v)
	return s
}

// WithBackground returns a new Style with the given background color.
func (s Style) WithBackground(v Color) Style {
	s.Background = Some(v)
	return s
}

// WithBorder returns a new Style with the given border.
func (s Style) WithBorder(v Border) Style {
	s.Border = Some(v)
	return s
}

// WithOpacity returns a new Style with the given opacity. The value is
// stored as given; ClampUnit it first if it may fall outside [0, 1].
func (s Style) WithOpacity(v Float) Style {
	s.Opacity = Some(v)
	return s
}

// WithTextAlign returns a new Style with the given text alignment.
func (s Style) WithTextAlign(v TextAlign) Style {
	s.TextAlign = Some(v)
	return s
}

// WithFontStyle returns a new Style with the given font modifiers.
func (s Style) WithFontStyle(v FontStyle) Style {
	s.FontStyle = Some(v)
	return s
}

// WithOverflow returns a new Style with the given overflow behavior.
func (s Style) WithOverflow(v Overflow) Style {
	s.Overflow = Some(v)
	return s
}

// String lists the declared properties in CSS form, e.g.
// "{width: 50%; color: red}". Absent properties are omitted.
func (s Style) String() string {
	var decls []string
	s.each(func(property, value string) {
		decls = append(decls, property+": "+value)
	})
	return "{" + strings.Join(decls, "; ") + "}"
}

// each calls fn for every declared field, in field order, with the
// property name accepted by Declare and its formatted value.
func (s Style) each(fn func(property, value string)) {
	emit := func(property string, v fmt.Stringer) {
		fn(property, v.String())
	}
	if v, ok := s.Width.Get(); ok {
		emit("width", v)
	}
	if v, ok := s.Height.Get(); ok {
		emit("height", v)
	}
	if v, ok := s.MinWidth.Get(); ok {
		emit("min-width", v)
	}
	if v, ok := s.MinHeight.Get(); ok {
		emit("min-height", v)
	}
	if v, ok := s.MaxWidth.Get(); ok {
		emit("max-width", v)
	}
	if v, ok := s.MaxHeight.Get(); ok {
		emit("max-height", v)
	}
	if v, ok := s.Padding.Get(); ok {
		emit("padding", v)
	}
	if v, ok := s.Margin.Get(); ok {
		emit("margin", v)
	}
	if v, ok := s.Display.Get(); ok {
		emit("display", v)
	}
	if v, ok := s.FlexDirection.Get(); ok {
		emit("flex-direction", v)
	}
	if v, ok := s.FlexGrow.Get(); ok {
		emit("flex-grow", v)
	}
	if v, ok := s.FlexShrink.Get(); ok {
		emit("flex-shrink", v)
	}
	if v, ok := s.AlignItems.Get(); ok {
		emit("align-items", v)
	}
	if v, ok := s.JustifyContent.Get(); ok {
		emit("justify-content", v)
	}
	if v, ok := s.Gap.Get(); ok {
		emit("gap", v)
	}
	if v, ok := s.Color.Get(); ok {
		emit("color", v)
	}
	if v, ok := s.Background.Get(); ok {
		emit("background", v)
	}
	if v, ok := s.Border.Get(); ok {
		emit("border", v)
	}
	if v, ok := s.Opacity.Get(); ok {
		emit("opacity", v)
	}
	if v, ok := s.TextAlign.Get(); ok {
		emit("text-align", v)
	}
	if v, ok := s.FontStyle.Get(); ok {
		emit("font-style", v)
	}
	if v, ok := s.Overflow.Get(); ok {
		emit("overflow", v)
	}
}
