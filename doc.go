// Package tcss provides the style declarations and cascade for terminal UIs.
//
// Users import this single package for the complete public API: the value
// types (units, colors, edges, borders, font modifiers, layout keywords),
// the Style aggregate with its field-by-field merge, cascades over
// priority layers, property inheritance, CSS-like property parsing and
// color degradation for the terminal's capabilities.
//
// Every Style field is optional. An absent field is distinct from a field
// that is present and holds its type's zero value, so merging a partial
// Style only overrides what it declares:
//
//	base := tcss.New().WithColor(tcss.Red).WithPaddingAll(tcss.Cells(1))
//	hover := tcss.New().WithColor(tcss.BrightRed)
//	got := base.MergedWith(hover) // bright red text, padding kept
//
// This package declares and composes values only. Layout geometry and
// painting belong to the consumer; pkg/tcellstyle and pkg/lipglossstyle
// convert resolved styles for two common backends.
package tcss
