// Package layout declares the sizing and arrangement vocabulary of a style:
// dimensional units, four-sided edge shorthand, and the flex/display/overflow
// enumerations.
//
// Nothing here computes geometry. A layout solver reads these values, plus
// the definite/intrinsic classification of [Unit], and resolves them against
// real container sizes.
// Types are re-exported through the root tcss package for public consumption.
package layout
