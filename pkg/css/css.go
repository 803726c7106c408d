// Package css implements the subset of CSS handling the accessibility
// engine needs: inline style parsing, effective-value resolution up the
// ancestor chain, color parsing, and WCAG contrast mathematics.
//
// This package provides:
//
// - Style: a parsed inline style declaration list
// - Resolve: effective property lookup with ancestor cascading and defaults
// - Color: an RGB triple with hex/named parsing and relative luminance
// - ContrastRatio, ThresholdFor, AdjustForeground: the WCAG contrast math
//   and the auto-correction search used by the remediation pass
//
// Color parsing deliberately treats unrecognized tokens (including
// "transparent" and "inherit") as "no color" rather than an error; a missing
// color means the contrast check is skipped for that node.
package css
