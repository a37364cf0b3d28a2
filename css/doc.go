// Package css parses the subset of CSS found in inline style attributes and
// legacy presentational HTML attributes.
//
// The package works on values only: it splits a style attribute into
// [Declaration] values and normalizes individual property values into the
// canonical forms the rest of the library uses.
//
// # Colors
//
// [Color] resolves named colors, hex notation, rgb()/rgba() and hsl()/hsla()
// into lower-case "#rrggbb". Alpha channels are dropped.
//
// # Font Sizes
//
// [FontSize] converts sizes into points. Absolute units with a fixed ratio
// (px at 96 DPI, pc, in, cm, mm, q) are converted, relative units (em, rem,
// %) resolve against the inherited size, and keywords follow the CSS
// absolute-size table. A well-formed dimension with any other unit returns an
// [*UnsupportedUnitError].
//
// Malformed values return an error wrapping [ErrInvalidValue]; callers are
// expected to ignore the declaration.
package css
