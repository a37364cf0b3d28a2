// Package model provides the intermediate representation (IR) produced when
// rich text is converted into document build operations.
//
// All conversion entry points ultimately produce a [Result], making these
// types the primary API for consuming converted content.
//
// # Blocks and Runs
//
// A [Result] holds the structural view of the input as a sequence of [Block]
// values. Each block owns the [Run] values that make up its inline content:
//
//   - [BlockParagraph] - plain paragraphs and implicit paragraphs in containers
//   - [BlockHeading] - headings (levels 1-6)
//   - [BlockListItem] - list items with nesting depth and ordered marker
//   - [BlockTable] - tables whose cells contain nested blocks
//   - [BlockRule] - horizontal rules
//
// # Operations
//
// The same conversion also produces an ordered list of [Op] values. Every op
// addresses the destination document by absolute index, so ops must be applied
// in order:
//
//	for _, op := range result.Ops {
//	    fmt.Println(op)
//	}
//
// Indexes are measured in UTF-16 code units (see [TextLength]), which is how
// the Google Docs API addresses text.
//
// # Styles
//
// [TextStyle] is a closed record of the character properties the destination
// understands. Styles cascade with [TextStyle.Merge]: a child value overrides
// its parent property by property, never wholesale.
package model
