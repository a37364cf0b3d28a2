package model

import "strings"

// BlockKind represents the structural type of a block
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockListItem
	BlockTable
	BlockRule
)

func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "Paragraph"
	case BlockHeading:
		return "Heading"
	case BlockListItem:
		return "ListItem"
	case BlockTable:
		return "Table"
	case BlockRule:
		return "Rule"
	default:
		return "Unknown"
	}
}

// Range is a half-open index interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of indexes covered.
func (r Range) Len() int { return r.End - r.Start }

// Empty reports whether the range covers nothing.
func (r Range) Empty() bool { return r.End <= r.Start }

// Run is a contiguous span of text sharing one resolved style (a StyledRun).
type Run struct {
	Text  string
	Style TextStyle
	Range Range
}

// Block is one structural unit of the converted document.
type Block struct {
	Kind    BlockKind
	Level   int  // heading level 1-6
	Depth   int  // list nesting depth, 0 = outermost
	Ordered bool // list items only
	Runs    []Run

	// Range covers the inline content, excluding the terminator.
	Range Range

	// Terminator is the index of the closing newline. Tables have none and
	// report -1.
	Terminator int

	// Rows holds cells for BlockTable, row-major.
	Rows [][]Cell
}

// Text returns the concatenated run text of the block.
func (b *Block) Text() string {
	var sb strings.Builder
	for _, r := range b.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Cell is a table cell containing nested blocks.
type Cell struct {
	Row      int
	Col      int
	IsHeader bool
	Blocks   []Block
}

// Text returns the text of all blocks in the cell joined by newlines.
func (c *Cell) Text() string {
	parts := make([]string, 0, len(c.Blocks))
	for i := range c.Blocks {
		parts = append(parts, c.Blocks[i].Text())
	}
	return strings.Join(parts, "\n")
}

// ColumnCount returns the widest row of a table block.
func (b *Block) ColumnCount() int {
	cols := 0
	for _, row := range b.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}
