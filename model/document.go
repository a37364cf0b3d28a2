package model

import "strings"

// Result is the complete output of one conversion.
type Result struct {
	Blocks []Block
	Ops    []Op

	// Start is the index the first insertion was addressed to; End is the
	// cursor after the last one.
	Start int
	End   int
}

// Inserted returns the total length of all inserted content.
func (r *Result) Inserted() int {
	total := 0
	for _, op := range r.Ops {
		total += op.Length()
	}
	return total
}

// Text returns the document text as it will exist after the ops are applied.
func (r *Result) Text() string {
	var sb strings.Builder
	for _, op := range r.Ops {
		if op.Kind == OpInsertText {
			sb.WriteString(op.Text)
		}
	}
	return sb.String()
}

// CountOps returns how many ops of the given kind the result contains.
func (r *Result) CountOps(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Walk calls fn for every block in document order, descending into table
// cells. It stops early if fn returns false.
func (r *Result) Walk(fn func(b *Block) bool) {
	walkBlocks(r.Blocks, fn)
}

func walkBlocks(blocks []Block, fn func(b *Block) bool) bool {
	for i := range blocks {
		b := &blocks[i]
		if !fn(b) {
			return false
		}
		for _, row := range b.Rows {
			for j := range row {
				if !walkBlocks(row[j].Blocks, fn) {
					return false
				}
			}
		}
	}
	return true
}
