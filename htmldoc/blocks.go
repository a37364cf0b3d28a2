package htmldoc

import (
	"golang.org/x/net/html"

	"github.com/tsawler/docbridge/css"
	"github.com/tsawler/docbridge/model"
)

const (
	listIndentPt  = 36.0
	bulletHangPt  = 18.0
	quoteIndentPt = 36.0
	ruleText      = "___"
)

type frameKind int

const (
	frameContainer frameKind = iota // div, section, body: closes only if it has content
	frameParagraph
	frameHeading
	frameListItem
	frameRule
)

// frame describes the paragraph an element opens.
type frame struct {
	kind    frameKind
	level   int // heading level
	depth   int // list depth
	ordered bool
	para    model.ParagraphStyle

	// terminal frames always produce a paragraph, even when empty.
	terminal bool
}

func (f frame) blockKind() model.BlockKind {
	switch f.kind {
	case frameHeading:
		return model.BlockHeading
	case frameListItem:
		return model.BlockListItem
	case frameRule:
		return model.BlockRule
	default:
		return model.BlockParagraph
	}
}

// frameFor builds the frame for a block element. sc is the element's own
// scope, so its text-align and list nesting are already applied.
func frameFor(tag string, sc scope) frame {
	f := frame{kind: frameContainer}
	switch tag {
	case "p":
		if sc.frame.kind == frameListItem {
			// Paragraphs inside a loose list item keep the bullet.
			f = sc.frame
			f.para = paragraphStyle(f, sc)
			return f
		}
		f = frame{kind: frameParagraph, terminal: true}
	case "h1", "h2", "h3", "h4", "h5", "h6":
		f = frame{kind: frameHeading, level: int(tag[1] - '0'), terminal: true}
	case "li":
		depth := sc.lists - 1
		if depth < 0 {
			depth = 0
		}
		f = frame{kind: frameListItem, depth: depth, ordered: sc.ordered, terminal: true}
	case "td", "th":
		f = frame{kind: frameParagraph, terminal: true}
	}
	f.para = paragraphStyle(f, sc)
	return f
}

func paragraphStyle(f frame, sc scope) model.ParagraphStyle {
	ps := model.ParagraphStyle{Alignment: docsAlignment(sc.align)}
	if f.kind == frameHeading {
		ps.NamedStyle = model.HeadingStyle(f.level)
	}

	indent := sc.indentPt
	switch {
	case f.kind == frameListItem && f.depth > 0:
		indent += listIndentPt * float64(f.depth+1)
		ps.IndentStartPt = indent
		ps.IndentFirstLinePt = indent - bulletHangPt
	case indent > 0:
		ps.IndentStartPt = indent
		ps.IndentFirstLinePt = indent
	}
	return ps
}

func docsAlignment(align string) string {
	switch align {
	case css.AlignStart:
		return model.AlignStart
	case css.AlignCenter:
		return model.AlignCenter
	case css.AlignEnd:
		return model.AlignEnd
	case css.AlignJustify:
		return model.AlignJustified
	}
	return ""
}

// block converts a block element: pending inline content of the enclosing
// block is closed first, the element's children are collected into f, and
// the enclosing block resumes afterwards.
func (c *converter) block(n *html.Node, f frame, sc scope, st state) (state, error) {
	outer := st.open.frame
	st = c.flush(st)

	st, err := c.blockBody(n, f, sc, st)
	if err != nil {
		return st, err
	}

	st.open = pending{frame: outer, start: st.cursor, terminated: true}
	return st, nil
}

// blockBody walks n's children as the content of a new f paragraph and
// closes it.
func (c *converter) blockBody(n *html.Node, f frame, sc scope, st state) (state, error) {
	st.open = pending{frame: f, start: st.cursor}
	sc.frame = f

	st, err := c.walkChildren(n, sc, st)
	if err != nil {
		return st, err
	}
	if st.open.hasContent || (f.terminal && !st.open.terminated) {
		st = c.terminate(st)
	}
	return st, nil
}

// flush closes the open paragraph if it holds content.
func (c *converter) flush(st state) state {
	if st.open.hasContent {
		return c.terminate(st)
	}
	return st
}

// terminate closes the open paragraph: its paragraph style is emitted over
// the content, then the newline that ends it. The same frame stays open for
// anything that follows.
func (c *converter) terminate(st state) state {
	p := st.open
	f := p.frame
	content := model.Range{Start: p.start, End: st.cursor}

	if !content.Empty() && !f.para.IsZero() {
		st.ops = append(st.ops, model.UpdateParagraphStyle(content, f.para))
	}

	st.ops = append(st.ops, model.InsertText(st.cursor, "\n"))
	st.blocks = append(st.blocks, model.Block{
		Kind:       f.blockKind(),
		Level:      f.level,
		Depth:      f.depth,
		Ordered:    f.ordered,
		Runs:       p.runs,
		Range:      content,
		Terminator: st.cursor,
	})
	st.cursor++
	st.open = pending{frame: f, start: st.cursor, terminated: true}
	return st
}

// list converts a ul or ol. Its items close as ordinary paragraphs; the
// outermost list then bullets every paragraph it produced, empty items and
// nested lists included, with a single request.
func (c *converter) list(n *html.Node, sc scope, st state) (state, error) {
	st = c.flush(st)
	start := st.cursor

	st, err := c.block(n, frameFor(n.Data, sc), sc, st)
	if err != nil {
		return st, err
	}

	r := model.Range{Start: start, End: st.cursor}
	if sc.lists == 1 && !r.Empty() {
		preset := model.BulletPresetUnordered
		if sc.ordered {
			preset = model.BulletPresetOrdered
		}
		st.ops = append(st.ops, model.CreateBullets(r, preset))
	}
	return st, nil
}

// rule emits a horizontal rule as its own paragraph.
func (c *converter) rule(sc scope, st state) state {
	outer := st.open.frame
	st = c.flush(st)

	st.open = pending{frame: frame{kind: frameRule}, start: st.cursor}
	st = c.emitRun(ruleText, sc.style, st)
	st = c.terminate(st)

	st.open = pending{frame: outer, start: st.cursor, terminated: true}
	return st
}

// table emits the caption as a paragraph ahead of the table, then cell
// content in row-major order. Each cell holds its own paragraphs; the table
// itself adds no terminator.
func (c *converter) table(n *html.Node, sc scope, st state) (state, error) {
	outer := st.open.frame
	st = c.flush(st)

	if caption := tableCaption(n); caption != nil {
		capScope, warnings, err := c.enter(caption, sc)
		if err != nil {
			return st, err
		}
		st.warnings = append(st.warnings, warnings...)
		st, err = c.blockBody(caption, frameFor(caption.Data, capScope), capScope, st)
		if err != nil {
			return st, err
		}
	}

	rows := tableRows(n)
	if len(rows) == 0 {
		st.open = pending{frame: outer, start: st.cursor, terminated: true}
		return st, nil
	}

	outerBlocks := st.blocks
	tbl := model.Block{Kind: model.BlockTable, Terminator: -1}
	start := st.cursor

	for r, row := range rows {
		rowScope, warnings, err := c.enter(row.tr, sc)
		if err != nil {
			return st, err
		}
		st.warnings = append(st.warnings, warnings...)

		cells := make([]model.Cell, 0, len(row.cells))
		for col, cellNode := range row.cells {
			cellScope, warnings, err := c.enter(cellNode, rowScope)
			if err != nil {
				return st, err
			}
			st.warnings = append(st.warnings, warnings...)

			st.blocks = nil
			st, err = c.blockBody(cellNode, frameFor(cellNode.Data, cellScope), cellScope, st)
			if err != nil {
				return st, err
			}
			cells = append(cells, model.Cell{
				Row:      r,
				Col:      col,
				IsHeader: cellNode.Data == "th",
				Blocks:   st.blocks,
			})
		}
		tbl.Rows = append(tbl.Rows, cells)
	}

	tbl.Range = model.Range{Start: start, End: st.cursor}
	st.blocks = append(outerBlocks, tbl)
	st.open = pending{frame: outer, start: st.cursor, terminated: true}
	return st, nil
}

// tableCaption returns the first caption child of a table.
func tableCaption(table *html.Node) *html.Node {
	for c := table.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "caption" {
			return c
		}
	}
	return nil
}

type tableRow struct {
	tr    *html.Node
	cells []*html.Node
}

// tableRows collects the cells of a table, looking through thead, tbody and
// tfoot sections. Nested tables belong to their cells and are not visited.
func tableRows(table *html.Node) []tableRow {
	var rows []tableRow

	addRow := func(tr *html.Node) {
		var cells []*html.Node
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
				cells = append(cells, c)
			}
		}
		if len(cells) > 0 {
			rows = append(rows, tableRow{tr: tr, cells: cells})
		}
	}

	for c := table.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead", "tbody", "tfoot":
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type == html.ElementNode && tr.Data == "tr" {
					addRow(tr)
				}
			}
		case "tr":
			addRow(c)
		}
	}
	return rows
}
