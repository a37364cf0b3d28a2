package model

import "fmt"

// OpKind identifies the operation an Op performs.
type OpKind int

const (
	OpInsertText OpKind = iota
	OpUpdateTextStyle
	OpUpdateParagraphStyle
	OpCreateBullets
	OpInsertImage
)

func (k OpKind) String() string {
	switch k {
	case OpInsertText:
		return "insertText"
	case OpUpdateTextStyle:
		return "updateTextStyle"
	case OpUpdateParagraphStyle:
		return "updateParagraphStyle"
	case OpCreateBullets:
		return "createParagraphBullets"
	case OpInsertImage:
		return "insertInlineImage"
	default:
		return "unknown"
	}
}

// Bullet presets understood by createParagraphBullets.
const (
	BulletPresetUnordered = "BULLET_DISC_CIRCLE_SQUARE"
	BulletPresetOrdered   = "NUMBERED_DECIMAL_ALPHA_ROMAN"
)

// Op is a single document build operation. Only the fields relevant to Kind
// are populated.
type Op struct {
	Kind OpKind

	// OpInsertText, OpInsertImage
	Index int
	Text  string

	// OpUpdateTextStyle, OpUpdateParagraphStyle, OpCreateBullets
	Range          Range
	TextStyle      TextStyle
	ParagraphStyle ParagraphStyle
	BulletPreset   string

	// OpInsertImage; sizes of 0 are left to the destination
	ImageURI string
	WidthPt  float64
	HeightPt float64
}

// InsertText builds an insert op.
func InsertText(index int, text string) Op {
	return Op{Kind: OpInsertText, Index: index, Text: text}
}

// UpdateTextStyle builds a character style op.
func UpdateTextStyle(r Range, style TextStyle) Op {
	return Op{Kind: OpUpdateTextStyle, Range: r, TextStyle: style}
}

// UpdateParagraphStyle builds a paragraph style op.
func UpdateParagraphStyle(r Range, style ParagraphStyle) Op {
	return Op{Kind: OpUpdateParagraphStyle, Range: r, ParagraphStyle: style}
}

// CreateBullets builds a bullet op.
func CreateBullets(r Range, preset string) Op {
	return Op{Kind: OpCreateBullets, Range: r, BulletPreset: preset}
}

// InsertImage builds an inline image op.
func InsertImage(index int, uri string, widthPt, heightPt float64) Op {
	return Op{Kind: OpInsertImage, Index: index, ImageURI: uri, WidthPt: widthPt, HeightPt: heightPt}
}

// Length returns how far the op advances the cursor.
func (o Op) Length() int {
	switch o.Kind {
	case OpInsertText:
		return TextLength(o.Text)
	case OpInsertImage:
		return 1
	default:
		return 0
	}
}

// IsInsert reports whether the op adds content to the document.
func (o Op) IsInsert() bool {
	return o.Kind == OpInsertText || o.Kind == OpInsertImage
}

func (o Op) String() string {
	switch o.Kind {
	case OpInsertText:
		return fmt.Sprintf("insertText %q at %d", o.Text, o.Index)
	case OpUpdateTextStyle:
		return fmt.Sprintf("updateTextStyle [%d,%d) %s", o.Range.Start, o.Range.End, o.TextStyle)
	case OpUpdateParagraphStyle:
		return fmt.Sprintf("updateParagraphStyle [%d,%d) %v", o.Range.Start, o.Range.End, o.ParagraphStyle.Fields())
	case OpCreateBullets:
		return fmt.Sprintf("createParagraphBullets [%d,%d) %s", o.Range.Start, o.Range.End, o.BulletPreset)
	case OpInsertImage:
		return fmt.Sprintf("insertInlineImage %s at %d", o.ImageURI, o.Index)
	default:
		return "unknown"
	}
}
