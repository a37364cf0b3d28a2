// Package gdocs connects converted operations to the Google Docs API: it
// builds batchUpdate requests, submits them, and extracts content back out
// of Docs JSON.
package gdocs

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"google.golang.org/api/docs/v1"

	"github.com/tsawler/docbridge/model"
)

const unitPT = "PT"

// Requests maps ops to Docs API requests, preserving order.
func Requests(ops []model.Op) []*docs.Request {
	reqs := make([]*docs.Request, 0, len(ops))
	for _, op := range ops {
		if req := Request(op); req != nil {
			reqs = append(reqs, req)
		}
	}
	return reqs
}

// Request maps a single op. It returns nil for ops with nothing to send.
func Request(op model.Op) *docs.Request {
	switch op.Kind {
	case model.OpInsertText:
		return &docs.Request{InsertText: &docs.InsertTextRequest{
			Text:     op.Text,
			Location: location(op.Index),
		}}

	case model.OpUpdateTextStyle:
		fields := op.TextStyle.Fields()
		if len(fields) == 0 {
			return nil
		}
		return &docs.Request{UpdateTextStyle: &docs.UpdateTextStyleRequest{
			Range:     docsRange(op.Range),
			TextStyle: TextStyle(op.TextStyle),
			Fields:    strings.Join(fields, ","),
		}}

	case model.OpUpdateParagraphStyle:
		fields := op.ParagraphStyle.Fields()
		if len(fields) == 0 {
			return nil
		}
		return &docs.Request{UpdateParagraphStyle: &docs.UpdateParagraphStyleRequest{
			Range:          docsRange(op.Range),
			ParagraphStyle: ParagraphStyle(op.ParagraphStyle),
			Fields:         strings.Join(fields, ","),
		}}

	case model.OpCreateBullets:
		return &docs.Request{CreateParagraphBullets: &docs.CreateParagraphBulletsRequest{
			Range:        docsRange(op.Range),
			BulletPreset: op.BulletPreset,
		}}

	case model.OpInsertImage:
		req := &docs.InsertInlineImageRequest{
			Uri:      op.ImageURI,
			Location: location(op.Index),
		}
		if op.WidthPt > 0 || op.HeightPt > 0 {
			req.ObjectSize = &docs.Size{Width: dimension(op.WidthPt), Height: dimension(op.HeightPt)}
		}
		return &docs.Request{InsertInlineImage: req}
	}
	return nil
}

// TextStyle converts a resolved style. Flags that are explicitly off are
// force-sent so the field mask clears them.
func TextStyle(s model.TextStyle) *docs.TextStyle {
	ts := &docs.TextStyle{
		Bold:          s.Bold.On(),
		Italic:        s.Italic.On(),
		Underline:     s.Underline.On(),
		Strikethrough: s.Strikethrough.On(),
	}
	for _, f := range []struct {
		flag model.Flag
		name string
	}{
		{s.Bold, "Bold"},
		{s.Italic, "Italic"},
		{s.Underline, "Underline"},
		{s.Strikethrough, "Strikethrough"},
	} {
		if f.flag == model.FlagOff {
			ts.ForceSendFields = append(ts.ForceSendFields, f.name)
		}
	}

	if s.FontFamily != "" {
		ts.WeightedFontFamily = &docs.WeightedFontFamily{FontFamily: s.FontFamily}
	}
	if s.FontSizePt > 0 {
		ts.FontSize = dimension(s.FontSizePt)
	}
	if s.Foreground != "" {
		ts.ForegroundColor = optionalColor(s.Foreground)
	}
	if s.Background != "" {
		ts.BackgroundColor = optionalColor(s.Background)
	}
	if s.Baseline != model.BaselineUnset {
		ts.BaselineOffset = s.Baseline.String()
	}
	if s.Link != "" {
		ts.Link = &docs.Link{Url: s.Link}
	}
	return ts
}

// ParagraphStyle converts a paragraph style.
func ParagraphStyle(p model.ParagraphStyle) *docs.ParagraphStyle {
	ps := &docs.ParagraphStyle{
		NamedStyleType: p.NamedStyle,
		Alignment:      p.Alignment,
	}
	if p.IndentStartPt > 0 {
		ps.IndentStart = dimension(p.IndentStartPt)
	}
	if p.IndentFirstLinePt > 0 {
		ps.IndentFirstLine = dimension(p.IndentFirstLinePt)
	}
	return ps
}

// location always sends the index so that 0 survives omitempty.
func location(index int) *docs.Location {
	return &docs.Location{Index: int64(index), ForceSendFields: []string{"Index"}}
}

func docsRange(r model.Range) *docs.Range {
	return &docs.Range{StartIndex: int64(r.Start), EndIndex: int64(r.End), ForceSendFields: []string{"StartIndex"}}
}

func dimension(pt float64) *docs.Dimension {
	if pt <= 0 {
		return nil
	}
	return &docs.Dimension{Magnitude: pt, Unit: unitPT}
}

// optionalColor converts a "#rrggbb" color. Colors are canonical by the time
// they reach an op, so a parse failure yields black.
func optionalColor(hex string) *docs.OptionalColor {
	c, err := colorful.Hex(hex)
	if err != nil {
		c = colorful.Color{}
	}
	return &docs.OptionalColor{Color: &docs.Color{RgbColor: &docs.RgbColor{
		Red:   c.R,
		Green: c.G,
		Blue:  c.B,
	}}}
}
