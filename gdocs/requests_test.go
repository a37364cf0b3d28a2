package gdocs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/docbridge/model"
)

func TestRequest_InsertText(t *testing.T) {
	req := Request(model.InsertText(6, "Hello "))
	require.NotNil(t, req.InsertText)
	assert.Equal(t, "Hello ", req.InsertText.Text)
	assert.Equal(t, int64(6), req.InsertText.Location.Index)
}

func TestRequest_UpdateTextStyle(t *testing.T) {
	style := model.TextStyle{
		Bold:       model.FlagOn,
		Italic:     model.FlagOff,
		FontFamily: "Courier New",
		FontSizePt: 14,
		Foreground: "#ff0000",
		Baseline:   model.BaselineSuperscript,
		Link:       "https://example.com",
	}
	req := Request(model.UpdateTextStyle(model.Range{Start: 12, End: 17}, style))
	require.NotNil(t, req.UpdateTextStyle)

	u := req.UpdateTextStyle
	assert.Equal(t, int64(12), u.Range.StartIndex)
	assert.Equal(t, int64(17), u.Range.EndIndex)
	assert.Equal(t, "bold,italic,weightedFontFamily,fontSize,foregroundColor,baselineOffset,link", u.Fields)
	assert.True(t, u.TextStyle.Bold)
	assert.False(t, u.TextStyle.Italic)
	assert.Contains(t, u.TextStyle.ForceSendFields, "Italic")
	assert.Equal(t, "Courier New", u.TextStyle.WeightedFontFamily.FontFamily)
	assert.Equal(t, 14.0, u.TextStyle.FontSize.Magnitude)
	assert.Equal(t, "PT", u.TextStyle.FontSize.Unit)
	assert.Equal(t, 1.0, u.TextStyle.ForegroundColor.Color.RgbColor.Red)
	assert.Equal(t, 0.0, u.TextStyle.ForegroundColor.Color.RgbColor.Green)
	assert.Equal(t, "SUPERSCRIPT", u.TextStyle.BaselineOffset)
	assert.Equal(t, "https://example.com", u.TextStyle.Link.Url)
}

func TestRequest_ExplicitFalseIsSerialized(t *testing.T) {
	req := Request(model.UpdateTextStyle(model.Range{Start: 1, End: 2}, model.TextStyle{Bold: model.FlagOff}))

	raw, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"bold":false`)
}

func TestRequest_ParagraphStyle(t *testing.T) {
	ps := model.ParagraphStyle{NamedStyle: "HEADING_1", Alignment: model.AlignCenter, IndentStartPt: 72, IndentFirstLinePt: 54}
	req := Request(model.UpdateParagraphStyle(model.Range{Start: 0, End: 5}, ps))
	require.NotNil(t, req.UpdateParagraphStyle)

	u := req.UpdateParagraphStyle
	assert.Equal(t, "namedStyleType,alignment,indentStart,indentFirstLine", u.Fields)
	assert.Equal(t, "HEADING_1", u.ParagraphStyle.NamedStyleType)
	assert.Equal(t, "CENTER", u.ParagraphStyle.Alignment)
	assert.Equal(t, 72.0, u.ParagraphStyle.IndentStart.Magnitude)
	assert.Equal(t, 54.0, u.ParagraphStyle.IndentFirstLine.Magnitude)
}

func TestRequest_BulletsAndImages(t *testing.T) {
	bullets := Request(model.CreateBullets(model.Range{Start: 2, End: 3}, model.BulletPresetOrdered))
	require.NotNil(t, bullets.CreateParagraphBullets)
	assert.Equal(t, "NUMBERED_DECIMAL_ALPHA_ROMAN", bullets.CreateParagraphBullets.BulletPreset)

	img := Request(model.InsertImage(4, "https://example.com/a.png", 75, 0))
	require.NotNil(t, img.InsertInlineImage)
	assert.Equal(t, "https://example.com/a.png", img.InsertInlineImage.Uri)
	assert.Equal(t, int64(4), img.InsertInlineImage.Location.Index)
	assert.Equal(t, 75.0, img.InsertInlineImage.ObjectSize.Width.Magnitude)
	assert.Nil(t, img.InsertInlineImage.ObjectSize.Height)

	unsized := Request(model.InsertImage(4, "https://example.com/a.png", 0, 0))
	assert.Nil(t, unsized.InsertInlineImage.ObjectSize)
}

func TestRequests_SkipsEmptyStyles(t *testing.T) {
	ops := []model.Op{
		model.InsertText(0, "x"),
		model.UpdateTextStyle(model.Range{Start: 0, End: 1}, model.TextStyle{}),
		model.UpdateParagraphStyle(model.Range{Start: 0, End: 1}, model.ParagraphStyle{}),
		model.InsertText(1, "\n"),
	}
	reqs := Requests(ops)
	require.Len(t, reqs, 2)
	assert.NotNil(t, reqs[0].InsertText)
	assert.NotNil(t, reqs[1].InsertText)
}

func TestRequest_ZeroIndexIsSent(t *testing.T) {
	data, err := json.Marshal(Requests([]model.Op{
		model.InsertText(0, "Hi"),
		model.UpdateParagraphStyle(model.Range{Start: 0, End: 2}, model.ParagraphStyle{NamedStyle: "HEADING_1"}),
	}))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"location":{"index":0}`)
	assert.Contains(t, string(data), `"startIndex":0`)
}
