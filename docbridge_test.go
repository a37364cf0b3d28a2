package docbridge

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/docbridge/css"
	"github.com/tsawler/docbridge/docx"
	"github.com/tsawler/docbridge/format"
	"github.com/tsawler/docbridge/model"
)

func TestFromHTML(t *testing.T) {
	ops, warnings, err := FromHTML("<h1>Title</h1><p>Hello <b>world</b></p>").Ops()
	if err != nil {
		t.Fatalf("Ops() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v", warnings)
	}
	if len(ops) != 7 {
		t.Fatalf("len(ops) = %d, want 7", len(ops))
	}
	if ops[5].Kind != model.OpUpdateTextStyle || ops[5].Range != (model.Range{Start: 12, End: 17}) {
		t.Errorf("ops[5] = %v", ops[5])
	}
}

func TestFromMarkdown(t *testing.T) {
	text, _, err := FromMarkdown("# Title\n\n- a\n- b\n").Text()
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if text != "Title\na\nb\n" {
		t.Errorf("Text() = %q", text)
	}
}

func TestConverter_StartIndex(t *testing.T) {
	base := FromHTML("<p>abc</p>")
	shifted := base.StartIndex(1)

	res, _, err := shifted.Result()
	if err != nil {
		t.Fatalf("Result() error = %v", err)
	}
	if res.Ops[0].Index != 1 || res.End != 5 {
		t.Errorf("first index = %d, End = %d, want 1, 5", res.Ops[0].Index, res.End)
	}

	// The original converter is unchanged.
	res, _, _ = base.Result()
	if res.Ops[0].Index != 0 {
		t.Errorf("base first index = %d, want 0", res.Ops[0].Index)
	}
}

func TestConverter_Options(t *testing.T) {
	res, _, err := FromHTML(`<a href="https://a.b">x</a> <mark>y</mark> <code>z</code> <span style="font-size:2em">w</span>`).
		LinkColor("purple").
		HighlightColor("rgb(0, 255, 0)").
		CodeFont("Roboto Mono").
		BaseFontSize(10).
		Result()
	if err != nil {
		t.Fatalf("Result() error = %v", err)
	}

	var styles []model.TextStyle
	for _, op := range res.Ops {
		if op.Kind == model.OpUpdateTextStyle {
			styles = append(styles, op.TextStyle)
		}
	}
	if len(styles) != 4 {
		t.Fatalf("got %d style ops, want 4", len(styles))
	}
	if styles[0].Foreground != "#800080" {
		t.Errorf("link color = %q, want #800080", styles[0].Foreground)
	}
	if styles[1].Background != "#00ff00" {
		t.Errorf("highlight = %q, want #00ff00", styles[1].Background)
	}
	if styles[2].FontFamily != "Roboto Mono" {
		t.Errorf("code font = %q", styles[2].FontFamily)
	}
	if styles[3].FontSizePt != 20 {
		t.Errorf("font size = %v, want 20", styles[3].FontSizePt)
	}
}

func TestConverter_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		conv *Converter
	}{
		{"negative start", FromHTML("<p>x</p>").StartIndex(-1)},
		{"zero font size", FromHTML("<p>x</p>").BaseFontSize(0)},
		{"bad link color", FromHTML("<p>x</p>").LinkColor("not-a-color")},
		{"bad highlight", FromHTML("<p>x</p>").HighlightColor("#12")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := tt.conv.Result(); err == nil {
				t.Error("Result() expected error")
			}
		})
	}
}

func TestConverter_FirstErrorWins(t *testing.T) {
	_, _, err := FromHTML("<p>x</p>").StartIndex(-1).LinkColor("nope").Result()
	if err == nil || !strings.Contains(err.Error(), "start index") {
		t.Errorf("error = %v, want the start index error", err)
	}
}

func TestConverter_UnsupportedUnit(t *testing.T) {
	_, _, err := FromHTML(`<p style="font-size:4vmin">x</p>`).Ops()
	var unit *css.UnsupportedUnitError
	if !errors.As(err, &unit) {
		t.Errorf("error = %v, want UnsupportedUnitError", err)
	}
}

func TestConverter_Requests(t *testing.T) {
	reqs, _, err := FromHTML("<h2>Hi</h2>").StartIndex(1).Requests()
	if err != nil {
		t.Fatalf("Requests() error = %v", err)
	}
	if len(reqs) != 3 {
		t.Fatalf("len(reqs) = %d, want 3", len(reqs))
	}
	if reqs[0].InsertText == nil || reqs[0].InsertText.Location.Index != 1 {
		t.Errorf("reqs[0] = %+v", reqs[0])
	}
	if reqs[1].UpdateParagraphStyle == nil || reqs[1].UpdateParagraphStyle.ParagraphStyle.NamedStyleType != "HEADING_2" {
		t.Errorf("reqs[1] = %+v", reqs[1])
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	write := func(name string, data []byte) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	docxData, err := docx.FromText("one\ntwo & three")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"html", write("a.html", []byte("<p>html</p>")), "html\n"},
		{"markdown", write("a.md", []byte("**md**")), "md\n"},
		{"sniffed", write("noext", []byte("<p>sniffed</p>")), "sniffed\n"},
		{"docx", write("a.docx", docxData), "one\ntwo & three\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, _, err := Open(tt.path).Text()
			if err != nil {
				t.Fatalf("Text() error = %v", err)
			}
			if text != tt.want {
				t.Errorf("Text() = %q, want %q", text, tt.want)
			}
		})
	}
}

func TestOpen_Errors(t *testing.T) {
	if _, _, err := Open("nonexistent.html").Ops(); err == nil {
		t.Error("expected error for non-existent file")
	}

	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(`{"body":{}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Open(path).Ops(); err == nil {
		t.Error("expected error converting Docs JSON")
	}

	if _, _, err := FromBytes([]byte("x"), format.Unknown).Ops(); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestFormatWarnings(t *testing.T) {
	_, warnings, err := FromHTML(`<p style="color: nope; font-size: huge">x</p>`).Ops()
	if err != nil {
		t.Fatalf("Ops() error = %v", err)
	}
	got := FormatWarnings(warnings)
	want := "<p> color: invalid value: \"nope\"\n<p> font-size: invalid value: \"huge\""
	if got != want {
		t.Errorf("FormatWarnings() = %q, want %q", got, want)
	}
}

func TestMust(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustOps() should panic on error")
		}
	}()
	MustOps(FromHTML("<p>x</p>").StartIndex(-1).Ops())
}
