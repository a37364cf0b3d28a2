package css

import (
	"errors"
	"testing"
)

func TestParseDeclarations(t *testing.T) {
	decls, malformed := ParseDeclarations(`color: red; FONT-WEIGHT:bold ;font-family: "A; B", serif; background: url(a;b) !important`)

	want := []Declaration{
		{Property: "color", Value: "red"},
		{Property: "font-weight", Value: "bold"},
		{Property: "font-family", Value: `"A; B", serif`},
		{Property: "background", Value: "url(a;b)", Important: true},
	}
	if len(decls) != len(want) {
		t.Fatalf("got %d declarations, want %d: %+v", len(decls), len(want), decls)
	}
	for i := range want {
		if decls[i] != want[i] {
			t.Errorf("decl[%d] = %+v, want %+v", i, decls[i], want[i])
		}
	}
	if len(malformed) != 0 {
		t.Errorf("unexpected malformed entries: %v", malformed)
	}
}

func TestParseDeclarations_Malformed(t *testing.T) {
	decls, malformed := ParseDeclarations("color red; : blue; font-size: 12pt; ;")
	if len(decls) != 1 || decls[0].Property != "font-size" {
		t.Errorf("decls = %+v, want only font-size", decls)
	}
	if len(malformed) != 2 {
		t.Errorf("malformed = %v, want 2 entries", malformed)
	}
}

func TestParseDeclarations_Comments(t *testing.T) {
	decls, _ := ParseDeclarations("/* lead */ color: blue; /* trailing")
	if len(decls) != 1 || decls[0].Value != "blue" {
		t.Errorf("decls = %+v", decls)
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"red", "#ff0000"},
		{"RED", "#ff0000"},
		{"#FF0000", "#ff0000"},
		{"#f00", "#ff0000"},
		{"#f00c", "#ff0000"},
		{"#ff000080", "#ff0000"},
		{"rgb(255,0,0)", "#ff0000"},
		{"rgb(255, 0, 0)", "#ff0000"},
		{"rgb(255 0 0)", "#ff0000"},
		{"rgba(255, 0, 0, 0.5)", "#ff0000"},
		{"rgb(255 0 0 / 50%)", "#ff0000"},
		{"rgb(100%, 0%, 0%)", "#ff0000"},
		{"rgb(300, -5, 0)", "#ff0000"},
		{"hsl(0, 100%, 50%)", "#ff0000"},
		{"hsl(120deg 100% 25%)", "#008000"},
		{"green", "#008000"},
		{"gray", "#808080"},
		{"  navy ", "#000080"},
	}
	for _, tt := range tests {
		got, err := Color(tt.in)
		if err != nil {
			t.Errorf("Color(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Color(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "notacolor", "#ggg", "#12345", "rgb(1,2)", "rgb(a,b,c)", "transparent", "currentColor", "hsl(x, 1%, 1%)"} {
		_, err := Color(in)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("Color(%q) error = %v, want ErrInvalidValue", in, err)
		}
	}
}

func TestFontSize(t *testing.T) {
	tests := []struct {
		in     string
		parent float64
		want   float64
	}{
		{"12pt", 0, 12},
		{"16px", 0, 12},
		{"13px", 0, 9.75},
		{"1pc", 0, 12},
		{"1in", 0, 72},
		{"2.54cm", 0, 72},
		{"25.4mm", 0, 72},
		{"2em", 10, 20},
		{"1.5rem", 20, 16.5},
		{"150%", 10, 15},
		{"medium", 0, 12},
		{"xx-large", 0, 24},
		{"larger", 10, 12},
		{"smaller", 12, 10},
		{".5em", 0, 5.5},
	}
	for _, tt := range tests {
		got, err := FontSize(tt.in, tt.parent, 0)
		if err != nil {
			t.Errorf("FontSize(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FontSize(%q, %v) = %v, want %v", tt.in, tt.parent, got, tt.want)
		}
	}
}

func TestFontSize_UnsupportedUnit(t *testing.T) {
	for _, in := range []string{"10vw", "2vh", "3ex", "4ch", "12furlongs"} {
		_, err := FontSize(in, 11, 11)
		var unitErr *UnsupportedUnitError
		if !errors.As(err, &unitErr) {
			t.Errorf("FontSize(%q) error = %v, want *UnsupportedUnitError", in, err)
			continue
		}
		if unitErr.Property != "font-size" {
			t.Errorf("Property = %q", unitErr.Property)
		}
	}
}

func TestFontSize_Invalid(t *testing.T) {
	for _, in := range []string{"", "big", "12", "-3pt", "0px", "px"} {
		_, err := FontSize(in, 11, 11)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("FontSize(%q) error = %v, want ErrInvalidValue", in, err)
		}
	}
}

func TestLength(t *testing.T) {
	got, err := Length("width", "200", true)
	if err != nil || got != 150 {
		t.Errorf("Length(200) = %v, %v; want 150", got, err)
	}
	if _, err := Length("width", "200", false); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("unitless without allowUnitless should be invalid, got %v", err)
	}
	if _, err := Length("width", "50%", true); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("percent width should be invalid, got %v", err)
	}
	var unitErr *UnsupportedUnitError
	if _, err := Length("height", "10vh", true); !errors.As(err, &unitErr) {
		t.Errorf("vh should be unsupported, got %v", err)
	}
}

func TestLegacyFontSize(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1", 7.5},
		{"3", 12},
		{"7", 36},
		{"+1", 13.5},
		{"-2", 7.5},
		{"9", 36},
	}
	for _, tt := range tests {
		got, err := LegacyFontSize(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("LegacyFontSize(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := LegacyFontSize("big"); err == nil {
		t.Error("expected error for non-numeric size")
	}
}

func TestFontFamily(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Arial", "Arial"},
		{`"Times New Roman", serif`, "Times New Roman"},
		{"'Open Sans'", "Open Sans"},
		{"monospace", "Courier New"},
		{"sans-serif", "Arial"},
	}
	for _, tt := range tests {
		got, err := FontFamily(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("FontFamily(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
	if _, err := FontFamily(`""`); err == nil {
		t.Error("expected error for empty family")
	}
}

func TestFontWeight(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"bold", true},
		{"bolder", true},
		{"700", true},
		{"600", true},
		{"500", false},
		{"normal", false},
	}
	for _, tt := range tests {
		got, err := FontWeight(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("FontWeight(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := FontWeight("heavy"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("FontWeight(heavy) error = %v", err)
	}
}

func TestFontStyle(t *testing.T) {
	if got, err := FontStyle("oblique 10deg"); err != nil || !got {
		t.Errorf("oblique = %v, %v", got, err)
	}
	if got, err := FontStyle("normal"); err != nil || got {
		t.Errorf("normal = %v, %v", got, err)
	}
	if _, err := FontStyle("slanted"); err == nil {
		t.Error("expected error")
	}
}

func TestTextDecoration(t *testing.T) {
	d, err := TextDecoration("underline line-through")
	if err != nil || d.Underline == nil || !*d.Underline || d.LineThrough == nil || !*d.LineThrough {
		t.Errorf("both lines: %+v, %v", d, err)
	}

	d, err = TextDecoration("underline dotted red")
	if err != nil || d.Underline == nil || d.LineThrough != nil {
		t.Errorf("underline only: %+v, %v", d, err)
	}

	d, err = TextDecoration("none")
	if err != nil || d.Underline == nil || *d.Underline || d.LineThrough == nil || *d.LineThrough {
		t.Errorf("none: %+v, %v", d, err)
	}

	if _, err := TextDecoration("wavy"); err == nil {
		t.Error("expected error for value without a line")
	}
}

func TestVerticalAlignAndTextAlign(t *testing.T) {
	if got, _ := VerticalAlign("SUPER"); got != OffsetSuper {
		t.Errorf("VerticalAlign(SUPER) = %q", got)
	}
	if _, err := VerticalAlign("middle"); err == nil {
		t.Error("middle has no text offset")
	}

	tests := map[string]string{"left": AlignStart, "center": AlignCenter, "right": AlignEnd, "justify": AlignJustify}
	for in, want := range tests {
		if got, err := TextAlign(in); err != nil || got != want {
			t.Errorf("TextAlign(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
}

func TestFields(t *testing.T) {
	got := Fields("  url(a b.png)\tno-repeat rgb(0, 0, 255) ")
	want := []string{"url(a b.png)", "no-repeat", "rgb(0, 0, 255)"}
	if len(got) != len(want) {
		t.Fatalf("Fields() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Fields()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
