package css

import (
	"strconv"
	"strings"
)

// genericFamilies maps CSS generic font families to concrete fonts available
// in Google Docs.
var genericFamilies = map[string]string{
	"monospace":  "Courier New",
	"serif":      "Times New Roman",
	"sans-serif": "Arial",
	"system-ui":  "Arial",
	"cursive":    "Comic Sans MS",
}

// FontFamily returns the first family of a font-family list with quotes
// removed. Generic families are mapped to a concrete font.
func FontFamily(value string) (string, error) {
	for _, part := range splitTopLevel(value, ',') {
		name := strings.TrimSpace(part)
		name = strings.Trim(name, `"'`)
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		switch strings.ToLower(name) {
		case "inherit", "initial", "unset":
			return "", invalid("font-family", value)
		}
		if concrete, ok := genericFamilies[strings.ToLower(name)]; ok {
			return concrete, nil
		}
		return name, nil
	}
	return "", invalid("font-family", value)
}

// FontWeight reports whether a font-weight value renders bold. Numeric
// weights of 600 and above count as bold.
func FontWeight(value string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "bold", "bolder":
		return true, nil
	case "normal", "lighter":
		return false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > 1000 {
		return false, invalid("font-weight", value)
	}
	return n >= 600, nil
}

// FontStyle reports whether a font-style value is italic.
func FontStyle(value string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch {
	case v == "italic", strings.HasPrefix(v, "oblique"):
		return true, nil
	case v == "normal":
		return false, nil
	}
	return false, invalid("font-style", value)
}

// Decoration is the parsed result of text-decoration. Nil pointers mean the
// value did not mention the line.
type Decoration struct {
	Underline   *bool
	LineThrough *bool
}

// TextDecoration parses text-decoration and text-decoration-line values.
// "none" turns both lines off.
func TextDecoration(value string) (Decoration, error) {
	var d Decoration
	on, off := true, false
	recognized := false

	for _, tok := range strings.Fields(strings.ToLower(value)) {
		switch tok {
		case "underline":
			d.Underline = &on
			recognized = true
		case "line-through":
			d.LineThrough = &on
			recognized = true
		case "none":
			d.Underline = &off
			d.LineThrough = &off
			recognized = true
		case "overline", "blink":
			recognized = true
		}
	}
	if !recognized {
		return Decoration{}, invalid("text-decoration", value)
	}
	return d, nil
}

// Vertical offsets returned by VerticalAlign.
const (
	OffsetBaseline = "baseline"
	OffsetSub      = "sub"
	OffsetSuper    = "super"
)

// VerticalAlign returns the baseline offset for vertical-align. Only the
// values that map to a text offset are accepted.
func VerticalAlign(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case OffsetBaseline, OffsetSub, OffsetSuper:
		return v, nil
	}
	return "", invalid("vertical-align", value)
}

// Text alignments returned by TextAlign.
const (
	AlignStart   = "start"
	AlignCenter  = "center"
	AlignEnd     = "end"
	AlignJustify = "justify"
)

// TextAlign normalizes a text-align value to start/center/end/justify.
func TextAlign(value string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "left", "start":
		return AlignStart, nil
	case "center":
		return AlignCenter, nil
	case "right", "end":
		return AlignEnd, nil
	case "justify":
		return AlignJustify, nil
	}
	return "", invalid("text-align", value)
}
