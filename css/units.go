package css

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultFontSizePt is the size relative units resolve against when no size
// has been inherited.
const DefaultFontSizePt = 11.0

// pxToPt converts CSS pixels to points at the CSS reference density of 96 DPI.
const pxToPt = 0.75

var dimensionPattern = regexp.MustCompile(`^([+-]?(?:\d+(?:\.\d*)?|\.\d+))([a-z%]*)$`)

// absoluteUnits maps units with a fixed ratio to points.
var absoluteUnits = map[string]float64{
	"pt": 1,
	"px": pxToPt,
	"pc": 12,
	"in": 72,
	"cm": 72 / 2.54,
	"mm": 72 / 25.4,
	"q":  72 / 101.6,
}

// absoluteSizeKeywords is the CSS absolute-size table, in pixels.
var absoluteSizeKeywords = map[string]float64{
	"xx-small":  9,
	"x-small":   10,
	"small":     13,
	"medium":    16,
	"large":     18,
	"x-large":   24,
	"xx-large":  32,
	"xxx-large": 48,
}

// relativeStep is the scaling applied by the smaller/larger keywords.
const relativeStep = 1.2

// FontSize converts a font-size value to points. parentPt is the inherited
// size used by em, % and smaller/larger; rootPt is used by rem. Zero values
// fall back to DefaultFontSizePt.
func FontSize(value string, parentPt, rootPt float64) (float64, error) {
	if parentPt <= 0 {
		parentPt = DefaultFontSizePt
	}
	if rootPt <= 0 {
		rootPt = DefaultFontSizePt
	}

	v := strings.ToLower(strings.TrimSpace(value))
	if px, ok := absoluteSizeKeywords[v]; ok {
		return round2(px * pxToPt), nil
	}
	switch v {
	case "smaller":
		return round2(parentPt / relativeStep), nil
	case "larger":
		return round2(parentPt * relativeStep), nil
	}

	num, unit, err := splitDimension("font-size", value, v)
	if err != nil {
		return 0, err
	}
	if num <= 0 {
		return 0, invalid("font-size", value)
	}

	if ratio, ok := absoluteUnits[unit]; ok {
		return round2(num * ratio), nil
	}
	switch unit {
	case "em":
		return round2(num * parentPt), nil
	case "rem":
		return round2(num * rootPt), nil
	case "%":
		return round2(num * parentPt / 100), nil
	case "":
		// Unitless sizes are not valid CSS.
		return 0, invalid("font-size", value)
	}

	return 0, &UnsupportedUnitError{Property: "font-size", Value: value, Unit: unit}
}

// Length converts a length value to points using only absolute units. It is
// used for image dimensions, where relative units have nothing to resolve
// against. allowUnitless treats bare numbers as pixels, as HTML width and
// height attributes do.
func Length(property, value string, allowUnitless bool) (float64, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	num, unit, err := splitDimension(property, value, v)
	if err != nil {
		return 0, err
	}
	if num <= 0 {
		return 0, invalid(property, value)
	}
	if unit == "" {
		if !allowUnitless {
			return 0, invalid(property, value)
		}
		unit = "px"
	}
	if ratio, ok := absoluteUnits[unit]; ok {
		return round2(num * ratio), nil
	}
	if unit == "%" || unit == "auto" {
		return 0, invalid(property, value)
	}
	return 0, &UnsupportedUnitError{Property: property, Value: value, Unit: unit}
}

// LegacyFontSize converts the size attribute of a <font> element (1-7, or
// +n/-n relative to 3) to points.
func LegacyFontSize(value string) (float64, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0, invalid("size", value)
	}

	n, err := strconv.Atoi(strings.TrimPrefix(v, "+"))
	if err != nil {
		return 0, invalid("size", value)
	}
	if v[0] == '+' || v[0] == '-' {
		n += 3
	}
	if n < 1 {
		n = 1
	}
	if n > 7 {
		n = 7
	}

	px := [...]float64{10, 13, 16, 18, 24, 32, 48}[n-1]
	return round2(px * pxToPt), nil
}

func splitDimension(property, orig, v string) (float64, string, error) {
	m := dimensionPattern.FindStringSubmatch(v)
	if m == nil {
		return 0, "", invalid(property, orig)
	}
	num, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", invalid(property, orig)
	}
	return num, m[2], nil
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
