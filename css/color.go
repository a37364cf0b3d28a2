package css

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color normalizes a CSS color value to lower-case "#rrggbb".
//
// Accepted forms are the CSS/SVG named colors, #rgb, #rgba, #rrggbb,
// #rrggbbaa, rgb()/rgba() with integer or percentage channels (comma or space
// separated), and hsl()/hsla(). Alpha is dropped. Keywords with no fixed
// value (transparent, currentcolor, inherit, ...) are invalid here.
func Color(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return "", invalid("color", value)
	}

	switch {
	case strings.HasPrefix(v, "#"):
		return hexColor(v, value)
	case strings.HasPrefix(v, "rgb(") || strings.HasPrefix(v, "rgba("):
		return rgbFunc(v, value)
	case strings.HasPrefix(v, "hsl(") || strings.HasPrefix(v, "hsla("):
		return hslFunc(v, value)
	}

	if named, ok := colornames.Map[v]; ok {
		c, ok := colorful.MakeColor(named)
		if !ok {
			return "", invalid("color", value)
		}
		return c.Hex(), nil
	}

	return "", invalid("color", value)
}

func hexColor(v, orig string) (string, error) {
	digits := v[1:]
	switch len(digits) {
	case 3, 4:
		var sb strings.Builder
		for _, c := range digits[:3] {
			sb.WriteRune(c)
			sb.WriteRune(c)
		}
		digits = sb.String()
	case 6:
	case 8:
		digits = digits[:6]
	default:
		return "", invalid("color", orig)
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return "", invalid("color", orig)
	}
	return c.Hex(), nil
}

// functionArgs returns the arguments of a functional notation such as
// "rgb(1, 2, 3)" split on commas, whitespace and the alpha slash.
func functionArgs(v string) ([]string, bool) {
	open := strings.IndexByte(v, '(')
	if open < 0 || !strings.HasSuffix(v, ")") {
		return nil, false
	}
	inner := v[open+1 : len(v)-1]
	fields := strings.FieldsFunc(inner, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '/'
	})
	return fields, true
}

func rgbFunc(v, orig string) (string, error) {
	args, ok := functionArgs(v)
	if !ok || len(args) < 3 || len(args) > 4 {
		return "", invalid("color", orig)
	}

	var channels [3]float64
	for i := 0; i < 3; i++ {
		ch, err := rgbChannel(args[i])
		if err != nil {
			return "", invalid("color", orig)
		}
		channels[i] = ch
	}

	c := colorful.Color{R: channels[0], G: channels[1], B: channels[2]}
	return c.Clamped().Hex(), nil
}

// rgbChannel parses "255", "127.5" or "50%" into [0, 1].
func rgbChannel(s string) (float64, error) {
	if strings.HasSuffix(s, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, err
		}
		return clamp01(f / 100), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return clamp01(f / 255), nil
}

func hslFunc(v, orig string) (string, error) {
	args, ok := functionArgs(v)
	if !ok || len(args) < 3 || len(args) > 4 {
		return "", invalid("color", orig)
	}

	hue, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return "", invalid("color", orig)
	}
	sat, err := percent(args[1])
	if err != nil {
		return "", invalid("color", orig)
	}
	light, err := percent(args[2])
	if err != nil {
		return "", invalid("color", orig)
	}

	hue = mod360(hue)
	return colorful.Hsl(hue, sat, light).Clamped().Hex(), nil
}

func percent(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, err
	}
	return clamp01(f / 100), nil
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func mod360(h float64) float64 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}
