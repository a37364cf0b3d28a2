package css

import "strings"

// Declaration is a single "property: value" pair from a style attribute.
type Declaration struct {
	Property  string // lower-cased
	Value     string
	Important bool
}

// ParseDeclarations splits an inline style attribute into declarations.
// Entries without a property name or a colon are returned in malformed and
// otherwise skipped. Semicolons inside quotes or parentheses do not split.
func ParseDeclarations(style string) (decls []Declaration, malformed []string) {
	style = stripComments(style)

	for _, part := range splitTopLevel(style, ';') {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		colon := strings.IndexByte(part, ':')
		if colon <= 0 {
			malformed = append(malformed, part)
			continue
		}

		prop := strings.ToLower(strings.TrimSpace(part[:colon]))
		value := strings.TrimSpace(part[colon+1:])
		if prop == "" || value == "" || strings.ContainsAny(prop, " \t\n") {
			malformed = append(malformed, part)
			continue
		}

		important := false
		if i := strings.LastIndex(strings.ToLower(value), "!important"); i >= 0 && strings.TrimSpace(value[i+len("!important"):]) == "" {
			important = true
			value = strings.TrimSpace(value[:i])
		}

		decls = append(decls, Declaration{Property: prop, Value: value, Important: important})
	}

	return decls, malformed
}

// splitTopLevel splits s on sep, ignoring separators inside quotes or
// parentheses.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	var quote byte
	start := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case c == sep && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// Fields splits a shorthand value on whitespace that is not inside quotes or
// parentheses, so "rgb(0, 0, 0) url(x.png)" yields two fields.
func Fields(value string) []string {
	value = strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\r', '\f':
			return ' '
		}
		return r
	}, value)

	var fields []string
	for _, f := range splitTopLevel(value, ' ') {
		if f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// stripComments removes /* ... */ comments. An unterminated comment runs to
// the end of the input, as in CSS.
func stripComments(s string) string {
	if !strings.Contains(s, "/*") {
		return s
	}
	var sb strings.Builder
	for {
		i := strings.Index(s, "/*")
		if i < 0 {
			sb.WriteString(s)
			break
		}
		sb.WriteString(s[:i])
		j := strings.Index(s[i+2:], "*/")
		if j < 0 {
			break
		}
		s = s[i+2+j+2:]
	}
	return sb.String()
}
