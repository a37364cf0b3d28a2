package model

import "unicode/utf16"

// TextLength returns the length of s in UTF-16 code units, the unit Google
// Docs uses for document indexes. Characters outside the Basic Multilingual
// Plane count as two; invalid bytes count as one replacement character.
func TextLength(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}
