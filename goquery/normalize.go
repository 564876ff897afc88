package goquery

import (
	"strings"
	"unicode"
)

// Normalize collapses every run of whitespace and control characters into a
// single space and trims the result. Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	return strings.Join(strings.FieldsFunc(s, isSpaceOrControl), " ")
}

func isSpaceOrControl(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r)
}
