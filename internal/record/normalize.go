package record

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName trims surrounding whitespace.
func NormalizeName(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeGender trims s and capitalizes it: the first character is
// title-cased and the remainder lower-cased. The result is not checked
// against any list, so "fEMALE" becomes "Female" and "x" becomes "X".
func NormalizeGender(s string) string {
	return capitalize(strings.TrimSpace(s))
}

// NormalizeState trims s and upper-cases it. The result is not checked
// against the region list.
func NormalizeState(s string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(s))
}

// capitalize title-cases the first rune of s and lower-cases the rest.
// Title case differs from upper case for digraphs: "ǆ" becomes "ǅ", not "Ǆ".
// Casers are stateful, so a fresh one is built per call.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	head := cases.Title(language.Und).String(string(r))
	tail := cases.Lower(language.Und).String(s[size:])
	return head + tail
}
