// Package j8lite is a stand-in for the string-literal encoder the real
// system calls out to (spec.md §1 names this an external collaborator,
// EncodeString(s, unquoted_ok) -> s', and scopes its real implementation
// out of this repo). It implements enough of the same contract — quote
// unless the caller says bare output is acceptable and the string looks
// like a bare token — for the hnode encoder to exercise against.
package j8lite

import (
	"strconv"
	"unicode"
)

// EncodeString renders s as a quoted string literal, unless unquotedOk is
// true and s can be written bare without ambiguity.
func EncodeString(s string, unquotedOk bool) string {
	if unquotedOk && CanOmitQuotes(s) {
		return s
	}
	return strconv.Quote(s)
}

// CanOmitQuotes reports whether s is safe to print without quotes: a
// nonempty run of printable, non-space, non-quote-like characters.
func CanOmitQuotes(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return false
		}
		switch r {
		case '"', '\'', '\\', '(', ')', '[', ']', '{', '}':
			return false
		}
	}
	return true
}
