// Package cgi implements the trivial HTML-entity escaping used when
// hnode trees are rendered for an HTML surface rather than a terminal.
package cgi

import "strings"

// escapeReplacer applies the three substitutions in the order the spec
// requires: & first, so later &lt;/&gt; substitutions aren't themselves
// re-escaped.
var escapeReplacer = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape performs &, <, > entity escaping, in that order.
func Escape(s string) string {
	return escapeReplacer.Replace(s)
}
