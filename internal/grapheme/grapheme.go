// Package grapheme wraps uniseg for the caret's unit of movement: one
// user-perceived character.
package grapheme

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// First returns the leading cluster of text, or "" when text is empty.
func First(text string) string {
	if text == "" {
		return ""
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(text, -1)
	return cluster
}

// Last returns the trailing cluster of text, or "" when text is empty.
//
// uniseg only segments forwards, so this walks the whole string.
func Last(text string) string {
	last := ""
	state := -1
	rest := text
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		last = cluster
	}
	return last
}

// IsPrintable reports whether every rune in s is a graphic character, a
// plain space or a format character such as a zero width joiner. Control
// characters (tab, newline, DEL, C1) fail.
func IsPrintable(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r == ' ' {
			continue
		}
		if !unicode.IsGraphic(r) && !unicode.Is(unicode.Cf, r) {
			return false
		}
	}
	return true
}

// IsBlank reports whether every rune in cluster is Unicode whitespace.
func IsBlank(cluster string) bool {
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
