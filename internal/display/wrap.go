// Package display holds small text-rendering helpers shared by anything
// that turns game state into player-facing strings.
package display

import (
	"strings"
	"unicode"

	"github.com/muesli/reflow/wordwrap"
)

// DefaultWidth is the column width Wrap wraps to.
const DefaultWidth = 80

// Wrap word-wraps text to DefaultWidth, preserving ANSI escape sequences.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}

// Capitalize upper-cases the first rune of s, leaving the rest untouched.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Title capitalizes the first letter of every word in s.
func Title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = Capitalize(w)
	}
	return strings.Join(words, " ")
}
