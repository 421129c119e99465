// Package text provides small text measurement helpers used when
// presenting articles.
package text

import (
	"strings"
	"unicode"
)

// CountRunes counts Unicode characters, not bytes, so multi-byte
// scripts and emoji are measured correctly.
func CountRunes(s string) int {
	return len([]rune(s))
}

// CountWords counts whitespace-separated words.
func CountWords(s string) int {
	return len(strings.FieldsFunc(s, unicode.IsSpace))
}

// wordsPerMinute is the assumed adult reading speed.
const wordsPerMinute = 200

// ReadingTimeMinutes estimates how long the text takes to read,
// rounded up. Empty text reads in zero minutes.
func ReadingTimeMinutes(s string) int {
	words := CountWords(s)
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}
