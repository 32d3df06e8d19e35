// Package extraction provides text normalization and word-boundary skill
// extraction with evidence snippets.
package extraction

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Clean collapses all whitespace runs to single spaces and trims the ends.
func Clean(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// isWordChar reports whether r would extend a word: letters, digits, and
// underscore. Matching a phrase adjacent to a word character is forbidden,
// so "java" never matches inside "javascript".
func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// FindPhrase returns the byte offset of the first occurrence of phrase in
// text that sits on word boundaries, or -1. Both arguments are expected to
// be lowercased by the caller.
func FindPhrase(text, phrase string) int {
	if phrase == "" {
		return -1
	}
	for from := 0; from <= len(text)-len(phrase); {
		i := strings.Index(text[from:], phrase)
		if i < 0 {
			return -1
		}
		i += from
		if boundedAt(text, i, len(phrase)) {
			return i
		}
		from = i + 1
	}
	return -1
}

// FindPhraseAll returns the offsets of every word-boundary occurrence of
// phrase in text, in order.
func FindPhraseAll(text, phrase string) []int {
	var out []int
	if phrase == "" {
		return out
	}
	for from := 0; from <= len(text)-len(phrase); {
		i := strings.Index(text[from:], phrase)
		if i < 0 {
			break
		}
		i += from
		if boundedAt(text, i, len(phrase)) {
			out = append(out, i)
		}
		from = i + 1
	}
	return out
}

// boundedAt reports whether the match at [i, i+n) is not adjacent to a word
// character on either side.
func boundedAt(text string, i, n int) bool {
	if i > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:i])
		if isWordChar(prev) {
			return false
		}
	}
	if i+n < len(text) {
		next, _ := utf8.DecodeRuneInString(text[i+n:])
		if isWordChar(next) {
			return false
		}
	}
	return true
}

// LowerASCII lowercases ASCII letters only, byte for byte, so offsets into
// the result line up exactly with offsets into the input. Vocabulary terms
// are all ASCII, which makes this sufficient for offset-sensitive matching.
func LowerASCII(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
