// Package normalize provides the pure text normalization primitives used
// for fingerprinting, deduplication, and candidate matching. Every
// function accepts empty input and returns empty output.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	doiHostRe    = regexp.MustCompile(`(?i)^https?://(dx\.)?doi\.org/`)
	doiLabelRe   = regexp.MustCompile(`(?i)^doi:\s*`)
	doiShapeRe   = regexp.MustCompile(`^10\.\d{4,9}/\S+$`)
	yearRe       = regexp.MustCompile(`\d{4}`)
)

// stripMarks decomposes characters and removes combining marks, turning
// "é" into "e" and "ü" into "u".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// latinFold maps Latin letters that do not decompose into base + mark.
var latinFold = map[rune]string{
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'ø': "o", 'Ø': "O",
	'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D",
	'þ': "th", 'Þ': "Th",
	'ł': "l", 'Ł': "L",
	'ß': "ss",
	'ı': "i",
}

// transliterate converts extended characters to a close ASCII equivalent.
// Characters with no reasonable equivalent are dropped.
func transliterate(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if r < 128 {
			b.WriteRune(r)
			continue
		}
		if repl, ok := latinFold[r]; ok {
			b.WriteString(repl)
		}
	}
	return b.String()
}

// Text transliterates extended characters, collapses runs of whitespace
// to a single space, trims, and lowercases.
func Text(s string) string {
	if s == "" {
		return ""
	}
	s = transliterate(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}

// Author normalizes an author name for comparison: Text, then every
// character that is not a lowercase letter or digit removed.
func Author(s string) string {
	s = Text(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DOI normalizes a DOI string: trim, lowercase, strip a resolver URL
// prefix and a leading "doi:" label.
func DOI(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = doiHostRe.ReplaceAllString(s, "")
	s = doiLabelRe.ReplaceAllString(s, "")
	return s
}

// IsValidDOI reports whether s, after normalization, has the shape
// "10.", 4-9 digits, a slash, then one or more non-whitespace characters.
func IsValidDOI(s string) bool {
	s = DOI(s)
	if s == "" {
		return false
	}
	return doiShapeRe.MatchString(s)
}

// Pages strips every character that is not a digit or hyphen, so
// "pp. 123-456" and "123-456" compare equal. Hyphens are preserved
// as-is, so the en-dash convention "123--456" stays distinct from
// "123-456".
func Pages(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Alnum strips s to letters and digits only.
func Alnum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Year returns the first 4-digit run in s, or "".
func Year(s string) string {
	return yearRe.FindString(s)
}
