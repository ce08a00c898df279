// Package slug provides URL-safe identifier normalization.
//
// Slugs are the canonical form for category and tag lookups: every post tag
// name must normalize to exactly one known tag slug.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	multipleHyphens = regexp.MustCompile(`-+`)
)

// Make converts a display name to a URL-safe slug.
// "Creative Writing" -> "creative-writing".
// "Non-Fiction" -> "non-fiction".
// "Character  Development" -> "character-development".
func Make(s string) string {
	// Decompose accented characters, then drop anything non-ASCII.
	s = norm.NFKD.String(s)
	s = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)

	s = strings.ToLower(s)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	s = multipleHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
