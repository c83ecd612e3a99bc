package catalog

import (
	"regexp"
	"strings"
)

// MaxSlugLength caps product identifiers, counted in runes.
const MaxSlugLength = 64

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	slugCharsRe  = regexp.MustCompile(`[^a-z0-9\-áéíóúñ]`)
)

// Slugify derives the product identifier from a canonical name.
// It may return "" when nothing usable remains.
func Slugify(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = whitespaceRe.ReplaceAllString(s, "-")
	s = slugCharsRe.ReplaceAllString(s, "")

	if r := []rune(s); len(r) > MaxSlugLength {
		s = string(r[:MaxSlugLength])
	}
	return s
}
