package utils

import (
	"regexp"
	"strings"
	"unicode"
)

// slugReplacer maps the locale-specific letters supported by [ToSlug] to
// their closest ASCII base letter. Upper-case forms are listed as well so
// the table stays correct if it is ever applied before lower-casing.
var slugReplacer = strings.NewReplacer(
	"ş", "s", "Ş", "s",
	"ı", "i", "İ", "i",
	"ğ", "g", "Ğ", "g",
	"ü", "u", "Ü", "u",
	"ö", "o", "Ö", "o",
	"ç", "c", "Ç", "c",
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ToSlug maps arbitrary text to a URL-safe identifier fragment.
//
// The text is lower-cased and trimmed, letters from the substitution table
// are replaced with their ASCII base letter, every other rune outside
// [a-z0-9], whitespace and '-' is dropped, and runs of whitespace and
// hyphens collapse into a single '-'. Leading and trailing hyphens are
// removed.
//
// The result may be empty when text holds nothing convertible; callers must
// handle that case. ToSlug is idempotent.
//
// Example:
//
//	utils.ToSlug("Ben Ahmet - Kaya") // "ben-ahmet-kaya"
func ToSlug(text string) string {
	text = slugReplacer.Replace(strings.ToLower(strings.TrimSpace(text)))

	var b strings.Builder
	b.Grow(len(text))

	separator := false
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if separator && b.Len() > 0 {
				b.WriteByte('-')
			}
			separator = false
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			separator = true
		}
	}

	return b.String()
}

// IsSlug reports whether s is a well-formed, non-empty slug: lowercase ASCII
// letters and digits separated by single hyphens.
func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}
