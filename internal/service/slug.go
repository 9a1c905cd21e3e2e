package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// slugify lower-cases s, strips accents and joins words with dashes.
func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range norm.NFD.String(strings.ToLower(s)) {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// recordSlug is the stored slug: the title slug suffixed with the first block
// of the record id, so equal or accent-only-different titles stay distinct.
// Titles without Latin letters or digits fall back to the id.
func recordSlug(title, id string) string {
	base := slugify(title)
	if base == "" {
		return id
	}
	short, _, _ := strings.Cut(id, "-")
	if short == "" {
		return base
	}
	return base + "-" + short
}
