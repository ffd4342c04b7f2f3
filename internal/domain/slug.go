package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify derives a URL-safe identifier from a plan name:
//   - diacritics are stripped ("Básico" -> "basico")
//   - the result is lowercased
//   - whitespace runs become a single hyphen
//   - characters outside [a-z0-9-] are dropped
//   - repeated and edge hyphens are removed
//
// The result may be empty when name has no usable characters.
func Slugify(name string) string {
	// transform.Transformer values carry state, so the chain is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}

	folded = strings.ToLower(NormalizeName(folded))

	var b strings.Builder
	b.Grow(len(folded))
	prevHyphen := true // suppresses a leading hyphen
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		case r == '-' || unicode.IsSpace(r):
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// WithSuffix appends a disambiguation token to slug.
func WithSuffix(slug, token string) string {
	token = Slugify(token)
	if slug == "" {
		return token
	}
	if token == "" {
		return slug
	}
	return slug + "-" + token
}
