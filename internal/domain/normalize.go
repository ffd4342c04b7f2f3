package domain

import (
	"strings"
	"unicode"
)

// NormalizeName trims s and compresses every whitespace run into a single
// space. Case is preserved: "  Plan\t Pro " becomes "Plan Pro".
func NormalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeCurrency trims and upper-cases an ISO 4217 code.
func NormalizeCurrency(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizeFeatures returns a copy of features with every entry trimmed.
// Order is kept and blank entries are not removed.
func NormalizeFeatures(features []string) []string {
	if features == nil {
		return nil
	}
	out := make([]string, len(features))
	for i, f := range features {
		out[i] = strings.TrimSpace(f)
	}
	return out
}
