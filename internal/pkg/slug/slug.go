// Package slug produces canonical identifiers for catalog records.
// A slug is the sole join key between courses and teacher profiles, so the
// same normalization must be applied on both sides of every lookup.
package slug

import "strings"

// Normalize converts a free-text identifier into its canonical slug form:
// lowercase, "@" and "&" become the literal word "and", every run of other
// non-alphanumeric characters collapses to a single hyphen, and leading or
// trailing hyphens are trimmed.
//
// Normalize is pure and total: an empty input yields an empty output, and
// applying it twice yields the same result as applying it once.
func Normalize(value string) string {
	var b strings.Builder
	b.Grow(len(value))

	pendingHyphen := false
	flush := func() {
		if pendingHyphen && b.Len() > 0 {
			b.WriteByte('-')
		}
		pendingHyphen = false
	}

	for _, r := range strings.ToLower(value) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			flush()
			b.WriteRune(r)
		case r == '@' || r == '&':
			flush()
			b.WriteString("and")
		default:
			// Separator run; emit a single hyphen once the next
			// alphanumeric character arrives.
			pendingHyphen = true
		}
	}

	return b.String()
}
