package translatablecache

import (
	"strings"
	"unicode"
)

// toSnake converts a Go type name to snake_case for use as a cache namespace.
// Anything that is not a letter or digit is dropped so reflected names with
// pointer or generic decoration cannot leak separator characters into keys;
// that would break the prefix-based owner invalidation.
func toSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(runes) + len(runes)/2)

	for i, r := range runes {
		switch {
		case unicode.IsUpper(r):
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsLower(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}

	return b.String()
}
