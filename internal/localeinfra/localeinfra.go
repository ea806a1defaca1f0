// Package localeinfra adapts golang.org/x/text/language for locale tag
// handling. It only canonicalizes and compares tags; locale negotiation and
// matching are out of scope for this library.
package localeinfra

import (
	"strings"

	"golang.org/x/text/language"
)

// Normalize parses a locale tag and returns its canonical BCP 47 string form
// (e.g. "EN_us" becomes "en-US"). It returns the parse error for malformed
// tags so callers can surface it unmodified.
func Normalize(tag string) (string, error) {
	// POSIX-style tags ("en_US") show up in real data; x/text expects hyphens.
	cleaned := strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")

	parsed, err := language.Parse(cleaned)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsWellFormed reports whether the tag parses as a BCP 47 locale tag.
func IsWellFormed(tag string) bool {
	_, err := Normalize(tag)
	return err == nil
}

// Compare orders two locale tags deterministically. Both sides are compared
// in canonical form when they parse; malformed tags fall back to their raw
// string form so ordering stays total.
func Compare(a, b string) int {
	ca, err := Normalize(a)
	if err != nil {
		ca = a
	}
	cb, err := Normalize(b)
	if err != nil {
		cb = b
	}
	return strings.Compare(ca, cb)
}
