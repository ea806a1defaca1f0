package translatable

import (
	"sort"

	"github.com/goliatone/go-translatable/internal/localeinfra"
)

// NormalizeLocale returns the canonical BCP 47 form of a locale tag, e.g.
// "EN_us" becomes "en-US". Malformed tags return the underlying parse error
// unmodified.
func NormalizeLocale(tag string) (string, error) {
	return localeinfra.Normalize(tag)
}

// IsWellFormedLocale reports whether the tag parses as a BCP 47 locale tag.
func IsWellFormedLocale(tag string) bool {
	return localeinfra.IsWellFormed(tag)
}

// CompareLocales orders two locale tags deterministically by their canonical
// form, falling back to the raw strings for tags that do not parse.
func CompareLocales(a, b string) int {
	return localeinfra.Compare(a, b)
}

// SortTranslations sorts a translation collection in place by locale using
// CompareLocales. This matches the "order by locale" convention most mappings
// use, but calling it is an application choice, nothing in the contracts
// requires the collection to be sorted.
func SortTranslations[T Localized](translations []T) {
	sort.SliceStable(translations, func(i, j int) bool {
		return CompareLocales(translations[i].GetLocale(), translations[j].GetLocale()) < 0
	})
}

// FindByLocale returns the first translation whose locale matches the given
// tag after canonicalization, and whether one was found.
func FindByLocale[T Localized](translations []T, locale string) (T, bool) {
	for _, tr := range translations {
		if CompareLocales(tr.GetLocale(), locale) == 0 {
			return tr, true
		}
	}
	var zero T
	return zero, false
}

// Locales returns the locale tags of a translation collection in collection
// order.
func Locales[T Localized](translations []T) []string {
	out := make([]string, len(translations))
	for i, tr := range translations {
		out[i] = tr.GetLocale()
	}
	return out
}
