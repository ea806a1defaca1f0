package translatable

import (
	"fmt"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// The contracts deliberately do not enforce the one-row-per-locale invariant;
// these rules are an opt-in check applications can run before persisting.

// ErrDuplicateLocale is the validation code reported when two rows in a
// collection share a locale.
const ErrDuplicateLocale = "validation_duplicate_locale"

// ErrMalformedLocale is the validation code reported for a locale tag that
// does not parse as BCP 47.
const ErrMalformedLocale = "validation_malformed_locale"

// ValidateLocale checks that a single locale tag is present and well formed.
func ValidateLocale(tag string) error {
	return validation.Validate(tag,
		validation.Required.Error("locale tag is required"),
		validation.By(localeTagRule),
	)
}

// ValidateTranslations checks a translation collection against the documented
// convention: every row carries a well-formed locale tag and no two rows share
// a locale (compared in canonical form). The returned error is a
// validation.Errors map keyed by collection index, or nil when the collection
// conforms.
func ValidateTranslations[T Localized](translations []T) error {
	errs := validation.Errors{}
	seen := make(map[string]int, len(translations))

	for i, tr := range translations {
		locale := tr.GetLocale()
		if err := ValidateLocale(locale); err != nil {
			errs[strconv.Itoa(i)] = err
			continue
		}

		canonical, err := NormalizeLocale(locale)
		if err != nil {
			canonical = locale
		}
		if prev, dup := seen[canonical]; dup {
			errs[strconv.Itoa(i)] = validation.NewError(
				ErrDuplicateLocale,
				fmt.Sprintf("locale %q duplicates the translation at index %d", locale, prev),
			)
			continue
		}
		seen[canonical] = i
	}

	return errs.Filter()
}

func localeTagRule(value any) error {
	tag, _ := value.(string)
	if tag == "" {
		// Required already covers the empty case.
		return nil
	}
	if !IsWellFormedLocale(tag) {
		return validation.NewError(ErrMalformedLocale, "must be a well-formed BCP 47 locale tag")
	}
	return nil
}
