package translatable

import (
	"context"
)

type localeContextKey struct{}

// WithLocale attaches a request locale to the context so service code can
// thread it through call chains without widening signatures. The tag is
// stored in canonical form when it parses, raw otherwise.
func WithLocale(ctx context.Context, locale string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if locale == "" {
		return ctx
	}
	if canonical, err := NormalizeLocale(locale); err == nil {
		locale = canonical
	}
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// LocaleFromContext returns the locale attached with WithLocale, if any.
func LocaleFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	locale, ok := ctx.Value(localeContextKey{}).(string)
	return locale, ok
}

// LocaleFromContextOr returns the context locale or the given fallback when
// none is attached.
func LocaleFromContextOr(ctx context.Context, fallback string) string {
	if locale, ok := LocaleFromContext(ctx); ok {
		return locale
	}
	return fallback
}
