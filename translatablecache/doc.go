// Package translatablecache provides an optional read-through cache for
// per-locale translation lookups.
//
// # Overview
//
// The by-locale lookup ("give me the de-DE row of article X") is the one
// query translatable entities run constantly, so it is the only thing this
// package caches. Lookup wraps a TranslationRepository with a typed sturdyc
// client:
//
//	lookup, err := translatablecache.NewLookup(
//		repo,
//		"article_id",
//		func(t *ArticleTranslation) uuid.UUID { return t.ArticleID },
//		translatablecache.DefaultConfig(),
//	)
//
//	row, err := lookup.ByLocale(ctx, article.ID, "de-DE")
//
// # Cached vs Pass-through
//
// Only ByLocale reads through the cache. Save and Remove delegate to the
// repository and then invalidate every cached lookup of the affected owner;
// all other operations are reached through Repository() and never touch the
// cache. Repository errors pass through unmodified.
//
// # Keys
//
// Keys are namespace::owner::locale, with the namespace derived from the
// record type name and the locale canonicalized. The structured shape is what
// makes prefix invalidation per owner possible.
//
// # Consistency
//
// The cache is per process and TTL-bound. Writes that bypass Save/Remove
// (bulk operations, raw SQL, other processes) are not observed until the TTL
// expires or the owner is invalidated explicitly.
package translatablecache
