package translatablecache

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/viccon/sturdyc"

	"github.com/goliatone/go-translatable/translatable"
	"github.com/goliatone/go-translatable/translatablerepo"
)

// keySeparator delimits cache key segments: namespace::owner::locale.
const keySeparator = "::"

// Lookup is a read-through cache for the hot "translation of owner X in
// locale L" query. Reads go through a typed sturdyc client; the write helpers
// delegate to the repository and then invalidate the owner's cached lookups.
// Everything else stays on the plain repository; the cache never decorates
// the inherited operation set.
type Lookup[T translatable.Translation[ID, O], ID comparable, O any] struct {
	repo        translatablerepo.TranslationRepository[T, ID, O]
	client      *sturdyc.Client[T]
	ownerColumn string
	ownerID     func(T) ID
	namespace   string
}

// NewLookup builds a lookup cache over the given translation repository.
// ownerColumn is the foreign key column of the concrete mapping (e.g.
// "article_id") and ownerID extracts the owner key from a record, since the
// Translation contract exposes the owner entity, not its identifier.
func NewLookup[T translatable.Translation[ID, O], ID comparable, O any](
	repo translatablerepo.TranslationRepository[T, ID, O],
	ownerColumn string,
	ownerID func(T) ID,
	cfg Config,
) (*Lookup[T, ID, O], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if repo == nil {
		return nil, &ConfigError{Field: "repo", Message: "cannot be nil"}
	}
	if ownerColumn == "" {
		return nil, &ConfigError{Field: "ownerColumn", Message: "cannot be empty"}
	}
	if ownerID == nil {
		return nil, &ConfigError{Field: "ownerID", Message: "cannot be nil"}
	}

	client := sturdyc.New[T](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		cfg.toOptions()...,
	)

	return &Lookup[T, ID, O]{
		repo:        repo,
		client:      client,
		ownerColumn: ownerColumn,
		ownerID:     ownerID,
		namespace:   namespaceFor[T](),
	}, nil
}

// Repository returns the wrapped repository unchanged.
func (l *Lookup[T, ID, O]) Repository() translatablerepo.TranslationRepository[T, ID, O] {
	return l.repo
}

// ByLocale returns the owner's translation in the given locale, fetching
// through the repository on a cache miss. The locale is canonicalized before
// keying and querying, which assumes the mapping stores canonical tags.
func (l *Lookup[T, ID, O]) ByLocale(ctx context.Context, owner ID, locale string) (T, error) {
	locale = l.canonical(locale)
	return l.client.GetOrFetch(ctx, l.key(owner, locale), func(ctx context.Context) (T, error) {
		return l.repo.Get(ctx,
			translatablerepo.ForOwner(l.ownerColumn, owner),
			translatablerepo.ByLocale(locale),
		)
	})
}

// Save upserts a translation through the repository and drops the owner's
// cached lookups so the next read sees the new row.
func (l *Lookup[T, ID, O]) Save(ctx context.Context, record T) (T, error) {
	saved, err := l.repo.Upsert(ctx, record)
	if err != nil {
		var zero T
		return zero, err
	}
	l.InvalidateOwner(l.ownerID(saved))
	return saved, nil
}

// Remove deletes a translation through the repository and drops the owner's
// cached lookups.
func (l *Lookup[T, ID, O]) Remove(ctx context.Context, record T) error {
	if err := l.repo.Delete(ctx, record); err != nil {
		return err
	}
	l.InvalidateOwner(l.ownerID(record))
	return nil
}

// Invalidate drops one cached (owner, locale) lookup.
func (l *Lookup[T, ID, O]) Invalidate(owner ID, locale string) {
	l.client.Delete(l.key(owner, l.canonical(locale)))
}

// InvalidateOwner drops every cached lookup for the given owner.
func (l *Lookup[T, ID, O]) InvalidateOwner(owner ID) {
	prefix := l.ownerPrefix(owner)
	for _, key := range l.client.ScanKeys() {
		if strings.HasPrefix(key, prefix) {
			l.client.Delete(key)
		}
	}
}

func (l *Lookup[T, ID, O]) canonical(locale string) string {
	if canonical, err := translatable.NormalizeLocale(locale); err == nil {
		return canonical
	}
	return locale
}

func (l *Lookup[T, ID, O]) key(owner ID, locale string) string {
	return l.ownerPrefix(owner) + locale
}

func (l *Lookup[T, ID, O]) ownerPrefix(owner ID) string {
	return fmt.Sprintf("%s%s%v%s", l.namespace, keySeparator, owner, keySeparator)
}

// namespaceFor derives the cache namespace from the record type name, so two
// lookups over different translation types never share key space.
func namespaceFor[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		name = t.String()
	}
	return toSnake(name)
}
