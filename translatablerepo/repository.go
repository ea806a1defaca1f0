// Package translatablerepo declares the repository abstractions for the
// translatable convention on top of go-repository-bun.
//
// The two interfaces add zero operations: they embed the framework's generic
// Repository[T] and exist only to fix its type parameter to the contracts in
// package translatable, so a concrete repository is declared in one line and
// inherits the full create/read/update/delete/list operation set, including
// the Tx variants. All failures (not found, constraint violations, stale
// versions) are whatever the underlying persistence layer raises, passed
// through unmodified.
//
// The criteria constructors in this package are plain go-repository-bun
// criteria, so they compose with everything the inherited operations accept:
//
//	row, err := repo.Get(ctx,
//		translatablerepo.ForOwner("article_id", article.ID),
//		translatablerepo.ByLocale("de-DE"),
//	)
package translatablerepo

import (
	repository "github.com/goliatone/go-repository-bun"

	"github.com/goliatone/go-translatable/translatable"
)

// TranslationRepository is the persistence abstraction for translation rows.
// It inherits its entire operation set from the framework base; concrete
// repositories only fix T, ID, and O.
type TranslationRepository[T translatable.Translation[ID, O], ID comparable, O any] interface {
	repository.Repository[T]
}

// TranslatableRepository is the persistence abstraction for owner entities,
// with the same inherit-everything shape as TranslationRepository.
type TranslatableRepository[T translatable.Translatable[ID, TR], ID comparable, TR any] interface {
	repository.Repository[T]
}
