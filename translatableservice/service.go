// Package translatableservice provides the service extension points of the
// translatable convention.
//
// Each base holds exactly one repository abstraction and exposes it unchanged
// to embedding types. That is the whole design: translation-merging policy
// (lookup-or-create by locale, bulk upsert of locale variants, fallback
// resolution) differs per domain, so the bases ship none of it and downstream
// services embed a base and add their own:
//
//	type ArticleService struct {
//		*translatableservice.TranslatableService[*Article, uuid.UUID, *ArticleTranslation]
//	}
//
//	func (s *ArticleService) PublishedIn(ctx context.Context, locale string) ([]*Article, int, error) {
//		return s.Repository().List(ctx, translatablerepo.ByLocale(locale))
//	}
package translatableservice

import (
	"github.com/goliatone/go-translatable/translatable"
	"github.com/goliatone/go-translatable/translatablerepo"
)

// TranslationService is the extension point for business logic over
// translation rows. It holds the injected repository and nothing else.
type TranslationService[T translatable.Translation[ID, O], ID comparable, O any] struct {
	repo translatablerepo.TranslationRepository[T, ID, O]
}

// NewTranslationService wraps the given repository. The instance is stored as
// passed; the base never decorates or replaces it.
func NewTranslationService[T translatable.Translation[ID, O], ID comparable, O any](
	repo translatablerepo.TranslationRepository[T, ID, O],
) *TranslationService[T, ID, O] {
	return &TranslationService[T, ID, O]{repo: repo}
}

// Repository returns the injected repository for embedding types to delegate
// to.
func (s *TranslationService[T, ID, O]) Repository() translatablerepo.TranslationRepository[T, ID, O] {
	return s.repo
}

// TranslatableService is the extension point for business logic over owner
// entities, with the same hold-one-repository shape as TranslationService.
type TranslatableService[T translatable.Translatable[ID, TR], ID comparable, TR any] struct {
	repo translatablerepo.TranslatableRepository[T, ID, TR]
}

// NewTranslatableService wraps the given repository.
func NewTranslatableService[T translatable.Translatable[ID, TR], ID comparable, TR any](
	repo translatablerepo.TranslatableRepository[T, ID, TR],
) *TranslatableService[T, ID, TR] {
	return &TranslatableService[T, ID, TR]{repo: repo}
}

// Repository returns the injected repository for embedding types to delegate
// to.
func (s *TranslatableService[T, ID, TR]) Repository() translatablerepo.TranslatableRepository[T, ID, TR] {
	return s.repo
}
