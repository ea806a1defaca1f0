// Package translatable defines the data-model contracts for entities that
// carry per-locale translation rows.
//
// # Overview
//
// Two generic contracts describe the owner/translation relationship:
//
//   - Translation[ID, O]: one locale row, exposing its identifier, its owning
//     entity, and its locale tag
//   - Translatable[ID, T]: an owner entity, exposing its identifier and its
//     ordered, mutable collection of translation rows
//
// The contracts are purely structural. They declare no operations, run no
// validation, and own no lifecycle: persistence, relationship consistency,
// and cascade behavior all belong to the mapping layer of the consuming
// application.
//
// # Basic Usage
//
// Concrete entities implement the contracts with plain accessors:
//
//	type Article struct {
//		ID           uuid.UUID
//		Translations []*ArticleTranslation
//	}
//
//	func (a *Article) GetID() uuid.UUID                          { return a.ID }
//	func (a *Article) GetTranslations() []*ArticleTranslation   { return a.Translations }
//	func (a *Article) SetTranslations(ts []*ArticleTranslation) { a.Translations = ts }
//
//	type ArticleTranslation struct {
//		ID      uuid.UUID
//		Article *Article
//		Locale  string
//		Title   string
//	}
//
//	func (t *ArticleTranslation) GetID() uuid.UUID  { return t.ID }
//	func (t *ArticleTranslation) GetOwner() *Article { return t.Article }
//	func (t *ArticleTranslation) GetLocale() string  { return t.Locale }
//
// # The Per-Locale Uniqueness Invariant
//
// A translation collection is expected to hold at most one row per distinct
// locale. The contracts document this invariant but never enforce it; the
// decision is left with the application, which typically enforces it with a
// unique index on (owner, locale). ValidateTranslations provides an opt-in,
// in-memory check for applications that want to fail before hitting the
// database constraint.
//
// # Locale Tags
//
// Helpers in this package treat locale tags as BCP 47: NormalizeLocale
// canonicalizes ("EN_us" to "en-US"), CompareLocales orders canonically, and
// SortTranslations applies the conventional order-by-locale sort. None of
// this performs locale negotiation; resolving a user's preferred locale
// against available translations is application logic.
//
// # See Also
//
// Package translatablerepo declares the repository abstractions over the
// go-repository-bun generic base. Package translatableservice provides the
// service extension points.
package translatable
