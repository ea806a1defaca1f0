package translatable

// Translation is the structural contract a per-locale row must satisfy so
// generic code can refer to "a translation of something, in some locale"
// without knowing the concrete entity type. It requires no operations beyond
// the three accessors and performs no validation of its own.
type Translation[ID comparable, O any] interface {
	// GetID returns the translation row identifier.
	GetID() ID
	// GetOwner returns the entity this translation belongs to. Whether the
	// reference is eagerly or lazily populated is the mapping layer's
	// business, not this contract's.
	GetOwner() O
	// GetLocale returns the BCP 47 locale tag of this row (e.g. "en", "de-DE").
	GetLocale() string
}

// Translatable is the structural contract an owner entity must satisfy. The
// translation collection is mutable and ordered; the ordering is whatever the
// application configured on its mapping. The contract does not enforce that
// the collection holds at most one row per locale, that invariant belongs to
// the application (see ValidateTranslations for an opt-in check).
type Translatable[ID comparable, T any] interface {
	// GetID returns the owner entity identifier.
	GetID() ID
	// GetTranslations returns the translation rows of this entity.
	GetTranslations() []T
	// SetTranslations replaces the translation rows of this entity.
	SetTranslations(translations []T)
}

// Localized is the subset of Translation the collection helpers need. It is
// split out so helpers work on any slice of locale-carrying values without
// dragging in the identifier and owner type parameters.
type Localized interface {
	GetLocale() string
}
