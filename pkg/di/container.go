// Package di wires the translatable building blocks together for
// applications that prefer a single construction point over assembling
// services and lookup caches by hand.
package di

import (
	"github.com/goliatone/go-translatable/translatable"
	"github.com/goliatone/go-translatable/translatablecache"
	"github.com/goliatone/go-translatable/translatablerepo"
	"github.com/goliatone/go-translatable/translatableservice"
)

// Container holds the shared configuration for translatable components. It is
// deliberately small: repositories come from the application, services are
// stateless wrappers, so the only thing worth centralizing is the lookup
// cache configuration.
type Container struct {
	cacheConfig translatablecache.Config
}

// NewContainer creates a container after validating the cache configuration.
func NewContainer(cfg translatablecache.Config) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Container{cacheConfig: cfg}, nil
}

// NewContainerWithDefaults creates a container using DefaultConfig.
func NewContainerWithDefaults() (*Container, error) {
	return NewContainer(translatablecache.DefaultConfig())
}

// CacheConfig returns a copy of the lookup cache configuration.
func (c *Container) CacheConfig() translatablecache.Config {
	return c.cacheConfig
}

// NewTranslationService wraps a translation repository in its service base.
// Go methods cannot take type parameters, so the factories are package-level
// functions taking the container first.
func NewTranslationService[T translatable.Translation[ID, O], ID comparable, O any](
	_ *Container,
	repo translatablerepo.TranslationRepository[T, ID, O],
) *translatableservice.TranslationService[T, ID, O] {
	return translatableservice.NewTranslationService[T, ID, O](repo)
}

// NewTranslatableService wraps an owner repository in its service base.
func NewTranslatableService[T translatable.Translatable[ID, TR], ID comparable, TR any](
	_ *Container,
	repo translatablerepo.TranslatableRepository[T, ID, TR],
) *translatableservice.TranslatableService[T, ID, TR] {
	return translatableservice.NewTranslatableService[T, ID, TR](repo)
}

// NewLocaleLookup builds a locale lookup cache over a translation repository
// using the container's cache configuration.
func NewLocaleLookup[T translatable.Translation[ID, O], ID comparable, O any](
	c *Container,
	repo translatablerepo.TranslationRepository[T, ID, O],
	ownerColumn string,
	ownerID func(T) ID,
) (*translatablecache.Lookup[T, ID, O], error) {
	return translatablecache.NewLookup[T, ID, O](repo, ownerColumn, ownerID, c.cacheConfig)
}
