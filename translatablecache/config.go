package translatablecache

import (
	"time"

	"github.com/viccon/sturdyc"
)

// Config holds the sturdyc settings for a locale lookup cache.
type Config struct {
	// Capacity is the maximum number of cached lookups. Must be > 0.
	Capacity int

	// NumShards determines how many shards back the cache. Higher values
	// improve concurrency at the cost of memory. Must be > 0.
	NumShards int

	// TTL is how long a cached lookup stays fresh. Must be > 0.
	TTL time.Duration

	// EvictionPercentage is the share of entries evicted when the cache is
	// full. Must be between 1 and 100.
	EvictionPercentage int

	// EarlyRefresh enables background refresh of hot entries before they
	// expire. Nil disables it.
	EarlyRefresh *EarlyRefreshConfig

	// MissingRecordStorage remembers lookups that found no translation, so a
	// missing locale does not hammer the database on every request.
	MissingRecordStorage bool

	// EvictionInterval overrides how often expired entries are collected.
	// Zero keeps the sturdyc default.
	EvictionInterval time.Duration
}

// EarlyRefreshConfig mirrors the sturdyc early refresh options.
type EarlyRefreshConfig struct {
	MinAsyncRefreshTime time.Duration
	MaxAsyncRefreshTime time.Duration
	SyncRefreshTime     time.Duration
	RetryBaseDelay      time.Duration
}

// DefaultConfig returns settings suited to the typical translation workload:
// a small, hot set of (owner, locale) pairs that tolerates five minutes of
// staleness.
func DefaultConfig() Config {
	return Config{
		Capacity:             10000,
		NumShards:            64,
		TTL:                  5 * time.Minute,
		EvictionPercentage:   10,
		MissingRecordStorage: true,
	}
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return &ConfigError{Field: "Capacity", Message: "must be greater than 0"}
	}
	if c.NumShards <= 0 {
		return &ConfigError{Field: "NumShards", Message: "must be greater than 0"}
	}
	if c.TTL <= 0 {
		return &ConfigError{Field: "TTL", Message: "must be greater than 0"}
	}
	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		return &ConfigError{Field: "EvictionPercentage", Message: "must be between 1 and 100"}
	}
	if er := c.EarlyRefresh; er != nil {
		if er.MinAsyncRefreshTime < 0 || er.MaxAsyncRefreshTime < 0 || er.SyncRefreshTime < 0 || er.RetryBaseDelay < 0 {
			return &ConfigError{Field: "EarlyRefresh", Message: "durations must be non-negative"}
		}
	}
	return nil
}

func (c Config) toOptions() []sturdyc.Option {
	var options []sturdyc.Option
	if er := c.EarlyRefresh; er != nil {
		options = append(options, sturdyc.WithEarlyRefreshes(
			er.MinAsyncRefreshTime,
			er.MaxAsyncRefreshTime,
			er.SyncRefreshTime,
			er.RetryBaseDelay,
		))
	}
	if c.MissingRecordStorage {
		options = append(options, sturdyc.WithMissingRecordStorage())
	}
	if c.EvictionInterval > 0 {
		options = append(options, sturdyc.WithEvictionInterval(c.EvictionInterval))
	}
	return options
}

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}
