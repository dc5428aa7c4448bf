package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/allegro/bigcache/v3"

	"github.com/avdeyev/go-auth-sessions/internal/logger"
)

// sessionCache is the in-process implementation of [SessionCache] backed by
// bigcache.
type sessionCache struct {
	cache  *bigcache.BigCache
	logger *logger.Logger
}

// NewSessionCache constructs a [SessionCache] whose entries live for
// entryTTL. The TTL is expected to mirror the session token duration, so a
// cached token never outlives its own cryptographic expiry; an entry that
// does expire first only forces a re-signin, never grants access.
func NewSessionCache(ctx context.Context, entryTTL time.Duration, log *logger.Logger) (SessionCache, error) {
	store, err := bigcache.New(ctx, bigcache.DefaultConfig(entryTTL))
	if err != nil {
		return nil, fmt.Errorf("error creating session cache: %w", err)
	}

	log.Debug().Dur("entry_ttl", entryTTL).Msg("session cache created")

	return &sessionCache{
		cache:  store,
		logger: log,
	}, nil
}

// Set implements [SessionCache].
func (c *sessionCache) Set(ctx context.Context, key, value string) error {
	if err := c.cache.Set(key, []byte(value)); err != nil {
		logger.FromContext(ctx).Err(err).Str("key", key).Msg("error writing session cache entry")
		return fmt.Errorf("error writing session cache entry: %w", err)
	}

	return nil
}

// Get implements [SessionCache].
func (c *sessionCache) Get(ctx context.Context, key string) (string, error) {
	entry, err := c.cache.Get(key)
	if err != nil {
		if errors.Is(err, bigcache.ErrEntryNotFound) {
			return "", ErrNotFound
		}

		logger.FromContext(ctx).Err(err).Str("key", key).Msg("error reading session cache entry")
		return "", fmt.Errorf("error reading session cache entry: %w", err)
	}

	return string(entry), nil
}
