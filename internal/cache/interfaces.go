package cache

//go:generate mockgen -source=interfaces.go -destination=../mock/session_cache_mock.go -package=mock

import "context"

// tokenKeyPrefix namespaces session token entries in the cache.
const tokenKeyPrefix = "token:"

// SessionCache stores the single currently-valid session token per username.
//
// The contract is an unconditional key-value upsert plus a lookup: a new
// signin overwrites the prior entry for the same key, which implicitly
// invalidates any previously issued token for that user. Implementations may
// be in-process (bigcache) or external (Redis); callers must not assume
// anything beyond the per-key atomicity of a single Set.
type SessionCache interface {
	// Set unconditionally stores value under key, replacing any existing
	// entry.
	Set(ctx context.Context, key, value string) error

	// Get returns the current value for key, or ErrNotFound when no live
	// entry exists. A missing key is a normal outcome, not a failure.
	Get(ctx context.Context, key string) (string, error)
}

// TokenKey returns the cache key holding the active session token for the
// given username. Keeping the scheme in one place lets a future logout
// feature target the same key.
func TokenKey(username string) string {
	return tokenKeyPrefix + username
}
