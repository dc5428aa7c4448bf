package cache

import "errors"

// ErrNotFound is returned by [SessionCache.Get] when no live entry exists
// for the requested key. Callers should match with [errors.Is].
var ErrNotFound = errors.New("cache entry not found")
