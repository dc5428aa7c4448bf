package token

import "errors"

// ErrInvalidParams is returned by [NewManager] when the sign key, issuer,
// or token duration is missing from the configuration.
var ErrInvalidParams = errors.New("invalid params for JWT token manager")
