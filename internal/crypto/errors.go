package crypto

import "errors"

// Sentinel errors returned by [PasswordHasher.Verify]. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrHashMismatch is returned when the candidate password does not
	// reproduce the stored hash.
	ErrHashMismatch = errors.New("password hash mismatch")

	// ErrMalformedHash is returned when the stored value does not follow
	// the "salt.hexkey" format (missing separator or empty parts).
	ErrMalformedHash = errors.New("malformed password hash")
)
