package token

//go:generate mockgen -source=interfaces.go -destination=../mock/token_manager_mock.go -package=mock

import (
	"github.com/avdeyev/go-auth-sessions/models"
)

// Manager issues and verifies signed session tokens.
//
// A Manager is configured once at startup with the process-wide signing
// secret, the issuer name, and the token lifetime; it holds no mutable state
// afterwards and is safe for concurrent use.
type Manager interface {
	// Issue produces a signed HMAC-SHA256 JWT for the given user identity.
	// The token carries the user ID as the "sub" claim, the username as a
	// custom claim, the configured issuer, an issued-at timestamp, and an
	// expiry of now plus the configured duration.
	Issue(userID int64, username string) (models.Token, error)

	// Parse validates a raw JWT string (signature, expiry, issuer) and
	// extracts its claims. Any validation failure is reported as an error;
	// callers are expected to treat all such failures uniformly.
	Parse(tokenString string) (models.Token, error)
}
