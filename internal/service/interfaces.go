package service

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_service_mock.go -package=mock

import (
	"context"

	"github.com/avdeyev/go-auth-sessions/models"
)

// AuthService coordinates signup, signin, and token authorization as
// atomic-from-the-caller's-view operations over the user store, the password
// hasher, the token manager, and the session cache.
type AuthService interface {
	// SignUp registers a new account. Returns ErrUsernameTaken when the
	// username is already in use.
	SignUp(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// SignIn authenticates credentials and issues a session token. The
	// token is stored in the session cache before it is returned, replacing
	// any previously issued token for the same user; if the cache write
	// fails the whole signin fails.
	// Returns ErrUserNotFound for an unknown username and
	// ErrInvalidCredentials for a wrong password.
	SignIn(ctx context.Context, creds models.Credentials) (models.Token, error)

	// Self returns the user record for an already-authenticated username,
	// for "who am I" lookups on guarded routes.
	Self(ctx context.Context, username string) (models.User, error)

	// Authorize validates a presented token: signature and expiry first,
	// then a cross-check that the session cache still holds this exact
	// token for the claims' username. A cryptographically valid token that
	// has been superseded by a newer signin fails with
	// ErrTokenIsExpiredOrInvalid.
	Authorize(ctx context.Context, tokenString string) (models.Token, error)
}
