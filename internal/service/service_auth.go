package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdeyev/go-auth-sessions/internal/cache"
	"github.com/avdeyev/go-auth-sessions/internal/crypto"
	"github.com/avdeyev/go-auth-sessions/internal/logger"
	"github.com/avdeyev/go-auth-sessions/internal/store"
	"github.com/avdeyev/go-auth-sessions/internal/token"
	"github.com/avdeyev/go-auth-sessions/models"
)

// authService is the concrete implementation of [AuthService].
// It coordinates the user repository, the password hasher, the token
// manager, and the session cache; every collaborator is injected at
// construction time so the service carries no global state.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher derives and verifies the stored password hashes.
	hasher crypto.PasswordHasher

	// tokens issues and parses signed session tokens.
	tokens token.Manager

	// sessions holds the single currently-valid token per username.
	sessions cache.SessionCache

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given
// collaborators.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokens token.Manager, sessions cache.SessionCache, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		sessions:       sessions,
		logger:         logger,
	}
}

// SignUp creates a new user account.
//
// The username is checked for uniqueness first so that the common duplicate
// case surfaces as [ErrUsernameTaken] without burning a KDF derivation. The
// check-then-create sequence is not transactional against concurrent signups
// with the same username; the database unique constraint is the final
// correctness guarantee and maps to the same error.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - [ErrInvalidDataProvided] if username or password is empty.
//   - [ErrUsernameTaken] if the username is already registered.
//   - A wrapped storage error if the repository call fails.
func (a *authService) SignUp(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	_, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	switch {
	case err == nil:
		log.Error().Str("username", req.Username).Msg("username already in use")
		return models.User{}, ErrUsernameTaken
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("username", req.Username).Msg("user lookup before signup failed")
		return models.User{}, fmt.Errorf("user lookup before signup failed: %w", err)
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	createdUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			// lost the check-then-create race; same outcome as the pre-check
			return models.User{}, ErrUsernameTaken
		}

		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// SignIn authenticates an existing user and issues a session token.
//
// On success the signed token has already been stored in the session cache
// under "token:<username>", overwriting any prior entry; issuing a new token
// therefore invalidates all previously issued tokens for that user. A token
// is never returned unless its cached copy was written: a failed cache write
// fails the whole signin.
//
// Returns the issued token or:
//   - [ErrInvalidDataProvided] if username or password is empty.
//   - [ErrUserNotFound] if no account with that username exists.
//   - [ErrInvalidCredentials] if the password does not match.
//   - A wrapped error if token issuance or the cache write fails.
func (a *authService) SignIn(ctx context.Context, creds models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		log.Error().Str("username", creds.Username).Msg("invalid signin data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Error().Str("username", creds.Username).Msg("user not found")
			return models.Token{}, ErrUserNotFound
		}

		log.Err(err).Str("username", creds.Username).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := a.hasher.Verify(creds.Password, foundUser.PasswordHash); err != nil {
		log.Err(err).
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	issuedToken, err := a.tokens.Issue(foundUser.UserID, foundUser.Username)
	if err != nil {
		log.Err(err).Str("username", foundUser.Username).Msg("token issuance failed")
		return models.Token{}, fmt.Errorf("token issuance failed: %w", err)
	}

	if err := a.sessions.Set(ctx, cache.TokenKey(foundUser.Username), issuedToken.SignedString); err != nil {
		log.Err(err).Str("username", foundUser.Username).Msg("session cache write failed")
		return models.Token{}, fmt.Errorf("session cache write failed: %w", err)
	}

	return issuedToken, nil
}

// Self returns the user record for an already-authenticated username.
//
// It is intended for guarded routes where the username comes from verified
// token claims; an absent record therefore indicates an inconsistency
// between the token and the store rather than client error, and the raw
// storage error is propagated.
func (a *authService) Self(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	return foundUser, nil
}

// Authorize validates a presented session token.
//
// Signature, expiry, and issuer are checked first; only a token that passes
// those checks reaches the cache cross-check, where the cached token for the
// claims' username must equal the presented one. Any validation failure —
// bad signature, expired, malformed, missing cache entry, or superseded by a
// newer signin — is normalised to [ErrTokenIsExpiredOrInvalid] so that
// callers do not need to inspect low-level token errors.
func (a *authService) Authorize(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	parsedToken, err := a.tokens.Parse(tokenString)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	cachedToken, err := a.sessions.Get(ctx, cache.TokenKey(parsedToken.Username))
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			log.Error().Str("username", parsedToken.Username).Msg("no cached session for token")
			return models.Token{}, ErrTokenIsExpiredOrInvalid
		}

		log.Err(err).Str("username", parsedToken.Username).Msg("session cache read failed")
		return models.Token{}, fmt.Errorf("session cache read failed: %w", err)
	}

	if cachedToken != tokenString {
		log.Error().Str("username", parsedToken.Username).Msg("token superseded by a newer signin")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return parsedToken, nil
}
