package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avdeyev/go-auth-sessions/internal/config"
	"github.com/avdeyev/go-auth-sessions/models"
)

// jwtManager is the HMAC-SHA256 implementation of [Manager].
type jwtManager struct {
	// signKey is the process-wide secret used to sign and verify tokens.
	signKey string

	// issuer is the "iss" claim embedded in every issued token. Tokens
	// whose issuer does not match this value are rejected during parsing.
	issuer string

	// duration controls how long a newly issued token remains valid.
	duration time.Duration
}

// NewManager constructs a [Manager] from the auth configuration.
//
// Returns [ErrInvalidParams] if the sign key or issuer is empty or the
// duration is zero; a manager with degenerate parameters would silently
// issue unverifiable or immortal tokens.
func NewManager(cfg config.Auth) (Manager, error) {
	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" || cfg.TokenDuration == 0 {
		return nil, ErrInvalidParams
	}

	return &jwtManager{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
	}, nil
}

// Issue implements [Manager].
func (m *jwtManager) Issue(userID int64, username string) (models.Token, error) {
	now := time.Now()
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(m.signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		TokenClaims:  claims,
		SignedString: signedString,
		UserID:       userID,
	}, nil
}

// Parse implements [Manager].
//
// Validation includes:
//   - signature verification against the configured sign key;
//   - expiration (exp) claim check;
//   - issuer (iss) claim check against the configured issuer;
//   - subject (sub) claim presence and conversion to int64 UserID;
//   - username claim presence.
func (m *jwtManager) Parse(tokenString string) (models.Token, error) {
	parsed := &models.Token{}
	jwtToken, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		return []byte(m.signKey), nil
	}, jwt.WithIssuer(m.issuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := parsed.GetUserID()
	if err != nil {
		return models.Token{}, err
	}

	if parsed.Username == "" {
		return models.Token{}, errors.New("empty username claim")
	}

	parsed.Token = jwtToken
	parsed.SignedString = tokenString
	parsed.UserID = userID

	return *parsed, nil
}
