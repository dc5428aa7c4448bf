// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avdeyev/go-auth-sessions/internal/logger"
	"github.com/avdeyev/go-auth-sessions/internal/service"
	"github.com/avdeyev/go-auth-sessions/internal/utils"
	"github.com/avdeyev/go-auth-sessions/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signUpFn    func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	signInFn    func(ctx context.Context, creds models.Credentials) (models.Token, error)
	selfFn      func(ctx context.Context, username string) (models.User, error)
	authorizeFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.signUpFn(ctx, req)
}

func (m *mockAuthService) SignIn(ctx context.Context, creds models.Credentials) (models.Token, error) {
	return m.signInFn(ctx, creds)
}

func (m *mockAuthService) Self(ctx context.Context, username string) (models.User, error) {
	return m.selfFn(ctx, username)
}

func (m *mockAuthService) Authorize(ctx context.Context, tokenString string) (models.Token, error) {
	return m.authorizeFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// validRegisterRequest is a convenience fixture used across multiple tests.
var validRegisterRequest = models.RegisterRequest{
	Username:  "alice",
	Password:  "sup3r-secret",
	FirstName: "Alice",
	LastName:  "Liddell",
}

var validCredentials = models.Credentials{
	Username: "alice",
	Password: "sup3r-secret",
}

// ─────────────────────────────────────────────
// signup — success
// ─────────────────────────────────────────────

// TestSignup_Success verifies that a valid registration request results in
// 201 Created and a JSON body with the public user fields only.
func TestSignup_Success(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
			return models.User{
				UserID:    7,
				Username:  req.Username,
				FirstName: req.FirstName,
				LastName:  req.LastName,
			}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(jsonBody(t, validRegisterRequest)))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.PublicUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "Alice", got.FirstName)
	assert.Equal(t, "Liddell", got.LastName)

	// The password hash must never leak into the response.
	assert.NotContains(t, rec.Body.String(), "password")
}

// ─────────────────────────────────────────────
// signup — invalid JSON
// ─────────────────────────────────────────────

// TestSignup_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request.
func TestSignup_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

// TestSignup_EmptyBody verifies that an empty request body results in
// 400 Bad Request.
func TestSignup_EmptyBody(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(""))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// signup — SignUp errors
// ─────────────────────────────────────────────

// TestSignup_InvalidDataProvided verifies that service.ErrInvalidDataProvided
// maps to 400 Bad Request.
func TestSignup_InvalidDataProvided(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(jsonBody(t, validRegisterRequest)))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid data provided")
}

// TestSignup_UsernameTaken verifies that service.ErrUsernameTaken maps to
// 400 Bad Request with an explanatory body.
func TestSignup_UsernameTaken(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, service.ErrUsernameTaken
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(jsonBody(t, validRegisterRequest)))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "username already in use")
}

// TestSignup_WrappedUsernameTaken verifies that a wrapped
// service.ErrUsernameTaken is still matched via errors.Is.
func TestSignup_WrappedUsernameTaken(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, errors.Join(errors.New("outer"), service.ErrUsernameTaken)
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(jsonBody(t, validRegisterRequest)))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestSignup_UnexpectedError verifies that an unknown error from SignUp maps
// to 500 Internal Server Error.
func TestSignup_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, errors.New("db connection lost")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(jsonBody(t, validRegisterRequest)))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// signin — success
// ─────────────────────────────────────────────

// TestSignin_Success verifies that valid credentials result in 200 OK and a
// JSON body carrying the issued access token.
func TestSignin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		signInFn: func(_ context.Context, _ models.Credentials) (models.Token, error) {
			return models.Token{SignedString: signedToken}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader(jsonBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.signin(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, signedToken, got.AccessToken)
}

// ─────────────────────────────────────────────
// signin — errors
// ─────────────────────────────────────────────

// TestSignin_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request.
func TestSignin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader("not-json"))
	rec := httptest.NewRecorder()

	h.signin(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

// TestSignin_UserNotFound verifies that service.ErrUserNotFound maps to
// 404 Not Found, distinct from a wrong password.
func TestSignin_UserNotFound(t *testing.T) {
	auth := &mockAuthService{
		signInFn: func(_ context.Context, _ models.Credentials) (models.Token, error) {
			return models.Token{}, service.ErrUserNotFound
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader(jsonBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.signin(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "user not found")
}

// TestSignin_InvalidCredentials verifies that service.ErrInvalidCredentials
// maps to 400 Bad Request with the "password incorrect" body.
func TestSignin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		signInFn: func(_ context.Context, _ models.Credentials) (models.Token, error) {
			return models.Token{}, service.ErrInvalidCredentials
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader(jsonBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.signin(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "password incorrect")
}

// TestSignin_InvalidDataProvided verifies that empty credentials map to
// 400 Bad Request.
func TestSignin_InvalidDataProvided(t *testing.T) {
	auth := &mockAuthService{
		signInFn: func(_ context.Context, _ models.Credentials) (models.Token, error) {
			return models.Token{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader(`{"username":"","password":""}`))
	rec := httptest.NewRecorder()

	h.signin(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestSignin_UnexpectedError verifies that an infrastructure failure during
// signin maps to 503 Service Unavailable.
func TestSignin_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		signInFn: func(_ context.Context, _ models.Credentials) (models.Token, error) {
			return models.Token{}, errors.New("session cache write failed")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader(jsonBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.signin(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

// ─────────────────────────────────────────────
// self
// ─────────────────────────────────────────────

// selfRequest builds a GET /api/auth/self request whose context carries the
// given username, mimicking what the auth middleware does on success.
func selfRequest(t *testing.T, username string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/self", nil)
	req = injectNopLogger(req)
	ctx := context.WithValue(req.Context(), utils.UsernameCtxKey, username)
	return req.WithContext(ctx)
}

// TestSelf_Success verifies that the authenticated user's public record is
// returned as JSON.
func TestSelf_Success(t *testing.T) {
	auth := &mockAuthService{
		selfFn: func(_ context.Context, username string) (models.User, error) {
			return models.User{
				UserID:       42,
				Username:     username,
				PasswordHash: "aabbcc.ddeeff",
				FirstName:    "Alice",
				LastName:     "Liddell",
			}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	rec := httptest.NewRecorder()

	h.self(rec, selfRequest(t, "alice"))

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.PublicUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, "alice", got.Username)

	assert.NotContains(t, rec.Body.String(), "aabbcc.ddeeff")
}

// TestSelf_NoUsernameInContext verifies that a request that somehow bypassed
// the auth middleware is rejected with 401.
func TestSelf_NoUsernameInContext(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/self", nil)
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.self(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestSelf_LookupFails verifies that a store failure during the lookup maps
// to 500 Internal Server Error.
func TestSelf_LookupFails(t *testing.T) {
	auth := &mockAuthService{
		selfFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, errors.New("db connection lost")
		},
	}

	h := newHandlerWithAuth(t, auth)
	rec := httptest.NewRecorder()

	h.self(rec, selfRequest(t, "alice"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
