package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avdeyev/go-auth-sessions/internal/logger"
	"github.com/avdeyev/go-auth-sessions/internal/service"
	"github.com/avdeyev/go-auth-sessions/internal/utils"
	"github.com/avdeyev/go-auth-sessions/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdUser, err := h.services.AuthService.SignUp(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrUsernameTaken):
			log.Err(err).Msg("username already in use")
			http.Error(w, "username already in use", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user signup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, createdUser.Public(), http.StatusCreated)
}

func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	sessionToken, err := h.services.AuthService.SignIn(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrUserNotFound):
			log.Err(err).Msg("user not found")
			http.Error(w, "user not found", http.StatusNotFound)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("password incorrect")
			http.Error(w, "password incorrect", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user signin")
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
	}

	log.Debug().Str("username", creds.Username).Msg("user successfully signed in")

	utils.WriteJSON(w, models.TokenResponse{AccessToken: sessionToken.SignedString}, http.StatusOK)
}

// self returns the public record of the authenticated user. The username is
// taken from the guard-populated request context, never from client input.
func (h *Handler) self(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		log.Error().Msg("no username in authorized request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	foundUser, err := h.services.AuthService.Self(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("authorized user lookup failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, foundUser.Public(), http.StatusOK)
}
