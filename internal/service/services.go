package service

import (
	"github.com/avdeyev/go-auth-sessions/internal/cache"
	"github.com/avdeyev/go-auth-sessions/internal/crypto"
	"github.com/avdeyev/go-auth-sessions/internal/logger"
	"github.com/avdeyev/go-auth-sessions/internal/store"
	"github.com/avdeyev/go-auth-sessions/internal/token"
)

// Services aggregates every business-logic service exposed to the transport
// layer.
type Services struct {
	AuthService AuthService
}

// NewServices wires all services to their collaborators.
func NewServices(storages *store.Storages, tokens token.Manager, sessions cache.SessionCache, log *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(
			storages.UserRepository,
			crypto.NewScryptHasher(),
			tokens,
			sessions,
			log,
		),
	}
}
