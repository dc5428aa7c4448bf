package store

import (
	"context"

	"github.com/avdeyev/go-auth-sessions/internal/config"
	"github.com/avdeyev/go-auth-sessions/internal/logger"
)

// Storages aggregates every repository backed by the relational database.
type Storages struct {
	// DB is the shared connection handle; exposed so startup code can run
	// migrations against it.
	DB *DB

	UserRepository UserRepository
}

// NewStorages connects to PostgreSQL and constructs all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, log),
	}, nil
}
