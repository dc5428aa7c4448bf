package store

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

import (
	"context"

	"github.com/avdeyev/go-auth-sessions/models"
)

// UserRepository is the data-access contract for user accounts.
//
// It is deliberately narrow: accounts are created once at signup and looked
// up by username at signin; no update or delete operations exist. The
// database's unique constraint on username is the canonical last line of
// defense against duplicate registrations.
type UserRepository interface {
	// CreateUser persists a new user and returns the record with
	// server-assigned fields (UserID, CreatedAt) populated.
	// Returns ErrUsernameAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername retrieves the user with the given username.
	// Returns ErrUserNotFound when no such account exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}
