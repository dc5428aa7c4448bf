package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/avdeyev/go-auth-sessions/models"
)

// userColumns is the canonical column list scanned into a [models.User].
var userColumns = []string{"user_id", "username", "password_hash", "first_name", "last_name", "created_at"}

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildCreateUserQuery produces the INSERT for a new user account.
// All columns are returned via a RETURNING clause so the caller receives the
// canonical database representation of the newly created record.
func buildCreateUserQuery(user models.User) (string, []any, error) {
	query, args, err := psql.
		Insert(user.TableName()).
		Columns("username", "password_hash", "first_name", "last_name").
		Values(user.Username, user.PasswordHash, user.FirstName, user.LastName).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildFindUserByUsernameQuery produces the SELECT for a username lookup.
func buildFindUserByUsernameQuery(username string) (string, []any, error) {
	query, args, err := psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
