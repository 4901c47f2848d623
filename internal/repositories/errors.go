package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a PostgreSQL unique
// constraint violation. Services use it to turn the storage-layer
// uniqueness guarantees (users.email, favorites(user_id, template_id))
// into domain errors, which keeps check-then-insert races safe.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
