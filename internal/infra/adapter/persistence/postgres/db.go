// Package postgres provides PostgreSQL implementations of the repository
// interfaces. It preserves the storage contracts of the in-memory
// reference backend: dangling article references are excluded at read
// time by the join, and published_at is stamped in a single statement so
// concurrent partial updates cannot interleave.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of database/sql used by the repositories. Both
// *sql.DB and the circuit-breaker wrapper satisfy it.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// isUniqueViolation reports whether err is a PostgreSQL unique
// constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
