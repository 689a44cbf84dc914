package db

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	// ForeignKeyViolation is the Postgres SQLSTATE for foreign key errors
	ForeignKeyViolation = "23503"
	// UniqueViolation is the Postgres SQLSTATE for unique constraint errors
	UniqueViolation = "23505"
)

// ErrRecordNotFound is returned when a query matches no rows
var ErrRecordNotFound = pgx.ErrNoRows

// ErrorCode extracts the Postgres SQLSTATE code from an error, if any
func ErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
