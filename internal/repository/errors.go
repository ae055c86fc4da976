package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrConflict      = errors.New("conflict")
	ErrUnavailable   = errors.New("storage unavailable")
)

// pgCodes lists the SQLSTATEs the catalog gives a meaning to.
var pgCodes = map[string]error{
	pgerrcode.UniqueViolation:      ErrAlreadyExists,
	pgerrcode.ForeignKeyViolation:  ErrConflict,
	pgerrcode.SerializationFailure: ErrConflict,
	pgerrcode.DeadlockDetected:     ErrConflict,
	pgerrcode.CannotConnectNow:     ErrUnavailable,
	pgerrcode.AdminShutdown:        ErrUnavailable,
	pgerrcode.CrashShutdown:        ErrUnavailable,
	pgerrcode.TooManyConnections:   ErrUnavailable,
}

// MapPgError turns pgx errors into repository errors. Errors with no
// catalog meaning are returned as they are.
func MapPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return ErrUnavailable
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := pgCodes[pgErr.Code]; ok {
			return mapped
		}
	}
	return err
}
