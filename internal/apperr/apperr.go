// Package apperr defines the error taxonomy shared by the service and
// handler layers. Services wrap these sentinels with context via fmt.Errorf
// and handlers translate them to HTTP status codes with errors.Is.
package apperr

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	// ErrValidation marks missing or invalid caller input.
	ErrValidation = errors.New("invalid input")
	// ErrNotFound marks a referenced record that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a uniqueness or referential-integrity violation.
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized marks a request without a usable user identity.
	ErrUnauthorized = errors.New("unauthorized")
)

// Postgres error codes, per the class 23 integrity-constraint family.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// FromDB translates database/sql and lib/pq errors into the taxonomy.
// Unique and foreign-key violations both surface as ErrConflict: a duplicate
// watchlist entry or season number, and a delete blocked by a live reference,
// are all caller-resolvable conflicts rather than server failures. Check
// violations (e.g. an unknown status value) are caller input errors.
// Errors with no mapping are returned unchanged.
func FromDB(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: duplicate value for %s", ErrConflict, pqErr.Constraint)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: record is referenced by %s", ErrConflict, pqErr.Constraint)
		case pgCheckViolation:
			return fmt.Errorf("%w: value rejected by %s", ErrValidation, pqErr.Constraint)
		}
	}
	return err
}
