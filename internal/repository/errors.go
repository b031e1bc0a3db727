// Package repository holds the data-access layer. The sentinel errors below
// let services tell a missing record or a dangling reference apart from a
// storage failure.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when an id does not resolve to a record.
var ErrNotFound = errors.New("record not found")

// ErrVenueReference is returned when a show points at a venue that does not exist.
var ErrVenueReference = errors.New("venue does not exist")

// ErrArtistReference is returned when a show points at an artist that does not exist.
var ErrArtistReference = errors.New("artist does not exist")

const foreignKeyViolation = "23503"

// translateError maps foreign key violations raised by PostgreSQL onto the
// reference sentinels. Anything else is returned untouched.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != foreignKeyViolation {
		return err
	}
	switch pgErr.ConstraintName {
	case "fk_shows_venue":
		return ErrVenueReference
	case "fk_shows_artist":
		return ErrArtistReference
	}
	return err
}
