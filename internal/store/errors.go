package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is a sentinel error used when a queried resource does
	// not exist in the database.
	ErrNotFound = errors.New("record is not found")

	// ErrEmailAlreadyExists indicates the email unique constraint fired
	// during registration or a profile update.
	ErrEmailAlreadyExists = errors.New("email is already registered")

	// ErrUsernameAlreadyExists indicates the username unique constraint
	// fired during registration.
	ErrUsernameAlreadyExists = errors.New("username is already registered")

	// ErrRegistrationNumberAlreadyExists indicates the institution
	// registration-number unique constraint fired.
	ErrRegistrationNumberAlreadyExists = errors.New("registration number is already registered")

	// ErrScientificNameAlreadyExists indicates the scientific-name unique
	// constraint fired during species submission.
	ErrScientificNameAlreadyExists = errors.New("scientific name is already registered")
)

// uniqueConstraintErrors maps PostgreSQL unique-constraint names (as defined
// in the migrations) to the field-level sentinel errors surfaced to users.
var uniqueConstraintErrors = map[string]error{
	"users_email_key":                      ErrEmailAlreadyExists,
	"users_username_key":                   ErrUsernameAlreadyExists,
	"institutions_registration_number_key": ErrRegistrationNumberAlreadyExists,
	"species_scientific_name_key":          ErrScientificNameAlreadyExists,
}

// mapConstraintError converts a PostgreSQL unique-violation into the
// matching field-level sentinel. Any other error is returned unchanged so
// callers can wrap it as an unexpected DB error.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		if sentinel, ok := uniqueConstraintErrors[pgErr.ConstraintName]; ok {
			return sentinel
		}
	}

	return err
}
