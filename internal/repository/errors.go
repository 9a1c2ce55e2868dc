package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Error families. Callers match on these with errors.Is.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// Common repository errors
var (
	// ErrColumnNotFound is returned when a column is not found
	ErrColumnNotFound error = &kindError{"column not found", ErrNotFound}

	// ErrCardNotFound is returned when a card is not found
	ErrCardNotFound error = &kindError{"card not found", ErrNotFound}

	// ErrTagNotFound is returned when a tag is not found
	ErrTagNotFound error = &kindError{"tag not found", ErrNotFound}

	// ErrTagNameTaken is returned when another tag already uses the name
	ErrTagNameTaken error = &kindError{"tag with this name already exists", ErrConflict}

	// ErrCardArchived is returned when an archived card is moved
	ErrCardArchived error = &kindError{"card is archived", ErrConflict}
)

// kindError carries its own message and belongs to one error family.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
