package errors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation SQLSTATE for unique_violation
const pgUniqueViolation = "23505"

// ErrDuplicateKey a write hit a storage-level uniqueness constraint
var ErrDuplicateKey = errors.New("duplicate key")

// IsUniqueViolation reports whether err comes from a violated unique index.
// Both gorm's translated error and the raw pgconn error are recognised, so callers
// work with or without gorm's TranslateError option.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrDuplicateKey) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
