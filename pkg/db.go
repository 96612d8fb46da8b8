package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html

// IsUniqueViolationError checks if the error is a unique violation error
func IsUniqueViolationError(err error) bool {
	return pgErrorCode(err) == "23505"
}

// IsForeignKeyViolationError checks if the error is a foreign key violation error,
// e.g. a meal log referencing a recipe that does not exist
func IsForeignKeyViolationError(err error) bool {
	return pgErrorCode(err) == "23503"
}

// IsCheckViolationError checks if the error is a check constraint violation error
func IsCheckViolationError(err error) bool {
	return pgErrorCode(err) == "23514"
}

// IsNumericOutOfRangeError checks if a value did not fit its column type
func IsNumericOutOfRangeError(err error) bool {
	return pgErrorCode(err) == "22003"
}

// AsValidationError turns a write rejected because of the user supplied values into a
// *ValidationError. Any other error is returned unchanged.
func AsValidationError(err error) error {
	switch {
	case IsForeignKeyViolationError(err):
		return NewValidationError(pgErrorField(err), "references a missing row")
	case IsCheckViolationError(err):
		return NewValidationError(pgErrorField(err), "not allowed")
	case IsNumericOutOfRangeError(err):
		return NewValidationError(pgErrorField(err), "out of range")
	}
	return err
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func pgErrorField(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "value"
	}
	switch {
	case pgErr.ColumnName != "":
		return pgErr.ColumnName
	case pgErr.ConstraintName != "":
		return pgErr.ConstraintName
	}
	return "value"
}
