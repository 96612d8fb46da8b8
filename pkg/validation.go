package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ValidationError is returned for malformed or out-of-range user input.
// Handlers map it to 400 Bad Request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// DecodeJSONBody decodes the request body into dst. Unknown fields are rejected.
func DecodeJSONBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return NewValidationError("body", "empty")
	}
	ct := r.Header.Get("Content-Type")
	if ct != "" && !strings.HasPrefix(ct, ContentType.JSON) {
		return NewValidationError("content-type", "expected application/json")
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return NewValidationError("body", err.Error())
	}
	return nil
}

func ParseDate(field, value string) (time.Time, error) {
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, NewValidationError(field, "expected YYYY-MM-DD")
	}
	return d, nil
}

func ParseID(field, value string) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil || id <= 0 {
		return 0, NewValidationError(field, "expected a positive integer")
	}
	return id, nil
}

func NonNegative(field string, value float64) error {
	if value < 0 {
		return NewValidationError(field, "must not be negative")
	}
	return nil
}

// NonNegativeInt validates a value stored in an INT column.
func NonNegativeInt(field string, value int) error {
	return IntInRange(field, value, 0, math.MaxInt32)
}

func NonNegativeIntPtr(field string, value *int) error {
	if value == nil {
		return nil
	}
	return NonNegativeInt(field, *value)
}

// NonNegativeNumeric validates a value stored in a NUMERIC(precision, scale) column.
// Postgres rounds to scale digits before it checks the precision, and so does this.
func NonNegativeNumeric(field string, value float64, precision, scale int) error {
	if err := NonNegative(field, value); err != nil {
		return err
	}
	if math.IsInf(value, 0) || math.IsNaN(value) || RoundNumeric(value, scale) >= math.Pow10(precision-scale) {
		return NewValidationError(field, fmt.Sprintf("must be less than %g", math.Pow10(precision-scale)))
	}
	return nil
}

func NonNegativeNumericPtr(field string, value *float64, precision, scale int) error {
	if value == nil {
		return nil
	}
	return NonNegativeNumeric(field, *value, precision, scale)
}

// RoundNumeric rounds to scale digits the way a NUMERIC column stores the value: the decimal
// text of the float is rounded half away from zero.
func RoundNumeric(value float64, scale int) float64 {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(value, 'f', -1, 64))
	if !ok {
		return value
	}
	rounded, err := strconv.ParseFloat(r.FloatString(scale), 64)
	if err != nil {
		return value
	}
	return rounded
}

func IntInRange(field string, value, min, max int) error {
	if value < min || value > max {
		return NewValidationError(field, fmt.Sprintf("must be between %d and %d", min, max))
	}
	return nil
}

func OneOf[T ~string](field string, value T, allowed ...T) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return NewValidationError(field, fmt.Sprintf("unknown value [%s]", value))
}

func NotBlank(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field, "required")
	}
	return nil
}
