package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/cbs-gateway/models"
)

var (
	ErrUnsupportedType  = errors.New("unsupported type for validation")
	ErrValidationFailed = errors.New("validation failed")
	ErrBodyTooLarge     = errors.New("request body too large")
)

// Violation locations.
const (
	LocationBody   = "body"
	LocationParams = "params"
)

// ValidationError carries every rule violation found in one request.
type ValidationError struct {
	Violations []models.Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// Violations returns the violations carried by err, or nil when err is not
// a *ValidationError.
func Violations(err error) []models.Violation {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Violations
	}
	return nil
}

func newValidationError(v ...models.Violation) *ValidationError {
	return &ValidationError{Violations: v}
}
