package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/cbs-gateway/models"
)

// MaxBodyBytes caps inbound JSON bodies.
const MaxBodyBytes = 100 << 10

// DecodeBody decodes a JSON request body into dst. A body cut off by
// http.MaxBytesReader yields ErrBodyTooLarge; any other decoding failure is
// returned as a *ValidationError so callers answer it like a rule violation.
// The body must hold exactly one JSON value; anything after it but
// whitespace is rejected.
func DecodeBody(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	err := dec.Decode(dst)
	if err == nil {
		if err = dec.Decode(&json.RawMessage{}); errors.Is(err, io.EOF) {
			return nil
		}
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxErr.Limit)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return newValidationError(models.Violation{
			Location: LocationBody,
			Field:    typeErr.Field,
			Message:  fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type.Kind()),
			Rule:     "type",
		})
	}

	msg := "request body must be a valid JSON object"
	if errors.Is(err, io.EOF) {
		msg = "request body is required"
	}

	return newValidationError(models.Violation{
		Location: LocationBody,
		Field:    "body",
		Message:  msg,
		Rule:     "json",
	})
}
