// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/cbs-gateway/models"
)

// RequestValidator implements [Validator] on top of go-playground/validator.
// It is safe for concurrent use.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator builds a RequestValidator with the gateway rules
// registered. Field names in violations are taken from `json` tags.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// registration only fails for empty tags or nil funcs
	_ = v.RegisterValidation(RuleIdentifier, isIdentifier)
	_ = v.RegisterValidation(RuleAmountMin, isAmountAboveMin)
	_ = v.RegisterValidation(RuleAmountMax, isAmountBelowMax)

	return &RequestValidator{validate: v}
}

// Validate sanitises obj (when it is a pointer to a struct) and validates it.
// fields, when given, are Go struct field names and restrict validation to
// those fields. It returns a *ValidationError listing at most one violation
// per field, or ErrUnsupportedType when obj is not a struct.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	sanitize(obj)

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}

	return toValidationError(err, LocationBody)
}

// ValidateParam validates a route identifier parameter.
func (v *RequestValidator) ValidateParam(ctx context.Context, name, value string) (string, error) {
	value = strings.TrimSpace(value)

	if err := v.validate.VarCtx(ctx, value, "required,"+RuleIdentifier); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return "", newValidationError(violation(LocationParams, name, value, fieldErrs[0].Tag()))
		}
		return "", err
	}

	return Escape(value), nil
}

func toValidationError(err error, location string) error {
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return ErrUnsupportedType
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	violations := make([]models.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, violation(location, fe.Field(), fe.Value(), fe.Tag()))
	}

	return newValidationError(violations...)
}

func violation(location, field string, value any, rule string) models.Violation {
	if rv := reflect.ValueOf(value); !rv.IsValid() || rv.IsZero() {
		value = nil
	}

	return models.Violation{
		Location: location,
		Field:    field,
		Value:    value,
		Message:  messageFor(field, rule),
		Rule:     rule,
	}
}
