// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/cbs-gateway/models"
)

// Rule tags registered on the underlying validator.
const (
	RuleIdentifier = "identifier"
	RuleAmountMin  = "amount_min"
	RuleAmountMax  = "amount_max"
)

const (
	MinAmount = 0.01
	MaxAmount = 1_000_000
)

var identifierPattern = regexp.MustCompile(`^[A-Z][0-9]{3}$`)

func isIdentifier(fl validator.FieldLevel) bool {
	return identifierPattern.MatchString(fl.Field().String())
}

func isAmountAboveMin(fl validator.FieldLevel) bool {
	amount, ok := models.Amount(fl.Field().String()).Float64()
	return ok && amount >= MinAmount
}

// isAmountBelowMax passes non-numeric input; amount_min reports it.
func isAmountBelowMax(fl validator.FieldLevel) bool {
	amount, ok := models.Amount(fl.Field().String()).Float64()
	return !ok || amount <= MaxAmount
}

// fieldMessages holds the caller-facing message per field and rule.
var fieldMessages = map[string]map[string]string{
	"from": {
		"required":     "source account is required",
		RuleIdentifier: "source account must match the format (e.g. A001)",
	},
	"to": {
		"required":     "destination account is required",
		RuleIdentifier: "destination account must match the format (e.g. A001)",
	},
	"accountNumber": {
		"required":     "account number is required",
		RuleIdentifier: "account number must match the format (e.g. A001)",
	},
	"id": {
		"required":     "id is required",
		RuleIdentifier: "id must match the format (e.g. C001, A001)",
	},
	"amount": {
		RuleAmountMin: "amount must be a number greater than or equal to 0.01",
		RuleAmountMax: "amount cannot exceed 1,000,000",
	},
	"type": {
		"oneof": `type must be "credit" or "debit"`,
	},
	"description": {
		"max": "description cannot exceed 500 characters",
	},
}

func messageFor(field, rule string) string {
	if msg, ok := fieldMessages[field][rule]; ok {
		return msg
	}

	switch rule {
	case "required":
		return field + " is required"
	case RuleIdentifier:
		return field + " must match the format (e.g. A001, C001)"
	default:
		return field + " is invalid"
	}
}
