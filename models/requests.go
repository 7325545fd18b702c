// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
)

var jsonNumber = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// TransactionType is the direction of a single-account transaction.
type TransactionType string

const (
	Credit TransactionType = "credit"
	Debit  TransactionType = "debit"
)

// Amount is a monetary amount as received from the caller. It keeps the raw
// JSON token (quotes removed) so that non-numeric input reaches validation
// instead of failing decoding.
type Amount string

// UnmarshalJSON stores the literal text of any JSON value. Strings are
// unquoted and null becomes the empty amount.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*a = Amount(s)
		return nil
	}
	*a = Amount(b)
	return nil
}

// MarshalJSON emits a JSON number when the amount is numeric and a string
// otherwise.
func (a Amount) MarshalJSON() ([]byte, error) {
	if _, ok := a.Float64(); ok {
		return []byte(a), nil
	}
	return json.Marshal(string(a))
}

// Float64 parses the amount. ok is false unless the amount is written in
// JSON number syntax. Values outside the float64 range come back as ±Inf
// (or zero on underflow) with ok set, so range checks still see them as
// numbers.
func (a Amount) Float64() (float64, bool) {
	if !jsonNumber.MatchString(string(a)) {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(a), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// TransferRequest moves funds between two accounts of the core banking
// simulator.
//
// Struct tags:
//   - validate: go-playground/validator rules applied before forwarding.
//   - sanitize: normalisation applied to the field before validation
//     ("trim" strips surrounding whitespace, "escape" HTML-escapes the value).
type TransferRequest struct {
	// From is the source account identifier (e.g. "A001").
	From string `json:"from" validate:"required,identifier" sanitize:"trim"`

	// To is the destination account identifier (e.g. "A002").
	To string `json:"to" validate:"required,identifier" sanitize:"trim"`

	// Amount accepts both 12.5 and "12.5".
	Amount Amount `json:"amount" validate:"amount_min,amount_max"`

	// Description is an optional free-text note, at most 500 characters
	// after escaping.
	Description string `json:"description,omitempty" validate:"omitempty,max=500" sanitize:"trim,escape"`
}

// TransactionRequest credits or debits a single account.
type TransactionRequest struct {
	AccountNumber string          `json:"accountNumber" validate:"required,identifier" sanitize:"trim"`
	Amount        Amount          `json:"amount" validate:"amount_min,amount_max"`
	Type          TransactionType `json:"type" validate:"oneof=credit debit"`
	Description   string          `json:"description,omitempty" validate:"omitempty,max=500" sanitize:"trim,escape"`
}

// TransactionValidationRequest asks the simulator whether a transaction of
// the given amount could be applied to the account. Unlike
// TransactionRequest it has no upper bound on the amount.
type TransactionValidationRequest struct {
	AccountNumber string `json:"accountNumber" validate:"required,identifier" sanitize:"trim"`
	Amount        Amount `json:"amount" validate:"amount_min"`
}
