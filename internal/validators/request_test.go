package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/cbs-gateway/models"
)

func validTransfer() *models.TransferRequest {
	return &models.TransferRequest{
		From:   "A001",
		To:     "A002",
		Amount: "100.50",
	}
}

func requireViolations(t *testing.T, err error) []models.Violation {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrValidationFailed)
	v := Violations(err)
	require.NotEmpty(t, v)
	return v
}

// ── TransferRequest ───────────────────────────────────────────────────────────

func TestValidate_Transfer(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name      string
		mutate    func(r *models.TransferRequest)
		wantField string
		wantRule  string
		wantMsg   string
	}{
		{name: "valid", mutate: func(r *models.TransferRequest) {}},
		{name: "minimum amount", mutate: func(r *models.TransferRequest) { r.Amount = "0.01" }},
		{name: "maximum amount", mutate: func(r *models.TransferRequest) { r.Amount = "1000000" }},
		{name: "padded account is trimmed", mutate: func(r *models.TransferRequest) { r.From = "  A001 " }},
		{
			name:      "missing source",
			mutate:    func(r *models.TransferRequest) { r.From = "   " },
			wantField: "from", wantRule: "required", wantMsg: "source account is required",
		},
		{
			name:      "malformed destination",
			mutate:    func(r *models.TransferRequest) { r.To = "a002" },
			wantField: "to", wantRule: RuleIdentifier, wantMsg: "destination account must match the format (e.g. A001)",
		},
		{
			name:      "amount below minimum",
			mutate:    func(r *models.TransferRequest) { r.Amount = "0.001" },
			wantField: "amount", wantRule: RuleAmountMin, wantMsg: "amount must be a number greater than or equal to 0.01",
		},
		{
			name:      "negative amount",
			mutate:    func(r *models.TransferRequest) { r.Amount = "-5" },
			wantField: "amount", wantRule: RuleAmountMin,
		},
		{
			name:      "non numeric amount",
			mutate:    func(r *models.TransferRequest) { r.Amount = "ten" },
			wantField: "amount", wantRule: RuleAmountMin,
		},
		{
			name:      "missing amount",
			mutate:    func(r *models.TransferRequest) { r.Amount = "" },
			wantField: "amount", wantRule: RuleAmountMin,
		},
		{
			name:      "amount above maximum",
			mutate:    func(r *models.TransferRequest) { r.Amount = "1000000.01" },
			wantField: "amount", wantRule: RuleAmountMax, wantMsg: "amount cannot exceed 1,000,000",
		},
		{
			name:      "amount beyond float range",
			mutate:    func(r *models.TransferRequest) { r.Amount = "1e309" },
			wantField: "amount", wantRule: RuleAmountMax, wantMsg: "amount cannot exceed 1,000,000",
		},
		{
			name:      "negative amount beyond float range",
			mutate:    func(r *models.TransferRequest) { r.Amount = "-1e309" },
			wantField: "amount", wantRule: RuleAmountMin,
		},
		{
			name:      "description too long",
			mutate:    func(r *models.TransferRequest) { r.Description = strings.Repeat("x", 501) },
			wantField: "description", wantRule: "max", wantMsg: "description cannot exceed 500 characters",
		},
		{
			name:      "description too long after escaping",
			mutate:    func(r *models.TransferRequest) { r.Description = strings.Repeat("<", 130) },
			wantField: "description", wantRule: "max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validTransfer()
			tt.mutate(req)

			err := v.Validate(context.Background(), req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			violations := requireViolations(t, err)
			require.Len(t, violations, 1)
			assert.Equal(t, LocationBody, violations[0].Location)
			assert.Equal(t, tt.wantField, violations[0].Field)
			assert.Equal(t, tt.wantRule, violations[0].Rule)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, violations[0].Message)
			}
		})
	}
}

func TestValidate_Transfer_ReportsEveryField(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), &models.TransferRequest{})

	violations := requireViolations(t, err)
	fields := make([]string, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, []string{"from", "to", "amount"}, fields)
}

func TestValidate_SanitizesInPlace(t *testing.T) {
	req := validTransfer()
	req.From = " A001\t"
	req.Description = `  <b>rent</b> & "fees"  `

	require.NoError(t, NewRequestValidator().Validate(context.Background(), req))

	assert.Equal(t, "A001", req.From)
	assert.Equal(t, "&lt;b&gt;rent&lt;&#x2F;b&gt; &amp; &quot;fees&quot;", req.Description)
}

// ── TransactionRequest ────────────────────────────────────────────────────────

func TestValidate_Transaction(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name      string
		req       models.TransactionRequest
		wantField string
		wantMsg   string
	}{
		{
			name: "credit",
			req:  models.TransactionRequest{AccountNumber: "A001", Amount: "50", Type: models.Credit},
		},
		{
			name: "debit",
			req:  models.TransactionRequest{AccountNumber: "A001", Amount: "50", Type: models.Debit},
		},
		{
			name:      "unknown type",
			req:       models.TransactionRequest{AccountNumber: "A001", Amount: "50", Type: "refund"},
			wantField: "type", wantMsg: `type must be "credit" or "debit"`,
		},
		{
			name:      "bad account",
			req:       models.TransactionRequest{AccountNumber: "1234", Amount: "50", Type: models.Credit},
			wantField: "accountNumber", wantMsg: "account number must match the format (e.g. A001)",
		},
		{
			name:      "amount above maximum",
			req:       models.TransactionRequest{AccountNumber: "A001", Amount: "2000000", Type: models.Debit},
			wantField: "amount", wantMsg: "amount cannot exceed 1,000,000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			err := v.Validate(context.Background(), &req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			violations := requireViolations(t, err)
			assert.Equal(t, tt.wantField, violations[0].Field)
			assert.Equal(t, tt.wantMsg, violations[0].Message)
		})
	}
}

// ── TransactionValidationRequest ──────────────────────────────────────────────

func TestValidate_TransactionValidation_NoUpperBound(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), &models.TransactionValidationRequest{
		AccountNumber: "A001",
		Amount:        "5000000",
	})
	assert.NoError(t, err)

	err = v.Validate(context.Background(), &models.TransactionValidationRequest{
		AccountNumber: "A001",
		Amount:        "0",
	})
	violations := requireViolations(t, err)
	assert.Equal(t, RuleAmountMin, violations[0].Rule)
}

// ── field scoping and unsupported input ───────────────────────────────────────

func TestValidate_PartialFields(t *testing.T) {
	req := validTransfer()
	req.From = "bad"

	err := NewRequestValidator().Validate(context.Background(), req, "Amount", "To")
	assert.NoError(t, err)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), nil), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), "A001"), ErrUnsupportedType)
}

// ── ValidateParam ─────────────────────────────────────────────────────────────

func TestValidateParam(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name     string
		param    string
		value    string
		want     string
		wantRule string
		wantMsg  string
	}{
		{name: "account", param: "accountNumber", value: "A001", want: "A001"},
		{name: "customer", param: "id", value: "C001", want: "C001"},
		{name: "trimmed", param: "id", value: " C001 ", want: "C001"},
		{name: "empty", param: "accountNumber", value: "  ", wantRule: "required", wantMsg: "account number is required"},
		{name: "lowercase", param: "id", value: "c001", wantRule: RuleIdentifier, wantMsg: "id must match the format (e.g. C001, A001)"},
		{name: "too long", param: "accountNumber", value: "A0001", wantRule: RuleIdentifier},
		{name: "markup", param: "id", value: "<script>", wantRule: RuleIdentifier},
		{name: "path traversal", param: "accountNumber", value: "../A001", wantRule: RuleIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ValidateParam(context.Background(), tt.param, tt.value)
			if tt.wantRule == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			assert.Empty(t, got)
			violations := requireViolations(t, err)
			require.Len(t, violations, 1)
			assert.Equal(t, LocationParams, violations[0].Location)
			assert.Equal(t, tt.param, violations[0].Field)
			assert.Equal(t, tt.wantRule, violations[0].Rule)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, violations[0].Message)
			}
		})
	}
}
