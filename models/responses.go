package models

// ErrorResponse is the JSON envelope returned for every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NotFoundResponse is returned for routes that are not registered.
type NotFoundResponse struct {
	Error   string `json:"error"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Violation describes one failed validation rule.
type Violation struct {
	// Location is where the value came from: "params", "query" or "body".
	Location string `json:"location"`

	// Field is the JSON or route parameter name of the value.
	Field string `json:"field"`

	// Value is the offending value as received (after sanitisation).
	Value any `json:"value,omitempty"`

	// Message is the human-readable explanation of the failure.
	Message string `json:"message"`

	// Rule is the name of the rule that failed (e.g. "identifier").
	Rule string `json:"rule"`
}

// ValidationErrorResponse is returned with 400 when request validation fails.
type ValidationErrorResponse struct {
	Error   string      `json:"error"`
	Details []Violation `json:"details"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`

	Version string `json:"version"`

	// Uptime is the process uptime in seconds.
	Uptime float64 `json:"uptime"`

	// Upstream is the last known state of the CBS simulator.
	Upstream UpstreamState `json:"upstream"`
}
