package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const maxDetailLength = 256

// classifyError maps a transport error (no response received) to a kind.
func classifyError(err error) ErrorKind {
	var netErr net.Error
	var opErr *net.OpError
	var dnsErr *net.DNSError

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		return KindTimeout
	case errors.As(err, &opErr), errors.As(err, &dnsErr):
		return KindUnavailable
	default:
		return KindInternal
	}
}

// mapHTTPError returns an *UpstreamError for responses with status >= 400.
func mapHTTPError(resp *resty.Response, latency time.Duration) error {
	if resp.StatusCode() < http.StatusBadRequest {
		return nil
	}

	return &UpstreamError{
		Kind:       KindStatus,
		StatusCode: resp.StatusCode(),
		Detail:     upstreamDetail(resp.Body()),
		Latency:    latency,
	}
}

// upstreamDetail extracts {"message"} or {"error"} from a JSON body, or
// falls back to the trimmed raw text.
func upstreamDetail(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	detail := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Message != "":
			detail = payload.Message
		case payload.Error != "":
			detail = payload.Error
		}
	}

	if len(detail) > maxDetailLength {
		detail = detail[:maxDetailLength]
	}
	return detail
}
