package adapter

import (
	"errors"
	"fmt"
	"time"
)

// ErrUpstream matches every *UpstreamError through errors.Is.
var ErrUpstream = errors.New("upstream call failed")

// ErrorKind is the closed set of upstream failure classes.
type ErrorKind string

const (
	// KindStatus: the upstream replied with a status >= 400.
	KindStatus ErrorKind = "status"
	// KindTimeout: the configured request timeout expired.
	KindTimeout ErrorKind = "timeout"
	// KindUnavailable: the upstream could not be reached.
	KindUnavailable ErrorKind = "unavailable"
	// KindInternal: anything else, including a cancelled caller.
	KindInternal ErrorKind = "internal"
)

// UpstreamError describes a failed upstream call. Detail and Err are meant
// for server-side logs only.
type UpstreamError struct {
	Kind ErrorKind

	// StatusCode is the upstream status for KindStatus, 0 otherwise.
	StatusCode int

	// Detail is the upstream's own error message, if it sent one.
	Detail string

	Latency time.Duration

	Err error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Kind == KindStatus && e.Detail != "":
		return fmt.Sprintf("upstream responded %d: %s", e.StatusCode, e.Detail)
	case e.Kind == KindStatus:
		return fmt.Sprintf("upstream responded %d", e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("upstream %s: %v", e.Kind, e.Err)
	default:
		return "upstream " + string(e.Kind)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// AsUpstreamError returns the *UpstreamError in err's chain, if any.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var uErr *UpstreamError
	ok := errors.As(err, &uErr)
	return uErr, ok
}
