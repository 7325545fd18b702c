package adapter

import (
	"context"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// HeaderResponseTime carries the upstream round-trip time in milliseconds on
// the resty response.
const HeaderResponseTime = "X-Response-Time"

type requestStartKey struct{}

// stampStart records when the outbound request started.
func stampStart(_ *resty.Client, req *resty.Request) error {
	req.SetContext(context.WithValue(req.Context(), requestStartKey{}, time.Now()))
	return nil
}

// recordElapsed attaches the elapsed time to every received response,
// whatever its status.
func recordElapsed(_ *resty.Client, resp *resty.Response) error {
	resp.Header().Set(HeaderResponseTime, strconv.FormatInt(elapsed(resp.Request).Milliseconds(), 10))
	return nil
}

// elapsed returns the time since stampStart ran for req, or 0 when it never
// did.
func elapsed(req *resty.Request) time.Duration {
	if req == nil {
		return 0
	}
	start, ok := req.Context().Value(requestStartKey{}).(time.Time)
	if !ok {
		return 0
	}
	return time.Since(start)
}
