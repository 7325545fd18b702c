package http

import (
	"net/http"

	"github.com/MKhiriev/cbs-gateway/internal/adapter"
	"github.com/MKhiriev/cbs-gateway/internal/app"
)

var upstreamStatusMessages = map[int]string{
	http.StatusBadRequest:          app.MsgCBSBadRequest,
	http.StatusNotFound:            app.MsgCBSNotFound,
	http.StatusConflict:            app.MsgCBSConflict,
	http.StatusUnprocessableEntity: app.MsgCBSUnprocessed,
	http.StatusServiceUnavailable:  app.MsgCBSUnavailable,
	http.StatusGatewayTimeout:      app.MsgCBSTimeout,
}

var upstreamKindMessages = map[adapter.ErrorKind]string{
	adapter.KindTimeout:     app.MsgCBSTimeout,
	adapter.KindUnavailable: app.MsgCBSUnavailable,
	adapter.KindInternal:    app.MsgCBSInternal,
}

// upstreamFailure maps a failed proxy call to the caller-facing status and
// message. The upstream status is relayed when one was received, otherwise
// the status is 500.
func upstreamFailure(err error) (int, string) {
	uErr, ok := adapter.AsUpstreamError(err)
	if !ok {
		return http.StatusInternalServerError, app.MsgCBSInternal
	}

	status := http.StatusInternalServerError
	if uErr.StatusCode > 0 {
		status = uErr.StatusCode
	}

	if uErr.Kind == adapter.KindStatus {
		if msg, found := upstreamStatusMessages[uErr.StatusCode]; found {
			return status, msg
		}
		return status, app.MsgCBSError
	}

	if msg, found := upstreamKindMessages[uErr.Kind]; found {
		return status, msg
	}
	return status, app.MsgCBSInternal
}
