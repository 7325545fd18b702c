// Package http implements the HTTP transport layer of the gateway.
//
// It exposes route wiring, the proxy-route builder, and the middleware used
// by the REST API. Cross-cutting concerns such as request ids, tracing,
// access logging, panic recovery, gzip and CORS are handled in this package before
// requests are delegated to the service layer.
package http
