// Package http implements the HTTP transport layer of solar-quote.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API consumed by the simulator front-end. Cross-cutting concerns such as
// request tracing, access logging, response compression and request
// timeouts are handled in this package before requests are delegated to the
// service layer.
package http
