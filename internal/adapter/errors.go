package adapter

import "errors"

var (
	// ErrUpstreamStatus is wrapped by every error produced for a non-2xx
	// upstream answer, in addition to the status-specific error below.
	ErrUpstreamStatus = errors.New("upstream returned non-2xx status")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("upstream internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrRateLimited is returned when the outbound limiter has no slot left
	// before the request deadline. It always wraps context.DeadlineExceeded.
	ErrRateLimited = errors.New("outbound rate limit reached")

	// ErrMalformedResponse is returned when a 2xx body cannot be decoded.
	ErrMalformedResponse = errors.New("malformed upstream response")
)
