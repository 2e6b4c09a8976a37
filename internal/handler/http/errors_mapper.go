package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/solar-quote/internal/adapter"
	"github.com/MKhiriev/solar-quote/internal/app"
	"github.com/MKhiriev/solar-quote/internal/service"
)

var errorStatusMap = map[error]int{
	ErrMissingQueryParam: http.StatusBadRequest,
	ErrInvalidQueryParam: http.StatusBadRequest,

	service.ErrInvalidClientData:   http.StatusBadRequest,
	service.ErrTokenNotReceived:    http.StatusBadGateway,
	service.ErrClientIDNotReceived: http.StatusBadGateway,

	adapter.ErrUpstreamStatus:    http.StatusBadGateway,
	adapter.ErrMalformedResponse: http.StatusBadGateway,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

var errorMessageMap = map[int]string{
	http.StatusBadRequest:     app.MsgInvalidDataProvided,
	http.StatusBadGateway:     app.MsgCRMUnavailable,
	http.StatusGatewayTimeout: app.MsgUpstreamTimeout,
}

// statusFromError returns the status mapped to the first sentinel err wraps,
// or fallback.
func statusFromError(err error, fallback int) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return fallback
}

func messageFromStatus(status int) string {
	if msg, ok := errorMessageMap[status]; ok {
		return msg
	}
	return app.MsgInternalServerError
}
