package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version/", h.getServerVersion)

	// address autocomplete and manual entry
	router.Group(func(r chi.Router) {
		r.Get("/api/address/suggestions", h.getSuggestions)
		r.Post("/api/address/validate", h.validateAddress)
		r.Get("/api/address/fallback", h.getFallbackCoordinates)
	})

	// crm
	router.Group(func(r chi.Router) {
		r.Get("/api/crm/status", h.getCRMStatus)
		r.Get("/api/crm/login-url", h.getLoginURL)
		r.Post("/api/quotes", h.createQuote)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
