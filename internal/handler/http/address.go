// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/solar-quote/internal/app"
	"github.com/MKhiriev/solar-quote/internal/logger"
	"github.com/MKhiriev/solar-quote/internal/utils"
	"github.com/MKhiriev/solar-quote/internal/validators"
	"github.com/MKhiriev/solar-quote/models"
)

// getSuggestions answers GET /api/address/suggestions?q=. The response is
// always 200 with a JSON array, empty when the lookup was skipped or failed.
func (h *Handler) getSuggestions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	query := r.URL.Query().Get("q")

	result := h.services.AddressService.Lookup(r.Context(), query)

	log.Debug().
		Str("outcome", string(result.Outcome)).
		Int("features", len(result.Features)).
		Msg("address suggestions served")

	utils.WriteJSON(w, result.Features, http.StatusOK)
}

// validateAddress answers POST /api/address/validate. Invalid addresses are
// reported with 200 and valid == false; only undecodable bodies get 400.
func (h *Handler) validateAddress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AddressValidationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	err := h.services.AddressService.CheckAddress(r.Context(), req)
	if err == nil {
		utils.WriteJSON(w, models.AddressValidationResponse{Valid: true}, http.StatusOK)
		return
	}

	var fieldErrs validators.FieldErrors
	if !errors.As(err, &fieldErrs) {
		log.Err(err).Msg("unexpected error occurred during address validation")
		utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AddressValidationResponse{Valid: false, Errors: fieldErrs.Messages()}, http.StatusOK)
}

// getFallbackCoordinates answers GET /api/address/fallback?city=.
func (h *Handler) getFallbackCoordinates(w http.ResponseWriter, r *http.Request) {
	coordinates, matched := h.services.AddressService.FallbackCoordinates(r.URL.Query().Get("city"))

	utils.WriteJSON(w, models.FallbackCoordinatesResponse{
		Coordinates: coordinates,
		Matched:     matched,
	}, http.StatusOK)
}
