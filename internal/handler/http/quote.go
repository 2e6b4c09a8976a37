package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/solar-quote/internal/app"
	"github.com/MKhiriev/solar-quote/internal/logger"
	"github.com/MKhiriev/solar-quote/internal/utils"
	"github.com/MKhiriev/solar-quote/internal/validators"
	"github.com/MKhiriev/solar-quote/models"
)

// validationErrorResponse is written for rejected client data.
type validationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (h *Handler) getCRMStatus(w http.ResponseWriter, r *http.Request) {
	connected := h.services.QuoteService.TestConnection(r.Context())

	utils.WriteJSON(w, models.ConnectionStatus{Connected: connected}, http.StatusOK)
}

func (h *Handler) createQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var data models.ClientData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.QuoteService.RegisterClientAndCreateQuote(ctx, data)
	if err != nil {
		status := statusFromError(err, http.StatusBadGateway)

		var fieldErrs validators.FieldErrors
		if errors.As(err, &fieldErrs) {
			log.Debug().Err(err).Msg("client data rejected")
			utils.WriteJSON(w, validationErrorResponse{
				Error:  app.MsgInvalidClientData,
				Fields: fieldErrs.Messages(),
			}, status)
			return
		}

		log.Err(err).Int("status", status).Msg("quote creation failed")
		utils.WriteError(w, messageFromStatus(status), status)
		return
	}

	log.Info().Int64("client_id", result.ClientID).Msg("quote created")
	utils.WriteJSON(w, result, http.StatusCreated)
}

// getLoginURL answers GET /api/crm/login-url?clientId=&commercialId=&quoteId=.
func (h *Handler) getLoginURL(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	query := r.URL.Query()

	clientID, err := parseID(query.Get("clientId"), true)
	if err != nil {
		log.Err(err).Msg("invalid clientId")
		utils.WriteError(w, fmt.Sprintf("clientId: %s", err), statusFromError(err, http.StatusBadRequest))
		return
	}

	commercialID := query.Get("commercialId")
	if commercialID == "" {
		utils.WriteError(w, fmt.Sprintf("commercialId: %s", ErrMissingQueryParam), http.StatusBadRequest)
		return
	}

	quoteID, err := parseID(query.Get("quoteId"), false)
	if err != nil {
		log.Err(err).Msg("invalid quoteId")
		utils.WriteError(w, fmt.Sprintf("quoteId: %s", err), statusFromError(err, http.StatusBadRequest))
		return
	}

	var quoteIDPtr *int64
	if quoteID != 0 {
		quoteIDPtr = &quoteID
	}

	utils.WriteJSON(w, models.LoginURLResponse{
		URL: h.services.QuoteService.LoginURL(clientID, commercialID, quoteIDPtr),
	}, http.StatusOK)
}

// parseID parses a positive identifier. An empty optional value yields 0.
func parseID(raw string, required bool) (int64, error) {
	if raw == "" {
		if required {
			return 0, ErrMissingQueryParam
		}
		return 0, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 || (required && id == 0) {
		return 0, ErrInvalidQueryParam
	}
	return id, nil
}
