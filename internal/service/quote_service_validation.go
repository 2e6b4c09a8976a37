package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/solar-quote/internal/validators"
	"github.com/MKhiriev/solar-quote/models"
)

// QuoteServiceWrapper defines middleware composition for QuoteService.
// Implementations wrap an existing QuoteService to add behavior such as
// validation.
type QuoteServiceWrapper interface {
	Wrap(QuoteService) QuoteService
}

// QuoteValidationService rejects invalid client data before it reaches the
// wrapped QuoteService.
type QuoteValidationService struct {
	QuoteService
	validator validators.Validator
}

func NewQuoteValidationService() QuoteServiceWrapper {
	return &QuoteValidationService{
		validator: validators.NewClientDataValidator(),
	}
}

// RegisterClientAndCreateQuote returns an error wrapping both
// [ErrInvalidClientData] and validators.FieldErrors when data is invalid.
func (v *QuoteValidationService) RegisterClientAndCreateQuote(ctx context.Context, data models.ClientData) (models.QuoteResult, error) {
	if err := v.validator.Validate(ctx, data); err != nil {
		return models.QuoteResult{}, fmt.Errorf("%w: %w", ErrInvalidClientData, err)
	}

	return v.QuoteService.RegisterClientAndCreateQuote(ctx, data)
}

func (v *QuoteValidationService) Wrap(inner QuoteService) QuoteService {
	v.QuoteService = inner
	return v
}
