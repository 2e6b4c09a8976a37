package service

import (
	"fmt"

	"github.com/MKhiriev/solar-quote/internal/adapter"
	"github.com/MKhiriev/solar-quote/internal/config"
	"github.com/MKhiriev/solar-quote/internal/logger"
	"github.com/MKhiriev/solar-quote/internal/store"
	"github.com/MKhiriev/solar-quote/models"
)

type Services struct {
	AddressService AddressService
	QuoteService   QuoteService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, geocoder adapter.GeocoderAdapter, crm adapter.CRMAdapter, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	quoteService := NewQuoteValidationService().Wrap(
		NewQuoteService(crm, storages.TokenStore, cfg.CRM, logger),
	)

	return &Services{
		AddressService: NewAddressService(geocoder, storages.SuggestionCache, cfg.Geocoder, logger),
		QuoteService:   quoteService,
		AppInfoService: appInfoService,
	}, nil
}
