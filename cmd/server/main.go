package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/solar-quote/internal/adapter"
	"github.com/MKhiriev/solar-quote/internal/config"
	myHTTP "github.com/MKhiriev/solar-quote/internal/handler/http"
	"github.com/MKhiriev/solar-quote/internal/logger"
	"github.com/MKhiriev/solar-quote/internal/server"
	"github.com/MKhiriev/solar-quote/internal/service"
	"github.com/MKhiriev/solar-quote/internal/store"
	"github.com/MKhiriev/solar-quote/internal/workers"
	"github.com/MKhiriev/solar-quote/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("solar-quote-server", config.DefaultLogLevel).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("solar-quote-server", cfg.App.LogLevel)
	log.Debug().Str("http_address", cfg.Server.HTTPAddress).
		Str("cache_backend", cfg.Cache.Backend).
		Str("token_backend", cfg.Storage.Tokens.Backend).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	geocoder, err := adapter.NewHTTPGeocoderAdapter(cfg.Geocoder, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating geocoder adapter")
	}
	crm, err := adapter.NewHTTPCRMAdapter(cfg.CRM, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating crm adapter")
	}

	services, err := service.NewServices(storages, geocoder, crm, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	backgroundWorkers := workers.NewWorkersFromConfig(cfg, storages.SuggestionCache, services.QuoteService, log)

	handler := myHTTP.NewHandler(services, cfg.Server, log)
	srv, err := server.NewServer(handler, backgroundWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(buildInfo models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(buildInfo.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(buildInfo.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(buildInfo.BuildCommit()))
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
