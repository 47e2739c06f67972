// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/athena-accounts/internal/config"
	"github.com/MKhiriev/athena-accounts/internal/handler"
	"github.com/MKhiriev/athena-accounts/internal/logger"
	"github.com/MKhiriev/athena-accounts/internal/server"
	"github.com/MKhiriev/athena-accounts/internal/service"
	"github.com/MKhiriev/athena-accounts/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log := logger.New("athena-accounts", os.Stdout, logger.ParseLevel(cfg.App.LogLevel))
	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Bool("cache_enabled", cfg.Storage.Cache.Address != "").
		Msg("received configs")

	if err := run(context.Background(), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
