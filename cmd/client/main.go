// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/athena-accounts/internal/adapter"
	"github.com/MKhiriev/athena-accounts/internal/client"
	"github.com/MKhiriev/athena-accounts/internal/config"
	"github.com/MKhiriev/athena-accounts/internal/logger"
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.New("athena-accounts-client", os.Stderr, logger.ParseLevel(cfg.LogLevel))

	accounts := adapter.NewHTTPAccountsClient(adapter.HTTPClientConfig{
		BaseURL: cfg.ServerURL,
		Timeout: cfg.Timeout,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = client.NewApp(accounts, os.Stdout, log).Run(ctx, os.Args[1:]); err != nil {
		printError(err)
		stop()
		os.Exit(1)
	}
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)

	var responseErr *adapter.ResponseError
	if errors.As(err, &responseErr) {
		for _, field := range responseErr.Fields {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field.Field, field.Error)
		}
	}
}
