// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/athena-accounts/internal/config"
	"github.com/MKhiriev/athena-accounts/internal/handler/http"
	"github.com/MKhiriev/athena-accounts/internal/logger"
	"github.com/MKhiriev/athena-accounts/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.RequestTimeout, logger),
	}, nil
}
