// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/athena-accounts/internal/config"
)

// unknownVersion is reported when no version was configured.
const unknownVersion = "N/A"

type appInfoService struct {
	version string
}

func NewAppInfoService(cfg config.App) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = unknownVersion
	}

	return &appInfoService{version: version}
}

func (a *appInfoService) GetAppVersion(ctx context.Context) string {
	return a.version
}
