// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/athena-accounts/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestAppInfoService_GetAppVersion(t *testing.T) {
	assert.Equal(t, "v1.4.0", NewAppInfoService(config.App{Version: "v1.4.0"}).GetAppVersion(context.Background()))
	assert.Equal(t, unknownVersion, NewAppInfoService(config.App{}).GetAppVersion(context.Background()))
}
