// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing HTTP address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidDurationConfigs indicates a negative timeout or TTL.
	ErrInvalidDurationConfigs = errors.New("invalid duration configuration")
	// ErrInvalidClientConfigs indicates a blank client server URL.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
