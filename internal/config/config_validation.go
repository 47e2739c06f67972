// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies the
// startup invariants: a database DSN and an HTTP address are required.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.Cache.TTL < 0 || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidDurationConfigs
	}

	return nil
}
