// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// ClientConfig configures the command line client. It is read from the
// environment only.
type ClientConfig struct {
	// ServerURL is the base URL of the accounts API.
	// Env: ATHENA_SERVER_URL
	ServerURL string `env:"ATHENA_SERVER_URL" envDefault:"http://localhost:8080"`

	// Timeout bounds every request made by the client.
	// Env: ATHENA_CLIENT_TIMEOUT
	Timeout time.Duration `env:"ATHENA_CLIENT_TIMEOUT" envDefault:"15s"`

	// LogLevel is the minimum zerolog level of the client logger.
	// Env: ATHENA_CLIENT_LOG_LEVEL
	LogLevel string `env:"ATHENA_CLIENT_LOG_LEVEL" envDefault:"warn"`
}

// GetClientConfig loads the client configuration from the environment.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if cfg.ServerURL == "" {
		return nil, ErrInvalidClientConfigs
	}
	if cfg.Timeout < 0 {
		return nil, ErrInvalidDurationConfigs
	}

	return cfg, nil
}
