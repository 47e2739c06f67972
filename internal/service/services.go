// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/athena-accounts/internal/config"
	"github.com/MKhiriev/athena-accounts/internal/crypto"
	"github.com/MKhiriev/athena-accounts/internal/logger"
	"github.com/MKhiriev/athena-accounts/internal/store"
)

// AccountServiceWrapper defines middleware composition for AccountService.
// Implementations wrap an existing AccountService to add behavior such as
// validating or caching.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService // returns a decorated AccountService applying additional behavior
}

type Services struct {
	AccountService AccountService
	AppInfoService AppInfoService
}

// NewServices builds the account service chain:
// validation → cache (when configured) → core.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasher(crypto.ArgonParams{
		Time:    cfg.Security.ArgonTime,
		Memory:  cfg.Security.ArgonMemory,
		Threads: cfg.Security.ArgonThreads,
	})

	accountService := NewAccountService(storages.AccountRepository, hasher, logger)
	if storages.AccountViewCache != nil {
		accountService = NewAccountCacheService(storages.AccountViewCache).Wrap(accountService)
	}

	return &Services{
		AccountService: NewAccountValidationService().Wrap(accountService),
		AppInfoService: NewAppInfoService(cfg.App),
	}
}
