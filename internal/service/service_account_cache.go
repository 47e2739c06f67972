// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/athena-accounts/internal/logger"
	"github.com/MKhiriev/athena-accounts/internal/store"
	"github.com/MKhiriev/athena-accounts/models"
)

// AccountCacheService serves GetAccount from an AccountViewCache and drops
// the cached view after a successful update or soft delete.
//
// Cache failures are logged and never fail the request.
type AccountCacheService struct {
	inner AccountService
	cache store.AccountViewCache
}

func NewAccountCacheService(cache store.AccountViewCache) AccountServiceWrapper {
	return &AccountCacheService{cache: cache}
}

func (c *AccountCacheService) ListAccounts(ctx context.Context, filter models.AccountFilter) (models.Page[models.AccountView], error) {
	return c.inner.ListAccounts(ctx, filter)
}

func (c *AccountCacheService) GetAccount(ctx context.Context, id string) (models.AccountView, error) {
	log := logger.FromContext(ctx)

	view, err := c.cache.Get(ctx, id)
	if err == nil {
		return view, nil
	}
	if !errors.Is(err, store.ErrCacheMiss) {
		log.Warn().Err(err).Str("func", "AccountCacheService.GetAccount").Str("id", id).Msg("account view cache read failed")
	}

	view, err = c.inner.GetAccount(ctx, id)
	if err != nil {
		return models.AccountView{}, err
	}

	if err = c.cache.Set(ctx, view); err != nil {
		log.Warn().Err(err).Str("func", "AccountCacheService.GetAccount").Str("id", id).Msg("account view cache write failed")
	}

	return view, nil
}

func (c *AccountCacheService) GetAccountProfileRecords(ctx context.Context, id string) ([]models.ProfileRecordView, error) {
	return c.inner.GetAccountProfileRecords(ctx, id)
}

func (c *AccountCacheService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.AccountView, error) {
	return c.inner.CreateAccount(ctx, req)
}

func (c *AccountCacheService) UpdateAccount(ctx context.Context, id string, req models.UpdateAccountRequest) (models.AccountView, error) {
	view, err := c.inner.UpdateAccount(ctx, id, req)
	if err != nil {
		return models.AccountView{}, err
	}

	c.invalidate(ctx, "AccountCacheService.UpdateAccount", id)
	return view, nil
}

func (c *AccountCacheService) SoftDeleteAccount(ctx context.Context, id string) (models.DeleteResult, error) {
	result, err := c.inner.SoftDeleteAccount(ctx, id)
	if err != nil {
		return models.DeleteResult{}, err
	}

	c.invalidate(ctx, "AccountCacheService.SoftDeleteAccount", id)
	return result, nil
}

func (c *AccountCacheService) Wrap(inner AccountService) AccountService {
	c.inner = inner
	return c
}

func (c *AccountCacheService) invalidate(ctx context.Context, funcName, id string) {
	if err := c.cache.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", funcName).Str("id", id).Msg("account view cache invalidation failed")
	}
}
