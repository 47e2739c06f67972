// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/athena-accounts/internal/validators"
	"github.com/MKhiriev/athena-accounts/models"
)

// AccountValidationService rejects malformed payloads before they reach the
// wrapped AccountService. Every rejection wraps ErrInvalidDataProvided and
// the validator error.
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &AccountValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *AccountValidationService) ListAccounts(ctx context.Context, filter models.AccountFilter) (models.Page[models.AccountView], error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return models.Page[models.AccountView]{}, invalid(err)
	}

	return v.inner.ListAccounts(ctx, filter)
}

func (v *AccountValidationService) GetAccount(ctx context.Context, id string) (models.AccountView, error) {
	if err := v.validator.Validate(ctx, validators.AccountID(id)); err != nil {
		return models.AccountView{}, invalid(err)
	}

	return v.inner.GetAccount(ctx, id)
}

func (v *AccountValidationService) GetAccountProfileRecords(ctx context.Context, id string) ([]models.ProfileRecordView, error) {
	if err := v.validator.Validate(ctx, validators.AccountID(id)); err != nil {
		return nil, invalid(err)
	}

	return v.inner.GetAccountProfileRecords(ctx, id)
}

func (v *AccountValidationService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.AccountView, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AccountView{}, invalid(err)
	}

	return v.inner.CreateAccount(ctx, req)
}

func (v *AccountValidationService) UpdateAccount(ctx context.Context, id string, req models.UpdateAccountRequest) (models.AccountView, error) {
	if err := v.validator.Validate(ctx, validators.AccountID(id)); err != nil {
		return models.AccountView{}, invalid(err)
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AccountView{}, invalid(err)
	}

	return v.inner.UpdateAccount(ctx, id, req)
}

func (v *AccountValidationService) SoftDeleteAccount(ctx context.Context, id string) (models.DeleteResult, error) {
	if err := v.validator.Validate(ctx, validators.AccountID(id)); err != nil {
		return models.DeleteResult{}, invalid(err)
	}

	return v.inner.SoftDeleteAccount(ctx, id)
}

func (v *AccountValidationService) Wrap(inner AccountService) AccountService {
	v.inner = inner
	return v
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
