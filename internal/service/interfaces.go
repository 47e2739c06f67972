// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/athena-accounts/models"
)

// AccountService is the account query and mutation engine.
//
// Every method returns exactly one of: a result, [store.ErrAccountNotFound],
// [store.ErrLoginAlreadyExists], an error wrapping [ErrInvalidDataProvided]
// (validation decorator only) or an operation specific generic failure.
type AccountService interface {
	ListAccounts(ctx context.Context, filter models.AccountFilter) (models.Page[models.AccountView], error)
	GetAccount(ctx context.Context, id string) (models.AccountView, error)
	GetAccountProfileRecords(ctx context.Context, id string) ([]models.ProfileRecordView, error)

	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.AccountView, error)
	UpdateAccount(ctx context.Context, id string, req models.UpdateAccountRequest) (models.AccountView, error)
	SoftDeleteAccount(ctx context.Context, id string) (models.DeleteResult, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
