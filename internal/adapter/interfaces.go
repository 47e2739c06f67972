// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the athena-accounts HTTP API.
//
// [NewHTTPAccountsClient] talks REST through resty. Error responses are mapped
// by mapHTTPError to the sentinels in errors.go, so callers can use
// [errors.Is] (e.g. [ErrConflict] for 409, [ErrNotFound] for 404) and
// [errors.As] with [*ResponseError] for the server message and field errors.
package adapter

import (
	"context"

	"github.com/MKhiriev/athena-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/accounts_client_mock.go -package=mock

// AccountsClient mirrors the account operations exposed by the server.
type AccountsClient interface {
	// ListAccounts fetches one page of accounts. Zero filter fields are not
	// sent, so the server defaults apply.
	ListAccounts(ctx context.Context, filter models.AccountFilter) (models.Page[models.AccountView], error)

	GetAccount(ctx context.Context, id string) (models.AccountView, error)

	GetAccountProfileRecords(ctx context.Context, id string) ([]models.ProfileRecordView, error)

	// CreateAccount returns the created account. Returns [ErrConflict]
	// (wrapped) when the login is taken.
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.AccountView, error)

	// UpdateAccount applies a partial update. Nil request fields are omitted
	// from the payload and left unchanged by the server.
	UpdateAccount(ctx context.Context, id string, req models.UpdateAccountRequest) (models.AccountView, error)

	SoftDeleteAccount(ctx context.Context, id string) (models.DeleteResult, error)

	// GetServerVersion returns the plain text version reported by the server.
	GetServerVersion(ctx context.Context) (string, error)
}
