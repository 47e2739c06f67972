// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/athena-accounts/models"
)

// AccountRepository persists accounts together with their profile records.
//
// Every lookup applies the soft-delete default filter (deleted_at IS NULL),
// except login existence checks, which span soft-deleted rows.
type AccountRepository interface {
	// ListAccounts returns one page of accounts matching filter, each with its
	// profile records loaded, plus the number of matching rows ignoring
	// pagination.
	ListAccounts(ctx context.Context, filter models.AccountFilter) ([]models.Account, int, error)

	// FindAccountByID returns the visible account with the given id and its
	// profile records, or [ErrAccountNotFound].
	FindAccountByID(ctx context.Context, id string) (models.Account, error)

	// CreateAccount checks login uniqueness and inserts account atomically.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// UpdateAccount locks the account, re-checks login uniqueness when the
	// login changes and applies the non-nil fields of update atomically.
	UpdateAccount(ctx context.Context, update models.AccountUpdate) (models.Account, error)

	// SoftDeleteAccount stamps deleted_at on a visible account.
	SoftDeleteAccount(ctx context.Context, id string) error
}

// AccountViewCache stores outward account views by account id.
type AccountViewCache interface {
	Get(ctx context.Context, id string) (models.AccountView, error)
	Set(ctx context.Context, view models.AccountView) error
	Delete(ctx context.Context, id string) error
}
