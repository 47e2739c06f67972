// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/athena-accounts/internal/crypto"
	"github.com/MKhiriev/athena-accounts/internal/logger"
	"github.com/MKhiriev/athena-accounts/internal/store"
	"github.com/MKhiriev/athena-accounts/models"
	"github.com/rs/zerolog"
)

// accountService is the concrete implementation of AccountService.
// It projects stored accounts to their outward views and hashes passwords
// before anything reaches the repository.
type accountService struct {
	// accountRepository is the data-access layer for accounts and their
	// profile records.
	accountRepository store.AccountRepository

	// passwordHasher derives the argon2id hash stored instead of the
	// plain password.
	passwordHasher crypto.PasswordHasher

	logger *logger.Logger
}

// NewAccountService constructs the core AccountService. It assumes payloads
// were already validated; see NewAccountValidationService.
func NewAccountService(accountRepository store.AccountRepository, passwordHasher crypto.PasswordHasher, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		passwordHasher:    passwordHasher,
		logger:            logger,
	}
}

// ListAccounts returns one page of account views matching filter.
//
// Zero pagination and sort fields are replaced with the listing defaults.
// Any repository fault is logged with the filter values and reported as
// ErrFetchAccountsFailed.
func (s *accountService) ListAccounts(ctx context.Context, filter models.AccountFilter) (models.Page[models.AccountView], error) {
	log := logger.FromContext(ctx)
	filter = withListDefaults(filter)

	accounts, total, err := s.accountRepository.ListAccounts(ctx, filter)
	if err != nil {
		log.Err(err).
			Str("func", "accountService.ListAccounts").
			Dict("filter", filterLogDict(filter)).
			Msg("failed to fetch accounts")
		return models.Page[models.AccountView]{}, ErrFetchAccountsFailed
	}

	return models.NewPage(models.AccountViews(accounts), total, filter.Page, filter.Limit), nil
}

// GetAccount returns the view of a visible account or store.ErrAccountNotFound.
func (s *accountService) GetAccount(ctx context.Context, id string) (models.AccountView, error) {
	account, err := s.findAccount(ctx, "accountService.GetAccount", id)
	if err != nil {
		return models.AccountView{}, err
	}

	return account.View(), nil
}

// GetAccountProfileRecords returns the profile records of a visible account
// ordered by name.
func (s *accountService) GetAccountProfileRecords(ctx context.Context, id string) ([]models.ProfileRecordView, error) {
	account, err := s.findAccount(ctx, "accountService.GetAccountProfileRecords", id)
	if err != nil {
		return nil, err
	}

	views := make([]models.ProfileRecordView, 0, len(account.ProfileRecords))
	for _, record := range account.ProfileRecords {
		views = append(views, record.View())
	}

	return views, nil
}

func (s *accountService) findAccount(ctx context.Context, funcName, id string) (models.Account, error) {
	account, err := s.accountRepository.FindAccountByID(ctx, id)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.Account{}, store.ErrAccountNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", funcName).
			Str("id", id).
			Msg("failed to fetch account")
		return models.Account{}, ErrFetchAccountFailed
	}

	return account, nil
}

// CreateAccount hashes the password and persists a new account.
//
// Role defaults to student and IsActive to true. A login held by any
// account, soft-deleted ones included, yields store.ErrLoginAlreadyExists.
func (s *accountService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.AccountView, error) {
	log := logger.FromContext(ctx)

	hash, err := s.passwordHasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "accountService.CreateAccount").Str("login", req.Login).Msg("failed to hash password")
		return models.AccountView{}, ErrCreateAccountFailed
	}

	account := models.Account{
		Login:        req.Login,
		PasswordHash: hash,
		Role:         models.RoleStudent,
		IsActive:     true,
	}
	if req.Role != nil {
		account.Role = *req.Role
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}

	created, err := s.accountRepository.CreateAccount(ctx, account)
	if errors.Is(err, store.ErrLoginAlreadyExists) {
		log.Info().Str("func", "accountService.CreateAccount").Str("login", req.Login).Msg("login already exists")
		return models.AccountView{}, store.ErrLoginAlreadyExists
	}
	if err != nil {
		log.Err(err).
			Str("func", "accountService.CreateAccount").
			Str("login", req.Login).
			Str("role", string(account.Role)).
			Bool("is_active", account.IsActive).
			Msg("failed to create account")
		return models.AccountView{}, ErrCreateAccountFailed
	}

	return created.View(), nil
}

// UpdateAccount applies the non-nil fields of req to the account with id.
//
// A new password is hashed before the repository transaction starts.
// store.ErrAccountNotFound and store.ErrLoginAlreadyExists are returned
// unchanged; every other fault becomes ErrUpdateAccountFailed.
func (s *accountService) UpdateAccount(ctx context.Context, id string, req models.UpdateAccountRequest) (models.AccountView, error) {
	log := logger.FromContext(ctx)

	update := models.AccountUpdate{
		ID:       id,
		Login:    req.Login,
		Role:     req.Role,
		IsActive: req.IsActive,
	}

	if req.Password != nil {
		hash, err := s.passwordHasher.Hash(*req.Password)
		if err != nil {
			log.Err(err).Str("func", "accountService.UpdateAccount").Str("id", id).Msg("failed to hash password")
			return models.AccountView{}, ErrUpdateAccountFailed
		}
		update.PasswordHash = &hash
	}

	updated, err := s.accountRepository.UpdateAccount(ctx, update)
	switch {
	case errors.Is(err, store.ErrAccountNotFound):
		return models.AccountView{}, store.ErrAccountNotFound
	case errors.Is(err, store.ErrLoginAlreadyExists):
		log.Info().Str("func", "accountService.UpdateAccount").Str("id", id).Msg("login already exists")
		return models.AccountView{}, store.ErrLoginAlreadyExists
	case err != nil:
		log.Err(err).
			Str("func", "accountService.UpdateAccount").
			Str("id", id).
			Bool("login_changed", req.Login != nil).
			Bool("password_changed", req.Password != nil).
			Bool("role_changed", req.Role != nil).
			Bool("is_active_changed", req.IsActive != nil).
			Msg("failed to update account")
		return models.AccountView{}, ErrUpdateAccountFailed
	}

	return updated.View(), nil
}

// SoftDeleteAccount marks the account as deleted. Missing and already
// deleted accounts yield store.ErrAccountNotFound.
func (s *accountService) SoftDeleteAccount(ctx context.Context, id string) (models.DeleteResult, error) {
	err := s.accountRepository.SoftDeleteAccount(ctx, id)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.DeleteResult{}, store.ErrAccountNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "accountService.SoftDeleteAccount").
			Str("id", id).
			Msg("failed to delete account")
		return models.DeleteResult{}, ErrDeleteAccountFailed
	}

	return models.DeleteResult{Success: true}, nil
}

// withListDefaults fills zero pagination and sort fields and caps Page and
// Limit.
func withListDefaults(filter models.AccountFilter) models.AccountFilter {
	if filter.Page < 1 {
		filter.Page = models.DefaultPage
	}
	if filter.Page > models.MaxPage {
		filter.Page = models.MaxPage
	}
	if filter.Limit < 1 {
		filter.Limit = models.DefaultLimit
	}
	if filter.Limit > models.MaxLimit {
		filter.Limit = models.MaxLimit
	}
	if filter.SortBy == "" {
		filter.SortBy = models.DefaultSortBy
	}
	filter.SortOrder = filter.SortOrder.Normalized()
	if filter.SortOrder == "" {
		filter.SortOrder = models.DefaultSortOrder
	}

	return filter
}

func filterLogDict(filter models.AccountFilter) *zerolog.Event {
	dict := zerolog.Dict().
		Str("search", filter.Search).
		Int("page", filter.Page).
		Int("limit", filter.Limit).
		Str("sort_by", string(filter.SortBy)).
		Str("sort_order", string(filter.SortOrder))
	if filter.Role != nil {
		dict = dict.Str("role", string(*filter.Role))
	}
	if filter.IsActive != nil {
		dict = dict.Bool("is_active", *filter.IsActive)
	}

	return dict
}
