// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/athena-accounts/internal/logger"
	"github.com/MKhiriev/athena-accounts/internal/utils"
	"github.com/MKhiriev/athena-accounts/models"
)

type idGenerator interface {
	Generate() string
}

type accountRepository struct {
	db     *DB
	ids    idGenerator
	logger *logger.Logger
}

// NewAccountRepository returns the PostgreSQL-backed [AccountRepository].
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	return &accountRepository{
		db:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// listTxOptions makes COUNT and SELECT observe the same snapshot.
var listTxOptions = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

func (r *accountRepository) ListAccounts(ctx context.Context, filter models.AccountFilter) ([]models.Account, int, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountAccountsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.ListAccounts").Msg("error building count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	listQuery, listArgs, err := buildListAccountsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.ListAccounts").Msg("error building list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, listTxOptions)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.ListAccounts").Msg("failed to begin transaction")
		return nil, 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var total int
	if err = tx.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "accountRepository.ListAccounts").Msg("error counting accounts")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := tx.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.ListAccounts").Msg("error selecting accounts")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	accounts := make([]models.Account, 0, filter.Limit)
	for rows.Next() {
		account, scanErr := scanAccount(rows)
		if scanErr != nil {
			rows.Close()
			log.Err(scanErr).Str("func", "accountRepository.ListAccounts").Msg("error scanning account row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		accounts = append(accounts, account)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		log.Err(err).Str("func", "accountRepository.ListAccounts").Msg("error iterating account rows")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	rows.Close()

	if err = attachProfileRecords(ctx, tx, accounts); err != nil {
		log.Err(err).Str("func", "accountRepository.ListAccounts").Msg("error loading profile records")
		return nil, 0, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "accountRepository.ListAccounts").Msg("failed to commit transaction")
		return nil, 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return accounts, total, nil
}

func (r *accountRepository) FindAccountByID(ctx context.Context, id string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAccountQuery(id, false)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.FindAccountByID").Msg("error building query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		mapped := mapAccountReadError(err)
		if !errors.Is(mapped, ErrAccountNotFound) {
			log.Err(err).Str("func", "accountRepository.FindAccountByID").Str("id", id).Msg("error selecting account")
		}
		return models.Account{}, mapped
	}

	accounts := []models.Account{account}
	if err = attachProfileRecords(ctx, r.db, accounts); err != nil {
		log.Err(err).Str("func", "accountRepository.FindAccountByID").Str("id", id).Msg("error loading profile records")
		return models.Account{}, err
	}

	return accounts[0], nil
}

func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	if account.ID == "" {
		account.ID = r.ids.Generate()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.CreateAccount").Msg("failed to begin transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	taken, err := loginExists(ctx, tx, account.Login)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.CreateAccount").Str("login", account.Login).Msg("error checking login")
		return models.Account{}, err
	}
	if taken {
		return models.Account{}, ErrLoginAlreadyExists
	}

	query, args, err := buildInsertAccountQuery(account)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.CreateAccount").Msg("error building insert query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanAccount(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		mapped := mapAccountWriteError(err)
		if !errors.Is(mapped, ErrLoginAlreadyExists) {
			log.Err(err).Str("func", "accountRepository.CreateAccount").Str("login", account.Login).Msg("error inserting account")
		}
		return models.Account{}, mapped
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "accountRepository.CreateAccount").Msg("failed to commit transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	created.ProfileRecords = []models.ProfileRecord{}

	return created, nil
}

func (r *accountRepository) UpdateAccount(ctx context.Context, update models.AccountUpdate) (models.Account, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.UpdateAccount").Msg("failed to begin transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	lockQuery, lockArgs, err := buildFindAccountQuery(update.ID, true)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.UpdateAccount").Msg("error building lock query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	current, err := scanAccount(tx.QueryRowContext(ctx, lockQuery, lockArgs...))
	if err != nil {
		mapped := mapAccountReadError(err)
		if !errors.Is(mapped, ErrAccountNotFound) {
			log.Err(err).Str("func", "accountRepository.UpdateAccount").Str("id", update.ID).Msg("error locking account")
		}
		return models.Account{}, mapped
	}

	if update.Login != nil {
		if *update.Login == current.Login {
			update.Login = nil
		} else {
			taken, existsErr := loginExists(ctx, tx, *update.Login)
			if existsErr != nil {
				log.Err(existsErr).Str("func", "accountRepository.UpdateAccount").Str("login", *update.Login).Msg("error checking login")
				return models.Account{}, existsErr
			}
			if taken {
				return models.Account{}, ErrLoginAlreadyExists
			}
		}
	}

	updated := current
	if !update.IsEmpty() {
		query, args, buildErr := buildUpdateAccountQuery(update)
		if buildErr != nil {
			log.Err(buildErr).Str("func", "accountRepository.UpdateAccount").Msg("error building update query")
			return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		updated, err = scanAccount(tx.QueryRowContext(ctx, query, args...))
		if err != nil {
			mapped := mapAccountWriteError(err)
			if !errors.Is(mapped, ErrLoginAlreadyExists) && !errors.Is(mapped, ErrAccountNotFound) {
				log.Err(err).Str("func", "accountRepository.UpdateAccount").Str("id", update.ID).Msg("error updating account")
			}
			return models.Account{}, mapped
		}
	}

	accounts := []models.Account{updated}
	if err = attachProfileRecords(ctx, tx, accounts); err != nil {
		log.Err(err).Str("func", "accountRepository.UpdateAccount").Str("id", update.ID).Msg("error loading profile records")
		return models.Account{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "accountRepository.UpdateAccount").Msg("failed to commit transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return accounts[0], nil
}

func (r *accountRepository) SoftDeleteAccount(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSoftDeleteAccountQuery(id)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.SoftDeleteAccount").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.SoftDeleteAccount").Str("id", id).Msg("error soft deleting account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "accountRepository.SoftDeleteAccount").Str("id", id).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// loginExists reports whether login is held by any account, soft-deleted
// ones included.
func loginExists(ctx context.Context, q queryer, login string) (bool, error) {
	query, args, err := buildLoginExistsQuery(login)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var exists bool
	if err = q.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanAccount reads one row selected with accountColumns or accountReturning.
func scanAccount(row rowScanner) (models.Account, error) {
	var (
		account   models.Account
		role      string
		deletedAt sql.NullTime
	)

	err := row.Scan(
		&account.ID,
		&account.Login,
		&account.PasswordHash,
		&role,
		&account.IsActive,
		&account.CreatedAt,
		&account.UpdatedAt,
		&deletedAt,
	)
	if err != nil {
		return models.Account{}, err
	}

	account.Role = models.Role(role)
	if deletedAt.Valid {
		account.DeletedAt = &deletedAt.Time
	}

	return account, nil
}
