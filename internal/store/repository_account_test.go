// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/athena-accounts/internal/logger"
	"github.com/MKhiriev/athena-accounts/internal/utils"
	"github.com/MKhiriev/athena-accounts/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	accountRowColumns       = []string{"id", "login", "password_hash", "role", "is_active", "created_at", "updated_at", "deleted_at"}
	profileRecordRowColumns = []string{"id", "account_id", "name", "value", "data_type", "created_at", "updated_at"}

	qCount         = regexp.QuoteMeta("SELECT COUNT(*) FROM accounts a")
	qList          = regexp.QuoteMeta("SELECT a.id, a.login")
	qProfile       = regexp.QuoteMeta("FROM profile_records")
	qExists        = regexp.QuoteMeta("SELECT EXISTS (")
	qInsert        = regexp.QuoteMeta("INSERT INTO accounts")
	qLock          = regexp.QuoteMeta("FOR UPDATE")
	qUpdate        = regexp.QuoteMeta("UPDATE accounts SET")
	qSoftDelete    = regexp.QuoteMeta("UPDATE accounts SET deleted_at = NOW()")
	errDatabaseOff = errors.New("connection refused")
)

func newTestAccountRepo(t *testing.T) (*accountRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	repo := &accountRepository{
		db:     &DB{DB: db, logger: l},
		ids:    utils.NewUUIDGenerator(),
		logger: l,
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func accountRow(rows *sqlmock.Rows, id, login string, role models.Role, active bool) *sqlmock.Rows {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return rows.AddRow(id, login, "hash-"+login, string(role), active, now, now, nil)
}

func TestListAccounts_Success(t *testing.T) {
	repo, mock := newTestAccountRepo(t)
	ctx := context.Background()

	filter := models.NewAccountFilter()
	filter.Role = rolePtr(models.RoleStudent)
	filter.Page = 2
	filter.Limit = 2

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(qCount).
		WithArgs("student").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	rows := sqlmock.NewRows(accountRowColumns)
	accountRow(rows, "id-3", "carol", models.RoleStudent, true)
	mock.ExpectQuery(qList).
		WithArgs("student").
		WillReturnRows(rows)
	mock.ExpectQuery(qProfile).
		WithArgs("id-3").
		WillReturnRows(sqlmock.NewRows(profileRecordRowColumns).
			AddRow("r-1", "id-3", "age", "21", "number", now, now))
	mock.ExpectCommit()

	accounts, total, err := repo.ListAccounts(ctx, filter)
	require.NoError(t, err)

	assert.Equal(t, 3, total)
	require.Len(t, accounts, 1)
	assert.Equal(t, "carol", accounts[0].Login)
	assert.Equal(t, models.RoleStudent, accounts[0].Role)
	assert.Nil(t, accounts[0].DeletedAt)
	require.Len(t, accounts[0].ProfileRecords, 1)
	assert.Equal(t, models.ProfileRecordNumber, accounts[0].ProfileRecords[0].DataType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAccounts_EmptyPageSkipsProfileRecords(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(qCount).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(qList).WillReturnRows(sqlmock.NewRows(accountRowColumns))
	mock.ExpectCommit()

	accounts, total, err := repo.ListAccounts(context.Background(), models.NewAccountFilter())
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.NotNil(t, accounts)
	assert.Empty(t, accounts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAccounts_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "begin fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errDatabaseOff)
			},
			wantErr: ErrBeginningTransaction,
		},
		{
			name: "count fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(qCount).WillReturnError(errDatabaseOff)
				mock.ExpectRollback()
			},
			wantErr: ErrExecutingQuery,
		},
		{
			name: "list fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(qCount).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectQuery(qList).WillReturnError(errDatabaseOff)
				mock.ExpectRollback()
			},
			wantErr: ErrExecutingQuery,
		},
		{
			name: "row iteration fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(qCount).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				rows := accountRow(sqlmock.NewRows(accountRowColumns), "id-1", "ann", models.RoleAdmin, true).
					RowError(0, errDatabaseOff)
				mock.ExpectQuery(qList).WillReturnRows(rows)
				mock.ExpectRollback()
			},
			wantErr: ErrScanningRows,
		},
		{
			name: "profile records fail",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(qCount).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectQuery(qList).WillReturnRows(
					accountRow(sqlmock.NewRows(accountRowColumns), "id-1", "ann", models.RoleAdmin, true))
				mock.ExpectQuery(qProfile).WillReturnError(errDatabaseOff)
				mock.ExpectRollback()
			},
			wantErr: ErrExecutingQuery,
		},
		{
			name: "commit fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(qCount).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectQuery(qList).WillReturnRows(sqlmock.NewRows(accountRowColumns))
				mock.ExpectCommit().WillReturnError(errDatabaseOff)
			},
			wantErr: ErrCommitingTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestAccountRepo(t)
			tt.setup(mock)

			accounts, total, err := repo.ListAccounts(context.Background(), models.NewAccountFilter())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, accounts)
			assert.Zero(t, total)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindAccountByID(t *testing.T) {
	t.Run("found with records", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)
		now := time.Now()

		mock.ExpectQuery(qList).
			WithArgs("id-1").
			WillReturnRows(accountRow(sqlmock.NewRows(accountRowColumns), "id-1", "ann", models.RoleTeacher, true))
		mock.ExpectQuery(qProfile).
			WithArgs("id-1").
			WillReturnRows(sqlmock.NewRows(profileRecordRowColumns).
				AddRow("r-1", "id-1", "bio", "hello", "string", now, now).
				AddRow("r-2", "id-1", "born", "2000-01-01", "date", now, now))

		account, err := repo.FindAccountByID(context.Background(), "id-1")
		require.NoError(t, err)
		assert.Equal(t, "ann", account.Login)
		assert.Len(t, account.ProfileRecords, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)

		mock.ExpectQuery(qList).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(accountRowColumns))

		_, err := repo.FindAccountByID(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrAccountNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)

		mock.ExpectQuery(qList).WillReturnError(errDatabaseOff)

		_, err := repo.FindAccountByID(context.Background(), "id-1")
		assert.ErrorIs(t, err, ErrExecutingQuery)
		assert.NotErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestCreateAccount_Success(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	account := models.Account{
		Login:        "ann",
		PasswordHash: "hash-ann",
		Role:         models.RoleStudent,
		IsActive:     true,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(qExists).
		WithArgs("ann").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(qInsert).
		WithArgs(sqlmock.AnyArg(), "ann", "hash-ann", "student", true).
		WillReturnRows(accountRow(sqlmock.NewRows(accountRowColumns), "generated", "ann", models.RoleStudent, true))
	mock.ExpectCommit()

	created, err := repo.CreateAccount(context.Background(), account)
	require.NoError(t, err)
	assert.Equal(t, "generated", created.ID)
	assert.Equal(t, "hash-ann", created.PasswordHash)
	assert.NotNil(t, created.ProfileRecords)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccount_LoginTaken(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(qExists).
		WithArgs("ann").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err := repo.CreateAccount(context.Background(), models.Account{Login: "ann"})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccount_UniqueViolationIsConflict(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(qExists).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(qInsert).WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, err := repo.CreateAccount(context.Background(), models.Account{Login: "ann"})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccount_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "begin fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errDatabaseOff)
			},
			wantErr: ErrBeginningTransaction,
		},
		{
			name: "exists check fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(qExists).WillReturnError(errDatabaseOff)
				mock.ExpectRollback()
			},
			wantErr: ErrExecutingQuery,
		},
		{
			name: "insert fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(qExists).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectQuery(qInsert).WillReturnError(pgError(pgerrcode.CheckViolation))
				mock.ExpectRollback()
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name: "commit fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(qExists).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectQuery(qInsert).WillReturnRows(
					accountRow(sqlmock.NewRows(accountRowColumns), "id-1", "ann", models.RoleStudent, true))
				mock.ExpectCommit().WillReturnError(errDatabaseOff)
			},
			wantErr: ErrCommitingTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestAccountRepo(t)
			tt.setup(mock)

			_, err := repo.CreateAccount(context.Background(), models.Account{Login: "ann"})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, ErrLoginAlreadyExists)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateAccount_ChangesLogin(t *testing.T) {
	repo, mock := newTestAccountRepo(t)
	login := "bob"

	mock.ExpectBegin()
	mock.ExpectQuery(qLock).
		WithArgs("id-1").
		WillReturnRows(accountRow(sqlmock.NewRows(accountRowColumns), "id-1", "ann", models.RoleStudent, true))
	mock.ExpectQuery(qExists).
		WithArgs("bob").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(qUpdate).
		WithArgs("bob", "id-1").
		WillReturnRows(accountRow(sqlmock.NewRows(accountRowColumns), "id-1", "bob", models.RoleStudent, true))
	mock.ExpectQuery(qProfile).
		WithArgs("id-1").
		WillReturnRows(sqlmock.NewRows(profileRecordRowColumns))
	mock.ExpectCommit()

	updated, err := repo.UpdateAccount(context.Background(), models.AccountUpdate{ID: "id-1", Login: &login})
	require.NoError(t, err)
	assert.Equal(t, "bob", updated.Login)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAccount_SameLoginSkipsExistsCheck(t *testing.T) {
	repo, mock := newTestAccountRepo(t)
	login := "ann"

	mock.ExpectBegin()
	mock.ExpectQuery(qLock).
		WithArgs("id-1").
		WillReturnRows(accountRow(sqlmock.NewRows(accountRowColumns), "id-1", "ann", models.RoleStudent, true))
	mock.ExpectQuery(qUpdate).
		WithArgs(false, "id-1").
		WillReturnRows(accountRow(sqlmock.NewRows(accountRowColumns), "id-1", "ann", models.RoleStudent, false))
	mock.ExpectQuery(qProfile).WillReturnRows(sqlmock.NewRows(profileRecordRowColumns))
	mock.ExpectCommit()

	updated, err := repo.UpdateAccount(context.Background(), models.AccountUpdate{
		ID:       "id-1",
		Login:    &login,
		IsActive: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAccount_EmptyPatchReturnsCurrent(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(qLock).
		WithArgs("id-1").
		WillReturnRows(accountRow(sqlmock.NewRows(accountRowColumns), "id-1", "ann", models.RoleAdmin, true))
	mock.ExpectQuery(qProfile).WillReturnRows(sqlmock.NewRows(profileRecordRowColumns))
	mock.ExpectCommit()

	updated, err := repo.UpdateAccount(context.Background(), models.AccountUpdate{ID: "id-1"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAccount_Errors(t *testing.T) {
	login := "bob"

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "account missing",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(qLock).WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			wantErr: ErrAccountNotFound,
		},
		{
			name: "login taken",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(qLock).WillReturnRows(
					accountRow(sqlmock.NewRows(accountRowColumns), "id-1", "ann", models.RoleStudent, true))
				mock.ExpectQuery(qExists).WithArgs("bob").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectRollback()
			},
			wantErr: ErrLoginAlreadyExists,
		},
		{
			name: "unique violation on update",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(qLock).WillReturnRows(
					accountRow(sqlmock.NewRows(accountRowColumns), "id-1", "ann", models.RoleStudent, true))
				mock.ExpectQuery(qExists).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectQuery(qUpdate).WillReturnError(pgError(pgerrcode.UniqueViolation))
				mock.ExpectRollback()
			},
			wantErr: ErrLoginAlreadyExists,
		},
		{
			name: "lock fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(qLock).WillReturnError(errDatabaseOff)
				mock.ExpectRollback()
			},
			wantErr: ErrExecutingQuery,
		},
		{
			name: "update fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(qLock).WillReturnRows(
					accountRow(sqlmock.NewRows(accountRowColumns), "id-1", "ann", models.RoleStudent, true))
				mock.ExpectQuery(qExists).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectQuery(qUpdate).WillReturnError(errDatabaseOff)
				mock.ExpectRollback()
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name: "begin fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errDatabaseOff)
			},
			wantErr: ErrBeginningTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestAccountRepo(t)
			tt.setup(mock)

			_, err := repo.UpdateAccount(context.Background(), models.AccountUpdate{ID: "id-1", Login: &login})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSoftDeleteAccount(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)
		mock.ExpectExec(qSoftDelete).
			WithArgs("id-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SoftDeleteAccount(context.Background(), "id-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing or already deleted", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)
		mock.ExpectExec(qSoftDelete).
			WithArgs("id-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.SoftDeleteAccount(context.Background(), "id-1"), ErrAccountNotFound)
	})

	t.Run("exec fails", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)
		mock.ExpectExec(qSoftDelete).WillReturnError(errDatabaseOff)

		err := repo.SoftDeleteAccount(context.Background(), "id-1")
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.NotErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("rows affected fails", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)
		mock.ExpectExec(qSoftDelete).WillReturnResult(sqlmock.NewErrorResult(errDatabaseOff))

		assert.ErrorIs(t, repo.SoftDeleteAccount(context.Background(), "id-1"), ErrExecutingStatement)
	})
}

func TestMapAccountErrors(t *testing.T) {
	assert.ErrorIs(t, mapAccountWriteError(pgError(pgerrcode.UniqueViolation)), ErrLoginAlreadyExists)
	assert.ErrorIs(t, mapAccountWriteError(sql.ErrNoRows), ErrAccountNotFound)
	assert.ErrorIs(t, mapAccountWriteError(errDatabaseOff), ErrExecutingStatement)
	assert.ErrorIs(t, mapAccountReadError(sql.ErrNoRows), ErrAccountNotFound)
	assert.ErrorIs(t, mapAccountReadError(errDatabaseOff), ErrExecutingQuery)
	assert.Empty(t, postgresError(errDatabaseOff))
}
