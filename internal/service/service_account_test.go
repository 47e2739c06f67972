// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/athena-accounts/internal/logger"
	"github.com/MKhiriev/athena-accounts/internal/mock"
	"github.com/MKhiriev/athena-accounts/internal/store"
	"github.com/MKhiriev/athena-accounts/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errStoreDown = errors.New("pq: connection reset by peer")

func newTestAccountSvc(t *testing.T) (*accountService, *mock.MockAccountRepository, *mock.MockPasswordHasher) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mock.NewMockAccountRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewAccountService(repo, hasher, logger.Nop()).(*accountService)
	return svc, repo, hasher
}

// logCtx returns a context carrying a logger that writes into buf.
func logCtx(buf *bytes.Buffer) context.Context {
	l := logger.New("test", buf, zerolog.DebugLevel)
	return l.WithContext(context.Background())
}

func strPtr(s string) *string { return &s }

func rolePtr(r models.Role) *models.Role { return &r }

func boolPtr(b bool) *bool { return &b }

func testAccount(id, login string) models.Account {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return models.Account{
		ID:           id,
		Login:        login,
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA",
		Role:         models.RoleStudent,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ── ListAccounts ─────────────────────────────────────────────────────────────

func TestAccountService_ListAccounts_Success(t *testing.T) {
	svc, repo, _ := newTestAccountSvc(t)
	ctx := context.Background()

	filter := models.NewAccountFilter()
	filter.Limit = 10
	filter.Page = 3

	repo.EXPECT().ListAccounts(ctx, filter).
		Return([]models.Account{testAccount("id-1", "ann"), testAccount("id-2", "bob")}, 22, nil)

	page, err := svc.ListAccounts(ctx, filter)
	require.NoError(t, err)

	assert.Len(t, page.Data, 2)
	assert.Equal(t, models.PageMeta{Total: 22, Page: 3, Limit: 10, Pages: 3}, page.Meta)
	assert.Equal(t, "ann", page.Data[0].Login)
}

func TestAccountService_ListAccounts_AppliesDefaults(t *testing.T) {
	svc, repo, _ := newTestAccountSvc(t)
	ctx := context.Background()

	repo.EXPECT().ListAccounts(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, f models.AccountFilter) ([]models.Account, int, error) {
			assert.Equal(t, models.DefaultPage, f.Page)
			assert.Equal(t, models.DefaultLimit, f.Limit)
			assert.Equal(t, models.DefaultSortBy, f.SortBy)
			assert.Equal(t, models.SortAsc, f.SortOrder)
			return nil, 0, nil
		})

	page, err := svc.ListAccounts(ctx, models.AccountFilter{SortOrder: "asc"})
	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, 0, page.Meta.Pages)
}

func TestAccountService_ListAccounts_StoreFaultIsGeneric(t *testing.T) {
	svc, repo, _ := newTestAccountSvc(t)

	var buf bytes.Buffer
	ctx := logCtx(&buf)

	filter := models.NewAccountFilter()
	filter.Search = "ann"
	filter.Role = rolePtr(models.RoleAdmin)

	repo.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).
		Return(nil, 0, fmt.Errorf("%w: %w", store.ErrExecutingQuery, errStoreDown))

	_, err := svc.ListAccounts(ctx, filter)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrFetchAccountsFailed)
	assert.NotErrorIs(t, err, errStoreDown)
	assert.NotContains(t, err.Error(), errStoreDown.Error())

	logged := buf.String()
	assert.Contains(t, logged, errStoreDown.Error())
	assert.Contains(t, logged, `"search":"ann"`)
	assert.Contains(t, logged, `"role":"admin"`)
}

// ── GetAccount / GetAccountProfileRecords ────────────────────────────────────

func TestAccountService_GetAccount(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "found"},
		{name: "not found", repoErr: store.ErrAccountNotFound, wantErr: store.ErrAccountNotFound},
		{name: "store fault", repoErr: errStoreDown, wantErr: ErrFetchAccountFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestAccountSvc(t)
			ctx := context.Background()

			account := testAccount("id-1", "ann")
			if tt.repoErr != nil {
				account = models.Account{}
			}
			repo.EXPECT().FindAccountByID(ctx, "id-1").Return(account, tt.repoErr)

			view, err := svc.GetAccount(ctx, "id-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.NotErrorIs(t, err, errStoreDown)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, account.View(), view)
		})
	}
}

func TestAccountService_GetAccountProfileRecords(t *testing.T) {
	svc, repo, _ := newTestAccountSvc(t)
	ctx := context.Background()

	account := testAccount("id-1", "ann")
	account.ProfileRecords = []models.ProfileRecord{
		{ID: "r-1", AccountID: "id-1", Name: "age", Value: "21", DataType: models.ProfileRecordNumber},
		{ID: "r-2", AccountID: "id-1", Name: "city", Value: "Lyon", DataType: models.ProfileRecordString},
	}
	repo.EXPECT().FindAccountByID(ctx, "id-1").Return(account, nil)

	records, err := svc.GetAccountProfileRecords(ctx, "id-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "age", records[0].Name)
	assert.Equal(t, models.ProfileRecordNumber, records[0].DataType)

	repo.EXPECT().FindAccountByID(ctx, "gone").Return(models.Account{}, store.ErrAccountNotFound)
	_, err = svc.GetAccountProfileRecords(ctx, "gone")
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
}

// ── CreateAccount ────────────────────────────────────────────────────────────

func TestAccountService_CreateAccount_Defaults(t *testing.T) {
	svc, repo, hasher := newTestAccountSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		hasher.EXPECT().Hash("correct-horse").Return("hashed", nil),
		repo.EXPECT().CreateAccount(ctx, models.Account{
			Login:        "ann",
			PasswordHash: "hashed",
			Role:         models.RoleStudent,
			IsActive:     true,
		}).Return(testAccount("id-1", "ann"), nil),
	)

	view, err := svc.CreateAccount(ctx, models.CreateAccountRequest{Login: "ann", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", view.ID)
	assert.Equal(t, models.RoleStudent, view.Role)
	assert.True(t, view.IsActive)
}

func TestAccountService_CreateAccount_ExplicitValues(t *testing.T) {
	svc, repo, hasher := newTestAccountSvc(t)
	ctx := context.Background()

	hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
	repo.EXPECT().CreateAccount(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a models.Account) (models.Account, error) {
			assert.Equal(t, models.RoleTeacher, a.Role)
			assert.False(t, a.IsActive)
			a.ID = "id-1"
			return a, nil
		})

	view, err := svc.CreateAccount(ctx, models.CreateAccountRequest{
		Login:    "ann",
		Password: "correct-horse",
		Role:     rolePtr(models.RoleTeacher),
		IsActive: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, view.IsActive)
}

func TestAccountService_CreateAccount_Errors(t *testing.T) {
	tests := []struct {
		name    string
		hashErr error
		repoErr error
		wantErr error
	}{
		{name: "login taken", repoErr: store.ErrLoginAlreadyExists, wantErr: store.ErrLoginAlreadyExists},
		{name: "store fault", repoErr: fmt.Errorf("%w: %w", store.ErrCommitingTransaction, errStoreDown), wantErr: ErrCreateAccountFailed},
		{name: "hash fault", hashErr: errors.New("entropy exhausted"), wantErr: ErrCreateAccountFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, hasher := newTestAccountSvc(t)
			ctx := context.Background()

			if tt.hashErr != nil {
				hasher.EXPECT().Hash(gomock.Any()).Return("", tt.hashErr)
			} else {
				hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
				repo.EXPECT().CreateAccount(ctx, gomock.Any()).Return(models.Account{}, tt.repoErr)
			}

			_, err := svc.CreateAccount(ctx, models.CreateAccountRequest{Login: "ann", Password: "correct-horse"})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, errStoreDown)
		})
	}
}

func TestAccountService_CreateAccount_LogsNeverContainPassword(t *testing.T) {
	svc, repo, hasher := newTestAccountSvc(t)

	var buf bytes.Buffer
	ctx := logCtx(&buf)

	hasher.EXPECT().Hash("super-secret-password").Return("hashed-secret", nil)
	repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(models.Account{}, errStoreDown)

	_, err := svc.CreateAccount(ctx, models.CreateAccountRequest{Login: "ann", Password: "super-secret-password"})
	require.ErrorIs(t, err, ErrCreateAccountFailed)

	assert.Contains(t, buf.String(), `"login":"ann"`)
	assert.NotContains(t, buf.String(), "super-secret-password")
	assert.NotContains(t, buf.String(), "hashed-secret")
}

func TestAccountService_ViewNeverContainsPassword(t *testing.T) {
	svc, repo, hasher := newTestAccountSvc(t)
	ctx := context.Background()

	account := testAccount("id-1", "ann")
	hasher.EXPECT().Hash(gomock.Any()).Return(account.PasswordHash, nil)
	repo.EXPECT().CreateAccount(ctx, gomock.Any()).Return(account, nil)

	view, err := svc.CreateAccount(ctx, models.CreateAccountRequest{Login: "ann", Password: "correct-horse"})
	require.NoError(t, err)

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), account.PasswordHash)
	assert.NotContains(t, string(raw), "password")
}

// ── UpdateAccount ────────────────────────────────────────────────────────────

func TestAccountService_UpdateAccount_PassesPatchThrough(t *testing.T) {
	svc, repo, hasher := newTestAccountSvc(t)
	ctx := context.Background()

	hasher.EXPECT().Hash("new-password").Return("new-hash", nil)
	repo.EXPECT().UpdateAccount(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.AccountUpdate) (models.Account, error) {
			assert.Equal(t, "id-1", u.ID)
			require.NotNil(t, u.PasswordHash)
			assert.Equal(t, "new-hash", *u.PasswordHash)
			assert.Nil(t, u.Login)
			assert.Nil(t, u.Role)
			require.NotNil(t, u.IsActive)
			assert.False(t, *u.IsActive)

			a := testAccount("id-1", "ann")
			a.IsActive = false
			return a, nil
		})

	view, err := svc.UpdateAccount(ctx, "id-1", models.UpdateAccountRequest{
		Password: strPtr("new-password"),
		IsActive: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, view.IsActive)
}

func TestAccountService_UpdateAccount_UndefinedIsActiveLeftUnchanged(t *testing.T) {
	svc, repo, _ := newTestAccountSvc(t)
	ctx := context.Background()

	repo.EXPECT().UpdateAccount(ctx, models.AccountUpdate{ID: "id-1", Role: rolePtr(models.RoleAdmin)}).
		Return(testAccount("id-1", "ann"), nil)

	_, err := svc.UpdateAccount(ctx, "id-1", models.UpdateAccountRequest{Role: rolePtr(models.RoleAdmin)})
	require.NoError(t, err)
}

func TestAccountService_UpdateAccount_Errors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "not found", repoErr: store.ErrAccountNotFound, wantErr: store.ErrAccountNotFound},
		{name: "login taken", repoErr: store.ErrLoginAlreadyExists, wantErr: store.ErrLoginAlreadyExists},
		{name: "store fault", repoErr: errStoreDown, wantErr: ErrUpdateAccountFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestAccountSvc(t)
			ctx := context.Background()

			repo.EXPECT().UpdateAccount(ctx, gomock.Any()).Return(models.Account{}, tt.repoErr)

			_, err := svc.UpdateAccount(ctx, "id-1", models.UpdateAccountRequest{Login: strPtr("bob")})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, errStoreDown)
		})
	}
}

func TestAccountService_UpdateAccount_HashFault(t *testing.T) {
	svc, _, hasher := newTestAccountSvc(t)

	hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("entropy exhausted"))

	_, err := svc.UpdateAccount(context.Background(), "id-1", models.UpdateAccountRequest{Password: strPtr("new-password")})
	assert.ErrorIs(t, err, ErrUpdateAccountFailed)
}

// ── SoftDeleteAccount ────────────────────────────────────────────────────────

func TestAccountService_SoftDeleteAccount(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		want    models.DeleteResult
		wantErr error
	}{
		{name: "deleted", want: models.DeleteResult{Success: true}},
		{name: "not found", repoErr: store.ErrAccountNotFound, wantErr: store.ErrAccountNotFound},
		{name: "store fault", repoErr: errStoreDown, wantErr: ErrDeleteAccountFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestAccountSvc(t)
			ctx := context.Background()

			repo.EXPECT().SoftDeleteAccount(ctx, "id-1").Return(tt.repoErr)

			got, err := svc.SoftDeleteAccount(ctx, "id-1")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccountService_SoftDeleteThenGetIsNotFound(t *testing.T) {
	svc, repo, _ := newTestAccountSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().SoftDeleteAccount(ctx, "id-1").Return(nil),
		repo.EXPECT().FindAccountByID(ctx, "id-1").Return(models.Account{}, store.ErrAccountNotFound),
	)

	result, err := svc.SoftDeleteAccount(ctx, "id-1")
	require.NoError(t, err)
	assert.True(t, result.Success)

	_, err = svc.GetAccount(ctx, "id-1")
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
}

func Test_withListDefaults(t *testing.T) {
	got := withListDefaults(models.AccountFilter{Limit: 500, SortOrder: "desc"})
	assert.Equal(t, models.MaxLimit, got.Limit)
	assert.Equal(t, models.DefaultPage, got.Page)
	assert.Equal(t, models.SortDesc, got.SortOrder)

	kept := models.AccountFilter{Page: 4, Limit: 7, SortBy: models.SortByLogin, SortOrder: models.SortAsc}
	assert.Equal(t, kept, withListDefaults(kept))

	huge := withListDefaults(models.AccountFilter{Page: 1 << 62, Limit: 20})
	assert.Equal(t, models.MaxPage, huge.Page)
}
