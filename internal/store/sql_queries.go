// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	"github.com/MKhiriev/athena-accounts/models"
	sq "github.com/Masterminds/squirrel"
)

// psql renders every query with PostgreSQL positional placeholders ($1, $2, …).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	accountsTable       = models.Account{}.TableName()
	accountsAliased     = accountsTable + " a"
	profileRecordsTable = models.ProfileRecord{}.TableName()
)

// accountColumns is the SELECT list for the aliased accounts table. The order
// must match scanAccount.
var accountColumns = []string{
	"a.id",
	"a.login",
	"a.password_hash",
	"a.role",
	"a.is_active",
	"a.created_at",
	"a.updated_at",
	"a.deleted_at",
}

// accountReturning is the RETURNING clause for INSERT and UPDATE statements.
const accountReturning = "RETURNING id, login, password_hash, role, is_active, created_at, updated_at, deleted_at"

var profileRecordColumns = []string{
	"id",
	"account_id",
	"name",
	"value",
	"data_type",
	"created_at",
	"updated_at",
}

// sortColumns maps the public sort keys to physical columns. Keys outside the
// map fall back to a.created_at.
var sortColumns = map[models.SortField]string{
	models.SortByLogin:     "a.login",
	models.SortByRole:      "a.role",
	models.SortByIsActive:  "a.is_active",
	models.SortByCreatedAt: "a.created_at",
	models.SortByUpdatedAt: "a.updated_at",
}

// notDeleted is the soft-delete default filter.
var notDeleted = sq.Eq{"a.deleted_at": nil}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// sortClause returns the ORDER BY terms for filter. a.id with the same
// direction is appended so that pages stay deterministic on equal sort keys.
func sortClause(filter models.AccountFilter) []string {
	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = sortColumns[models.DefaultSortBy]
	}

	direction := filter.SortOrder.Normalized()
	if direction != models.SortAsc && direction != models.SortDesc {
		direction = models.DefaultSortOrder
	}

	return []string{
		column + " " + string(direction),
		"a.id " + string(direction),
	}
}

// accountFilterConditions returns the optional conditions of filter in fixed
// order: login search, role, active flag. Absent filters contribute nothing.
func accountFilterConditions(filter models.AccountFilter) []sq.Sqlizer {
	conditions := make([]sq.Sqlizer, 0, 3)

	if search := filter.TrimmedSearch(); search != "" {
		conditions = append(conditions, sq.ILike{"a.login": "%" + likeEscaper.Replace(search) + "%"})
	}
	if filter.Role != nil {
		conditions = append(conditions, sq.Eq{"a.role": string(*filter.Role)})
	}
	if filter.IsActive != nil {
		conditions = append(conditions, sq.Eq{"a.is_active": *filter.IsActive})
	}

	return conditions
}

func filteredAccounts(builder sq.SelectBuilder, filter models.AccountFilter) sq.SelectBuilder {
	builder = builder.From(accountsAliased).Where(notDeleted)
	for _, condition := range accountFilterConditions(filter) {
		builder = builder.Where(condition)
	}

	return builder
}

// buildCountAccountsQuery counts the accounts matching filter, ignoring
// pagination.
func buildCountAccountsQuery(filter models.AccountFilter) (string, []any, error) {
	return filteredAccounts(psql.Select("COUNT(*)"), filter).ToSql()
}

// buildListAccountsQuery selects one page of accounts matching filter.
func buildListAccountsQuery(filter models.AccountFilter) (string, []any, error) {
	return filteredAccounts(psql.Select(accountColumns...), filter).
		OrderBy(sortClause(filter)...).
		Limit(uint64(filter.Limit)).
		Offset(uint64(models.Offset(filter.Page, filter.Limit))).
		ToSql()
}

// buildFindAccountQuery selects a visible account by id. With forUpdate the
// row is locked until the surrounding transaction ends.
func buildFindAccountQuery(id string, forUpdate bool) (string, []any, error) {
	builder := psql.Select(accountColumns...).
		From(accountsAliased).
		Where(sq.Eq{"a.id": id}).
		Where(notDeleted)
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	return builder.ToSql()
}

// buildLoginExistsQuery checks whether any account, soft-deleted ones
// included, holds login.
func buildLoginExistsQuery(login string) (string, []any, error) {
	return psql.Select("1").
		Prefix("SELECT EXISTS (").
		From(accountsTable).
		Where(sq.Eq{"login": login}).
		Suffix(")").
		ToSql()
}

func buildInsertAccountQuery(account models.Account) (string, []any, error) {
	return psql.Insert(accountsTable).
		Columns("id", "login", "password_hash", "role", "is_active").
		Values(account.ID, account.Login, account.PasswordHash, string(account.Role), account.IsActive).
		Suffix(accountReturning).
		ToSql()
}

// buildUpdateAccountQuery sets only the non-nil fields of update and always
// refreshes updated_at.
func buildUpdateAccountQuery(update models.AccountUpdate) (string, []any, error) {
	builder := psql.Update(accountsTable)

	if update.Login != nil {
		builder = builder.Set("login", *update.Login)
	}
	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", *update.PasswordHash)
	}
	if update.Role != nil {
		builder = builder.Set("role", string(*update.Role))
	}
	if update.IsActive != nil {
		builder = builder.Set("is_active", *update.IsActive)
	}

	return builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": update.ID}).
		Where(sq.Eq{"deleted_at": nil}).
		Suffix(accountReturning).
		ToSql()
}

func buildSoftDeleteAccountQuery(id string) (string, []any, error) {
	return psql.Update(accountsTable).
		Set("deleted_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"deleted_at": nil}).
		ToSql()
}

// buildProfileRecordsQuery selects the profile records of all accountIDs.
func buildProfileRecordsQuery(accountIDs []string) (string, []any, error) {
	return psql.Select(profileRecordColumns...).
		From(profileRecordsTable).
		Where(sq.Eq{"account_id": accountIDs}).
		OrderBy("account_id", "name").
		ToSql()
}
