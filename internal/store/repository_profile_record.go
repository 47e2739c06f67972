// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/athena-accounts/models"
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// attachProfileRecords loads the profile records of every account in one
// query and assigns them in place. Accounts without records get an empty,
// non-nil slice.
func attachProfileRecords(ctx context.Context, q queryer, accounts []models.Account) error {
	if len(accounts) == 0 {
		return nil
	}

	ids := make([]string, 0, len(accounts))
	for _, account := range accounts {
		ids = append(ids, account.ID)
	}

	records, err := loadProfileRecords(ctx, q, ids)
	if err != nil {
		return err
	}

	for i := range accounts {
		accounts[i].ProfileRecords = records[accounts[i].ID]
		if accounts[i].ProfileRecords == nil {
			accounts[i].ProfileRecords = []models.ProfileRecord{}
		}
	}

	return nil
}

// loadProfileRecords returns profile records grouped by account id, each
// group ordered by name.
func loadProfileRecords(ctx context.Context, q queryer, accountIDs []string) (map[string][]models.ProfileRecord, error) {
	query, args, err := buildProfileRecordsQuery(accountIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	grouped := make(map[string][]models.ProfileRecord, len(accountIDs))
	for rows.Next() {
		var (
			record   models.ProfileRecord
			dataType string
		)
		if err = rows.Scan(
			&record.ID,
			&record.AccountID,
			&record.Name,
			&record.Value,
			&dataType,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		record.DataType = models.ProfileRecordType(dataType)
		grouped[record.AccountID] = append(grouped[record.AccountID], record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return grouped, nil
}
