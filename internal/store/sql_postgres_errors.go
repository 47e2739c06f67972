// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgresError returns the SQLSTATE code of err, or "" when err does not
// originate from PostgreSQL.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// mapAccountWriteError translates an error raised by an INSERT or UPDATE on
// accounts into a store sentinel.
//
//   - unique_violation (23505)  → [ErrLoginAlreadyExists]; the constraint is
//     the final arbiter when two writers pass the existence check together.
//   - no_data_found (P0002) and [sql.ErrNoRows] → [ErrAccountNotFound].
//   - anything else             → wrapped [ErrExecutingStatement].
func mapAccountWriteError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrLoginAlreadyExists
	case pgerrcode.NoDataFound:
		return ErrAccountNotFound
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrAccountNotFound
	}

	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

// mapAccountReadError translates an error raised by a single-row account
// SELECT into a store sentinel.
func mapAccountReadError(err error) error {
	if errors.Is(err, sql.ErrNoRows) || postgresError(err) == pgerrcode.NoDataFound {
		return ErrAccountNotFound
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
