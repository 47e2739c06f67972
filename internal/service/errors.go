// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// Generic operation failures. They never wrap the underlying cause; the
	// cause is logged at the point where it is replaced.
	ErrFetchAccountsFailed = errors.New("failed to fetch accounts")
	ErrFetchAccountFailed  = errors.New("failed to fetch account")
	ErrCreateAccountFailed = errors.New("failed to create account")
	ErrUpdateAccountFailed = errors.New("failed to update account")
	ErrDeleteAccountFailed = errors.New("failed to delete account")
)
