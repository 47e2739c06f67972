// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType  = errors.New("unsupported type for validation")
	ErrNilValue         = errors.New("nil value given for validation")
	ErrInvalidAccountID = errors.New("invalid account id")
)
