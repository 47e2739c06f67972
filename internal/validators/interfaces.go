// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks account payloads before they reach the account
// service core.
//
// Structural rules (required fields, lengths, ranges, enum membership) are
// declared as go-playground/validator struct tags on the models; this package
// owns the validator instance, its custom tags and the translation of
// failures into field-level messages.
package validators

import "context"

// Validator validates an input value, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
