// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/athena-accounts/models"
	"github.com/go-playground/validator/v10"
)

// AccountID marks a string as an account identifier for [AccountValidator].
type AccountID string

// Custom tags registered on every [AccountValidator].
const (
	tagSortOrder = "sort_order"
	tagRole      = "role"
)

// AccountValidator validates account filters, create and update payloads and
// account identifiers.
//
// The underlying *validator.Validate caches struct metadata and is safe for
// concurrent use.
type AccountValidator struct {
	validate *validator.Validate
}

// NewAccountValidator returns an [AccountValidator] reporting field names by
// their json tag.
func NewAccountValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// RegisterValidation only fails on an empty tag or a nil func.
	_ = validate.RegisterValidation(tagSortOrder, validateSortOrder)
	_ = validate.RegisterValidation(tagRole, validateRole)

	return &AccountValidator{validate: validate}
}

// Validate dispatches on the dynamic type of obj. Supported types are
// [models.AccountFilter], [models.CreateAccountRequest],
// [models.UpdateAccountRequest] (value or pointer) and [AccountID].
//
// When fields are given only those struct fields (Go names) are checked.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AccountFilter:
		return v.validateStruct(value, fields)
	case *models.AccountFilter:
		if value == nil {
			return ErrNilValue
		}
		return v.validateStruct(*value, fields)
	case models.CreateAccountRequest:
		return v.validateStruct(value, fields)
	case *models.CreateAccountRequest:
		if value == nil {
			return ErrNilValue
		}
		return v.validateStruct(*value, fields)
	case models.UpdateAccountRequest:
		return v.validateStruct(value, fields)
	case *models.UpdateAccountRequest:
		if value == nil {
			return ErrNilValue
		}
		return v.validateStruct(*value, fields)
	case AccountID:
		return v.validateAccountID(value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *AccountValidator) validateStruct(value any, fields []string) error {
	if len(fields) > 0 {
		return v.validate.StructPartial(value, fields...)
	}
	return v.validate.Struct(value)
}

func (v *AccountValidator) validateAccountID(id AccountID) error {
	if err := v.validate.Var(string(id), "required,uuid"); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAccountID, string(id))
	}
	return nil
}

// validateSortOrder accepts ASC and DESC in any letter case.
func validateRole(fl validator.FieldLevel) bool {
	return models.Role(fl.Field().String()).IsValid()
}

func validateSortOrder(fl validator.FieldLevel) bool {
	order := models.SortOrder(fl.Field().String()).Normalized()
	return order == models.SortAsc || order == models.SortDesc
}
