// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/athena-accounts/models"
	"github.com/go-playground/validator/v10"
)

// FieldError is a client facing description of one invalid field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// FieldErrors converts validator failures found in err into [FieldError]s.
// It returns nil when err carries no field-level detail.
func FieldErrors(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		if errors.Is(err, ErrInvalidAccountID) {
			return []FieldError{{Field: "id", Error: "must be a valid UUID"}}
		}
		return nil
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field: fe.Field(),
			Error: message(fe),
		})
	}

	return fieldErrors
}

func roleList() string {
	names := make([]string, len(models.AllRoles))
	for i, r := range models.AllRoles {
		names[i] = string(r)
	}
	return strings.Join(names, " ")
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case tagSortOrder:
		return "must be one of: ASC DESC"
	case tagRole:
		return "must be one of: " + roleList()
	case "uuid":
		return "must be a valid UUID"
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s:%s", fe.Tag(), fe.Param())
		}
		return fe.Tag()
	}
}
