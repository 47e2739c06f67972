// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/athena-accounts/internal/validators"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrGatewayTimeout      = errors.New("gateway timeout")
	ErrInternalServerError = errors.New("internal server error")
)

// ResponseError is a non-2xx answer from the server.
type ResponseError struct {
	StatusCode int
	Message    string
	Fields     []validators.FieldError

	sentinel error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.sentinel
}
