// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/athena-accounts/internal/logger"
	"github.com/MKhiriev/athena-accounts/internal/service"
	"github.com/MKhiriev/athena-accounts/internal/store"
	"github.com/MKhiriev/athena-accounts/internal/utils"
	"github.com/MKhiriev/athena-accounts/internal/validators"
)

// errorStatusMap lists the errors whose message is safe to return to the
// client, with their status. Any other error is answered with a bare 500.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	utils.ErrInvalidQueryParam:     http.StatusBadRequest,
	utils.ErrMalformedJSON:         http.StatusBadRequest,
	utils.ErrEmptyBody:             http.StatusBadRequest,

	store.ErrAccountNotFound:    http.StatusNotFound,
	store.ErrLoginAlreadyExists: http.StatusConflict,

	service.ErrFetchAccountsFailed: http.StatusInternalServerError,
	service.ErrFetchAccountFailed:  http.StatusInternalServerError,
	service.ErrCreateAccountFailed: http.StatusInternalServerError,
	service.ErrUpdateAccountFailed: http.StatusInternalServerError,
	service.ErrDeleteAccountFailed: http.StatusInternalServerError,
}

type errorResponse struct {
	Error  string                  `json:"error"`
	Fields []validators.FieldError `json:"fields,omitempty"`
}

// statusFromError returns the status of the first mapped error err matches
// together with that error. Mapped errors never wrap one another, so the
// map iteration order does not matter.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError answers with the mapped status and a JSON body. Validation
// failures carry field level detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, public := statusFromError(err)
	response := errorResponse{Error: http.StatusText(status)}
	if public != nil {
		response.Error = public.Error()
	}
	if status == http.StatusBadRequest {
		response.Fields = validators.FieldErrors(err)
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	_, _ = utils.WriteJSON(w, response, status)
}
