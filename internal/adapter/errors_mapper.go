// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/athena-accounts/internal/validators"
	"github.com/go-resty/resty/v2"
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusGatewayTimeout:      ErrGatewayTimeout,
	http.StatusInternalServerError: ErrInternalServerError,
}

type errorBody struct {
	Error  string                  `json:"error"`
	Fields []validators.FieldError `json:"fields"`
}

// mapHTTPError returns nil for 2xx responses and a [*ResponseError]
// otherwise. Bodies that are not JSON are kept verbatim as the message.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	responseErr := &ResponseError{
		StatusCode: resp.StatusCode(),
		sentinel:   statusSentinels[resp.StatusCode()],
	}

	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		responseErr.Message = body.Error
		responseErr.Fields = body.Fields
	} else {
		responseErr.Message = strings.TrimSpace(string(resp.Body()))
	}
	if responseErr.Message == "" {
		responseErr.Message = http.StatusText(resp.StatusCode())
	}

	return responseErr
}
