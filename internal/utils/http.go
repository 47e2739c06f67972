// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies read by DecodeJSON.
const maxBodyBytes = 1 << 20

var (
	ErrEmptyBody     = errors.New("request body is empty")
	ErrMalformedJSON = errors.New("malformed JSON")
)

// WriteJSON serializes data and writes it with statusCode and an
// "application/json" content type. When marshaling fails the client gets a
// plain 500 and the wrapped marshal error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON decodes exactly one JSON value from the body of r into dst.
// Bodies above 1 MiB, empty bodies and trailing data are rejected.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}

	if decoder.More() {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrMalformedJSON)
	}

	return nil
}
