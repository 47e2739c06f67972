// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

var ErrInvalidQueryParam = errors.New("invalid query parameter")

// ParseBool accepts true/1/yes and false/0/no, ignoring case and
// surrounding whitespace.
func ParseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not a boolean", ErrInvalidQueryParam, value)
	}
}

// QueryBool returns nil when key is absent or blank.
func QueryBool(values url.Values, key string) (*bool, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}

	parsed, err := ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}

	return &parsed, nil
}

// QueryInt returns fallback when key is absent or blank.
func QueryInt(values url.Values, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %q is not an integer", key, ErrInvalidQueryParam, raw)
	}

	return parsed, nil
}
