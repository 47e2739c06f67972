// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ProfileRecordType is an advisory hint describing how the textual value of a
// [ProfileRecord] should be interpreted by clients. The store never checks
// that Value actually matches the declared type.
type ProfileRecordType string

const (
	ProfileRecordString  ProfileRecordType = "string"
	ProfileRecordNumber  ProfileRecordType = "number"
	ProfileRecordBoolean ProfileRecordType = "boolean"
	ProfileRecordDate    ProfileRecordType = "date"
	ProfileRecordJSON    ProfileRecordType = "json"
)

// ErrProfileValueMismatch is returned by [ProfileValue.Parse] when the raw text
// cannot be decoded as the declared type.
var ErrProfileValueMismatch = errors.New("profile value does not match its data type")

// ProfileRecord is a single named, typed attribute attached to an account.
// The pair (AccountID, Name) is unique.
type ProfileRecord struct {
	ID        string
	AccountID string

	// Name is the field key (e.g. "first_name", "city", "degree").
	Name string

	// Value is the stringified value regardless of DataType.
	Value string

	DataType  ProfileRecordType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileRecordView is the outward projection of a [ProfileRecord].
type ProfileRecordView struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Value     string            `json:"value"`
	DataType  ProfileRecordType `json:"data_type"`

	// Typed is Value decoded according to DataType. It is omitted when the
	// text does not match the declared type.
	Typed any `json:"typed_value,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// View projects the record to its outward representation.
func (r ProfileRecord) View() ProfileRecordView {
	typed, err := r.TypedValue().Parse()
	if err != nil {
		typed = nil
	}
	return ProfileRecordView{
		ID:        r.ID,
		Name:      r.Name,
		Value:     r.Value,
		DataType:  r.DataType,
		Typed:     typed,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// TypedValue returns the record value as a [ProfileValue].
func (r ProfileRecord) TypedValue() ProfileValue {
	return ProfileValue{Type: r.DataType, Raw: r.Value}
}

// TableName returns the name of the database table
// associated with the ProfileRecord model.
func (r ProfileRecord) TableName() string {
	return "profile_records"
}

// ProfileValue is a tagged value: a declared type plus its text encoding.
// The raw text is what gets persisted; Parse recovers the logical value.
type ProfileValue struct {
	Type ProfileRecordType
	Raw  string
}

// Parse decodes Raw according to Type.
//
// Returned dynamic types: string, float64, bool, time.Time, json.RawMessage.
// Dates accept RFC 3339 and plain "2006-01-02". An unknown Type is treated as
// a string, since the type tag is advisory.
func (v ProfileValue) Parse() (any, error) {
	switch v.Type {
	case ProfileRecordNumber:
		number, err := strconv.ParseFloat(v.Raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrProfileValueMismatch, err)
		}
		return number, nil
	case ProfileRecordBoolean:
		flag, err := strconv.ParseBool(v.Raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrProfileValueMismatch, err)
		}
		return flag, nil
	case ProfileRecordDate:
		if date, err := time.Parse(time.RFC3339, v.Raw); err == nil {
			return date, nil
		}
		date, err := time.Parse(time.DateOnly, v.Raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrProfileValueMismatch, err)
		}
		return date, nil
	case ProfileRecordJSON:
		if !json.Valid([]byte(v.Raw)) {
			return nil, ErrProfileValueMismatch
		}
		return json.RawMessage(v.Raw), nil
	default:
		return v.Raw, nil
	}
}
