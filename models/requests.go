// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Pagination and sorting defaults for account listing.
const (
	DefaultPage      = 1
	DefaultLimit     = 20
	MaxLimit         = 100
	MaxPage          = 1<<31 - 1
	DefaultSortBy    = SortByCreatedAt
	DefaultSortOrder = SortDesc
)

// SortField is a sortable account attribute, named as the API exposes it.
type SortField string

const (
	SortByLogin     SortField = "login"
	SortByRole      SortField = "role"
	SortByIsActive  SortField = "isActive"
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
)

// SortOrder is the ordering direction. Accepted case-insensitively.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// Normalized returns the order in upper case.
func (o SortOrder) Normalized() SortOrder {
	return SortOrder(strings.ToUpper(string(o)))
}

// AccountFilter carries filtering, sorting and pagination parameters for
// account listing. Nil pointer fields mean "no condition".
type AccountFilter struct {
	// Search is matched case-insensitively as a substring of login.
	// Blank values are ignored.
	Search string `json:"search,omitempty"`

	Role     *Role `json:"role,omitempty" validate:"omitnil,role"`
	IsActive *bool `json:"is_active,omitempty"`

	// Page is bounded by [MaxPage] so (Page-1)*[MaxLimit] never overflows.
	Page  int `json:"page" validate:"min=1,max=2147483647"`
	Limit int `json:"limit" validate:"min=1,max=100"`

	SortBy    SortField `json:"sort_by" validate:"oneof=login role isActive createdAt updatedAt"`
	SortOrder SortOrder `json:"sort_order" validate:"sort_order"`
}

// NewAccountFilter returns a filter populated with the listing defaults.
func NewAccountFilter() AccountFilter {
	return AccountFilter{
		Page:      DefaultPage,
		Limit:     DefaultLimit,
		SortBy:    DefaultSortBy,
		SortOrder: DefaultSortOrder,
	}
}

// TrimmedSearch returns Search without surrounding whitespace.
func (f AccountFilter) TrimmedSearch() string {
	return strings.TrimSpace(f.Search)
}

// CreateAccountRequest is the payload used from the admin panel to create a
// new account. Password arrives in plain text and is hashed by the service.
type CreateAccountRequest struct {
	Login    string `json:"login" validate:"required,min=3,max=255"`
	Password string `json:"password" validate:"required,min=8"`

	// Role defaults to [RoleStudent] when nil.
	Role *Role `json:"role,omitempty" validate:"omitnil,role"`

	// IsActive defaults to true when nil.
	IsActive *bool `json:"is_active,omitempty"`
}

// UpdateAccountRequest is a partial account update. Nil fields are left
// unchanged; explicit zero values (false, "student") are applied.
type UpdateAccountRequest struct {
	Login    *string `json:"login,omitempty" validate:"omitnil,min=3,max=255"`
	Password *string `json:"password,omitempty" validate:"omitnil,min=8"`
	Role     *Role   `json:"role,omitempty" validate:"omitnil,role"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// AccountUpdate is the persistence-level form of [UpdateAccountRequest]: the
// plain password has already been replaced by its hash.
type AccountUpdate struct {
	ID           string
	Login        *string
	PasswordHash *string
	Role         *Role
	IsActive     *bool
}

// IsEmpty reports whether the update changes no column.
func (u AccountUpdate) IsEmpty() bool {
	return u.Login == nil && u.PasswordHash == nil && u.Role == nil && u.IsActive == nil
}

// DeleteResult is returned by a successful soft delete.
type DeleteResult struct {
	Success bool `json:"success"`
}
