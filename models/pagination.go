// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "math"

// PageMeta describes the position of a page inside a filtered result set.
type PageMeta struct {
	// Total is the number of rows matching the filters, ignoring pagination.
	Total int `json:"total"`

	// Page is the 1-based page number that was requested.
	Page int `json:"page"`

	// Limit is the maximum number of rows per page.
	Limit int `json:"limit"`

	// Pages is ceil(Total / Limit).
	Pages int `json:"pages"`
}

// Page is a generic pagination response wrapper.
type Page[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

// NewPage builds a Page and computes the page count.
func NewPage[T any](data []T, total, page, limit int) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{
		Data: data,
		Meta: PageMeta{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: PageCount(total, limit),
		},
	}
}

// PageCount returns ceil(total / limit). A non-positive limit yields 0.
func PageCount(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Offset returns the number of rows to skip for a 1-based page. A product
// that does not fit in an int saturates at math.MaxInt, which selects no
// rows.
func Offset(page, limit int) int {
	if page < 1 || limit < 1 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}
