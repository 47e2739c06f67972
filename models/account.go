// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the closed set of system roles an account can hold.
type Role string

const (
	// RoleStudent is the default role assigned to new accounts.
	RoleStudent Role = "student"

	// RoleTeacher grants access to teaching tools.
	RoleTeacher Role = "teacher"

	// RoleAdmin grants access to the admin panel.
	RoleAdmin Role = "admin"

	// RoleSuperAdmin grants unrestricted access, including admin management.
	RoleSuperAdmin Role = "superadmin"
)

// AllRoles lists every valid [Role] in declaration order.
var AllRoles = []Role{RoleStudent, RoleTeacher, RoleAdmin, RoleSuperAdmin}

// IsValid reports whether r is one of [AllRoles].
func (r Role) IsValid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Account represents a system account used for authentication and access
// control. Personal data is not stored here: it lives in ProfileRecords as
// dynamic key-value pairs.
//
// Account is a persistence-level entity. It MUST NOT be returned to callers
// directly; use [Account.View] to obtain the outward projection.
type Account struct {
	// ID is the UUID of the account, assigned at creation and never changed.
	ID string `json:"-"`

	// Login is the unique authentication identifier.
	// Uniqueness is enforced across soft-deleted rows as well.
	Login string `json:"-"`

	// PasswordHash is the argon2id PHC string of the account password.
	// Never expose or return this field.
	PasswordHash string `json:"-"`

	// Role is the system role of the account.
	Role Role `json:"-"`

	// IsActive is the account status flag (used for bans and suspensions).
	IsActive bool `json:"-"`

	// CreatedAt and UpdatedAt are maintained by the store.
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// DeletedAt marks the account as soft-deleted when non-nil.
	// Soft-deleted accounts are invisible to default lookups.
	DeletedAt *time.Time `json:"-"`

	// ProfileRecords holds the account's dynamic profile fields.
	// Loaded eagerly by account lookups; never used for filtering.
	ProfileRecords []ProfileRecord `json:"-"`
}

// AccountView is the outward-facing projection of an [Account].
// It intentionally has no credential field, so no code path producing an
// AccountView can leak the password hash.
type AccountView struct {
	ID        string    `json:"id"`
	Login     string    `json:"login"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// View projects the account to its outward representation.
func (a Account) View() AccountView {
	return AccountView{
		ID:        a.ID,
		Login:     a.Login,
		Role:      a.Role,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AccountViews projects every account in accounts, preserving order.
func AccountViews(accounts []Account) []AccountView {
	views := make([]AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, account.View())
	}
	return views
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
