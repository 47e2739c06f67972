// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// Package crypto holds the one-way password hashing primitive used by the
// account mutation flow.
package crypto

// PasswordHasher derives salted, memory-hard password hashes.
type PasswordHasher interface {
	// Hash derives a new hash of password using a fresh random salt.
	// The result is self-describing: it embeds the algorithm, its cost
	// parameters and the salt.
	Hash(password string) (string, error)
}
