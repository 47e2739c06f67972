// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// Default argon2id parameters. They match the defaults of the reference
// argon2 bindings so hashes stay interchangeable with existing rows.
const (
	DefaultArgonTime    uint32 = 3
	DefaultArgonMemory  uint32 = 64 * 1024 // 64 MiB
	DefaultArgonThreads uint8  = 4
	DefaultSaltLength   uint32 = 16
	DefaultKeyLength    uint32 = 32
)

// ArgonParams tunes the argon2id cost. Zero fields fall back to the
// Default* constants.
type ArgonParams struct {
	Time    uint32
	Memory  uint32
	Threads uint8
}

// argon2Hasher is the argon2id implementation of [PasswordHasher].
type argon2Hasher struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	saltLength   uint32
	keyLength    uint32

	random io.Reader
}

// NewPasswordHasher constructs an argon2id [PasswordHasher].
func NewPasswordHasher(params ArgonParams) PasswordHasher {
	h := &argon2Hasher{
		argonTime:    DefaultArgonTime,
		argonMemory:  DefaultArgonMemory,
		argonThreads: DefaultArgonThreads,
		saltLength:   DefaultSaltLength,
		keyLength:    DefaultKeyLength,
		random:       rand.Reader,
	}
	if params.Time != 0 {
		h.argonTime = params.Time
	}
	if params.Memory != 0 {
		h.argonMemory = params.Memory
	}
	if params.Threads != 0 {
		h.argonThreads = params.Threads
	}
	return h
}

// Hash implements [PasswordHasher]. The output uses the PHC string format:
//
//	$argon2id$v=19$m=65536,t=3,p=4$<salt b64>$<key b64>
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.saltLength)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.argonTime, h.argonMemory, h.argonThreads, h.keyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.argonMemory,
		h.argonTime,
		h.argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}
