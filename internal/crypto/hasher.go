// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters. N/r/p follow the library's recommended interactive-login
// cost; salt and key sizes match the stored "salt.hexkey" format.
const (
	scryptN       = 16384
	scryptR       = 8
	scryptP       = 1
	scryptSaltLen = 8  // 8 random bytes, 16 hex chars in storage
	scryptKeyLen  = 32 // 256-bit derived key
)

// hashSeparator splits the salt from the derived key in the stored value.
const hashSeparator = "."

// scryptHasher is the private implementation of [PasswordHasher].
type scryptHasher struct{}

// NewScryptHasher constructs a [PasswordHasher] backed by scrypt.
//
// The stored format is "salt.hexkey": a 16-character hex salt, a dot, and
// the hex-encoded 32-byte scrypt output. The hasher is stateless and safe
// for concurrent use.
func NewScryptHasher() PasswordHasher {
	return &scryptHasher{}
}

// Hash implements [PasswordHasher]. It draws a fresh salt from the OS
// CSPRNG, derives the key, and returns the combined storage string.
func (h *scryptHasher) Hash(password string) (string, error) {
	saltBytes := make([]byte, scryptSaltLen)
	if _, err := io.ReadFull(rand.Reader, saltBytes); err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}

	salt := hex.EncodeToString(saltBytes)
	key, err := h.deriveKey(password, salt)
	if err != nil {
		return "", err
	}

	return salt + hashSeparator + hex.EncodeToString(key), nil
}

// Verify implements [PasswordHasher].
//
// The comparison uses [subtle.ConstantTimeCompare] so that verification time
// does not depend on how many leading bytes of the candidate hash match.
func (h *scryptHasher) Verify(password, stored string) error {
	salt, storedHex, found := strings.Cut(stored, hashSeparator)
	if !found || salt == "" || storedHex == "" {
		return ErrMalformedHash
	}

	key, err := h.deriveKey(password, salt)
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare([]byte(hex.EncodeToString(key)), []byte(storedHex)) != 1 {
		return ErrHashMismatch
	}

	return nil
}

// deriveKey runs scrypt over the password with the hex-encoded salt.
// The salt is fed to the KDF in its hex string form, matching the way it is
// stored, so that derivation is reproducible from the stored value alone.
func (h *scryptHasher) deriveKey(password, salt string) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("error deriving password key: %w", err)
	}

	return key, nil
}
