// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

const (
	saltBytes = 16
	keyLen    = 64
)

// unknownUserSalt is hashed against when a username is absent, so that the
// response time does not reveal which usernames exist.
const unknownUserSalt = "00000000000000000000000000000000"

// scryptHasher is the private implementation of [PasswordHasher].
type scryptHasher struct {
	// scrypt cost parameters, kept in the struct so tests can lower them.
	n, r, p int
}

// NewPasswordHasher constructs a [PasswordHasher] using scrypt with
// N=16384, r=8, p=1 and a 64-byte key.
func NewPasswordHasher() PasswordHasher {
	return &scryptHasher{n: 16384, r: 8, p: 1}
}

func (s *scryptHasher) GenerateSalt() (string, error) {
	return RandomHex(saltBytes)
}

func (s *scryptHasher) Hash(password, salt string) (string, error) {
	key, err := scrypt.Key([]byte(password), []byte(salt), s.n, s.r, s.p, keyLen)
	if err != nil {
		return "", fmt.Errorf("error deriving password hash: %w", err)
	}
	return hex.EncodeToString(key), nil
}

func (s *scryptHasher) Verify(password, salt, hash string) bool {
	stored, err := hex.DecodeString(hash)
	if err != nil || len(stored) != keyLen {
		// still pay for the derivation
		s.VerifyUnknown(password)
		return false
	}

	derived, err := scrypt.Key([]byte(password), []byte(salt), s.n, s.r, s.p, keyLen)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(derived, stored) == 1
}

func (s *scryptHasher) VerifyUnknown(password string) bool {
	_, _ = scrypt.Key([]byte(password), []byte(unknownUserSalt), s.n, s.r, s.p, keyLen)
	return false
}

// RandomHex reads n bytes from the OS CSPRNG and returns them hex-encoded.
func RandomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
