// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denteo

// Package password implements salted one-way password hashing and
// verification for user credentials.
//
// Hashing uses Argon2id with a per-user 16-byte salt read from the OS
// CSPRNG, so a leaked credential store exposes neither plaintext passwords
// nor rainbow-table targets. Verification recomputes the digest with the
// stored salt and compares it against the stored digest over ALL bytes in
// constant time, so timing does not correlate with the position of the
// first mismatched byte.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters following the OWASP (2024) recommendation:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024 // 64 MiB
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32 // 256 bits

	saltLen = 16
)

// Hasher derives and verifies salted password digests. The zero value is
// not usable; construct instances with [NewHasher].
type Hasher struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

// NewHasher constructs a [Hasher] with the package-default Argon2id
// parameters. The returned value is safe for concurrent use; it holds no
// mutable state.
func NewHasher() *Hasher {
	return &Hasher{
		time:    argonTime,
		memory:  argonMemory,
		threads: argonThreads,
		keyLen:  argonKeyLen,
	}
}

// Hash derives a salted digest of plaintext.
//
// A fresh 16-byte salt is read from the OS CSPRNG on every call, so two
// hashes of the same password differ. Both return values are hex-encoded
// and sized for direct storage alongside the user record.
//
// Returns:
//
//	hash - hex-encoded 32-byte Argon2id digest
//	salt - hex-encoded 16-byte salt used to derive hash
//	err  - ErrEmptyPassword if plaintext is empty, or a wrapped error if
//	       the CSPRNG read fails
func (h *Hasher) Hash(plaintext string) (hash, salt string, err error) {
	if plaintext == "" {
		return "", "", ErrEmptyPassword
	}

	rawSalt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, rawSalt); err != nil {
		return "", "", fmt.Errorf("error reading salt from CSPRNG: %w", err)
	}

	digest := argon2.IDKey([]byte(plaintext), rawSalt, h.time, h.memory, h.threads, h.keyLen)

	return hex.EncodeToString(digest), hex.EncodeToString(rawSalt), nil
}

// Verify reports whether plaintext is the password whose digest and salt
// were previously produced by [Hasher.Hash].
//
// The recomputed digest is compared against the stored one with
// [subtle.ConstantTimeCompare], which examines every byte regardless of
// where the first difference occurs.
//
// Verify never returns an error: malformed stored material (invalid hex,
// wrong salt or digest length) yields false rather than a panic, so a
// corrupted credential row can never be mistaken for a match nor crash the
// caller.
func (h *Hasher) Verify(plaintext, storedHash, storedSalt string) bool {
	if plaintext == "" {
		return false
	}

	rawSalt, err := hex.DecodeString(storedSalt)
	if err != nil || len(rawSalt) != saltLen {
		return false
	}

	rawHash, err := hex.DecodeString(storedHash)
	if err != nil || len(rawHash) != int(h.keyLen) {
		return false
	}

	digest := argon2.IDKey([]byte(plaintext), rawSalt, h.time, h.memory, h.threads, h.keyLen)

	return subtle.ConstantTimeCompare(digest, rawHash) == 1
}
