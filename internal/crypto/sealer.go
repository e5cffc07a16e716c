// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// ErrCiphertextTooShort is returned by Open for blobs shorter than a nonce.
var ErrCiphertextTooShort = errors.New("ciphertext too short")

// Argon2id parameters used to derive the sealing key from the service
// secret. They follow the OWASP (2024) recommendation.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024 // 64 MiB
	argonThreads = 4
	keyLen       = 32 // AES-256
)

// aesSealer is the AES-256-GCM implementation of [Sealer].
type aesSealer struct {
	aead cipher.AEAD
}

// DeriveKey stretches secret with salt into a 256-bit key using Argon2id.
// The derivation is deterministic, so every replica configured with the same
// SECRET_KEY and ENCRYPTION_SALT reads the others' cache entries.
func DeriveKey(secret, salt string) []byte {
	return argon2.IDKey([]byte(secret), []byte(salt), argonTime, argonMemory, argonThreads, keyLen)
}

// NewSealer builds a [Sealer] keyed by DeriveKey(secret, salt).
func NewSealer(secret, salt string) (Sealer, error) {
	return NewSealerWithKey(DeriveKey(secret, salt))
}

// NewSealerWithKey builds a [Sealer] from a raw 16, 24 or 32 byte key.
func NewSealerWithKey(key []byte) (Sealer, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return &aesSealer{aead: gcm}, nil
}

// Seal implements [Sealer].
func (s *aesSealer) Seal(v any) ([]byte, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal data: %w", err)
	}

	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return s.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open implements [Sealer].
func (s *aesSealer) Open(blob []byte, target any) error {
	nonceSize := s.aead.NonceSize()
	if len(blob) < nonceSize {
		return ErrCiphertextTooShort
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return fmt.Errorf("decrypt data: %w", err)
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	return nil
}
