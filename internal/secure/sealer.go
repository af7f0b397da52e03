// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package secure

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// sealedPrefix marks a sealed value: SEALED:base64(nonce|ciphertext|tag).
	sealedPrefix = "SEALED:"

	// pbkdf2Iterations follows NIST SP 800-132 guidance for PBKDF2-SHA-256.
	pbkdf2Iterations = 600_000

	// derivedKeySize is the AES-256 key size.
	derivedKeySize = 32
)

var (
	// ErrNotSealed indicates the value lacks the sealed marker.
	ErrNotSealed = errors.New("value is not sealed")

	// ErrOpenFailed indicates authentication failure: wrong key material
	// or a tampered record.
	ErrOpenFailed = errors.New("failed to open sealed value")
)

// Sealer encrypts and decrypts short string records with AES-256-GCM.
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer derives the sealing key from the keystore's master secret.
func NewSealer(ks *FileKeyStore) (*Sealer, error) {
	key, salt, err := ks.LoadOrCreate()
	if err != nil {
		return nil, err
	}
	defer zeroBytes(key)

	derived := pbkdf2.Key(key, salt, pbkdf2Iterations, derivedKeySize, sha256.New)
	defer zeroBytes(derived)

	block, err := aes.NewCipher(derived)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM cipher: %w", err)
	}
	return &Sealer{aead: aead}, nil
}

// Seal encrypts plaintext and returns the marked, base64-encoded record.
func (s *Sealer) Seal(plaintext string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	sealed := s.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return sealedPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// Open decrypts a value produced by Seal.
func (s *Sealer) Open(value string) (string, error) {
	if !strings.HasPrefix(value, sealedPrefix) {
		return "", ErrNotSealed
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(value, sealedPrefix))
	if err != nil {
		return "", ErrOpenFailed
	}
	if len(raw) < s.aead.NonceSize() {
		return "", ErrOpenFailed
	}
	nonce, ciphertext := raw[:s.aead.NonceSize()], raw[s.aead.NonceSize():]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrOpenFailed
	}
	return string(plaintext), nil
}

// zeroBytes overwrites key material after use.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
