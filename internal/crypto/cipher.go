// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

var (
	// ErrEmptySecret is returned when no key material is configured.
	ErrEmptySecret = errors.New("credential cipher secret is empty")

	// ErrCredentialTampered is returned when a sealed value fails
	// authentication.
	ErrCredentialTampered = errors.New("sealed credential failed authentication")
)

// keySalt separates the credential key from other keys derived from the
// same secret.
const keySalt = "plusminus/mt5-credentials/v1"

// credentialCipher is the AES-256-GCM implementation of [CredentialCipher].
type credentialCipher struct {
	aead cipher.AEAD
}

// NewCredentialCipher derives a 256-bit key from secret with Argon2id and
// returns a cipher using it. The derivation runs once, here.
func NewCredentialCipher(secret string) (CredentialCipher, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	key := argon2.IDKey([]byte(secret), []byte(keySalt), 1, 64*1024, 4, 32)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &credentialCipher{aead: aead}, nil
}

func (c *credentialCipher) Seal(plaintext, binding string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := c.aead.Seal(nonce, nonce, []byte(plaintext), []byte(binding))
	return base64.StdEncoding.EncodeToString(blob), nil
}

func (c *credentialCipher) Open(sealed, binding string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrCredentialTampered, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrCredentialTampered)
	}

	plaintext, err := c.aead.Open(nil, blob[:nonceSize], blob[nonceSize:], []byte(binding))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCredentialTampered, err)
	}
	return string(plaintext), nil
}
