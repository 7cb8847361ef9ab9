// Package cryptox holds the project's cryptographic primitives: the AES-GCM
// field cipher used for card data at rest and password hashing.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// KeySize is the AES-256 key length.
const KeySize = 32

var ErrMalformedCiphertext = errors.New("malformed ciphertext")

// DeriveKey stretches a process secret into an AES-256 key with argon2id.
// The same secret and salt always give the same key.
func DeriveKey(secret, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, KeySize)
}

// FieldCipher encrypts individual string fields with AES-GCM. Every call to
// EncryptField draws a fresh random nonce, so equal plaintexts produce
// different ciphertexts. It is safe for concurrent use.
type FieldCipher struct {
	aead cipher.AEAD
}

// NewFieldCipher builds a cipher from a raw AES key (16, 24 or 32 bytes).
func NewFieldCipher(key []byte) (*FieldCipher, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aes cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("gcm: %w", err)
	}
	return &FieldCipher{aead: aead}, nil
}

// NewFieldCipherFromSecret derives the key from secret and salt, then builds
// the cipher.
func NewFieldCipherFromSecret(secret, salt string) (*FieldCipher, error) {
	if secret == "" {
		return nil, errors.New("encryption secret is empty")
	}
	return NewFieldCipher(DeriveKey([]byte(secret), []byte(salt)))
}

// EncryptField returns base64(nonce || ciphertext) for plaintext.
func (c *FieldCipher) EncryptField(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("nonce: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptField reverses EncryptField. Tampered or foreign ciphertexts fail
// authentication and return an error.
func (c *FieldCipher) DecryptField(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedCiphertext, err)
	}

	ns := c.aead.NonceSize()
	if len(raw) < ns+c.aead.Overhead() {
		return "", ErrMalformedCiphertext
	}

	plaintext, err := c.aead.Open(nil, raw[:ns], raw[ns:], nil)
	if err != nil {
		return "", fmt.Errorf("open: %w", err)
	}
	return string(plaintext), nil
}
