// Package cryptox implements at-rest protection for student records using
// AES-256-GCM under a single symmetric key persisted next to the data.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/codetutor/internal/common"
)

// KeySize is the length of the symmetric key in bytes (AES-256).
const KeySize = 32

// Cipher encrypts and decrypts byte payloads with a fixed key. Construct one
// per process and hand it to the record store; there is no package-level
// shared instance.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher builds a Cipher from a KeySize-byte key.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("cipher key must be %d bytes, got %d", KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}

	return &Cipher{aead: aead}, nil
}

// LoadOrCreateKey reads the key file at path, generating and persisting a
// fresh random key if none exists yet. All records of an installation are
// encrypted under this one key; replacing the file invalidates every
// existing record.
func LoadOrCreateKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err == nil {
		if len(key) != KeySize {
			return nil, fmt.Errorf("key file %s: expected %d bytes, got %d", path, KeySize, len(key))
		}
		return key, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read key file %s: %w", path, err)
	}

	key = common.GenerateRandByteArray(KeySize)
	if err := os.WriteFile(path, key, 0o600); err != nil {
		return nil, fmt.Errorf("write key file %s: %w", path, err)
	}
	return key, nil
}

// Encrypt seals plaintext with a fresh random nonce. The nonce is prepended
// to the returned ciphertext.
func (c *Cipher) Encrypt(plaintext []byte) ([]byte, error) {
	nonce := common.GenerateRandByteArray(c.aead.NonceSize())
	return c.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens a payload produced by Encrypt. It returns ErrDecryption when
// the ciphertext is truncated, tampered with, or was sealed under a
// different key.
func (c *Cipher) Decrypt(data []byte) ([]byte, error) {
	ns := c.aead.NonceSize()
	if len(data) < ns {
		return nil, fmt.Errorf("%w: ciphertext shorter than nonce", common.ErrDecryption)
	}

	plaintext, err := c.aead.Open(nil, data[:ns], data[ns:], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDecryption, err)
	}
	return plaintext, nil
}
