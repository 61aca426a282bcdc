// Package common defines shared constants and sentinel errors used across
// the codetutor packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound      = errors.New("not found")
	ErrCorruptRecord = errors.New("corrupt record")

	// Cipher / credential errors.
	ErrDecryption       = errors.New("decryption failed")
	ErrCredentialFormat = errors.New("malformed credential")

	// Auth / input errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation error")
)
