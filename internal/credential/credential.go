// Package credential derives and verifies salted password digests.
//
// A credential is stored as "saltHex:keyHex", where key is derived from the
// password with PBKDF2-HMAC-SHA256. The plaintext password never leaves this
// package in any persisted form.
package credential

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/codetutor/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize   = 32
	keySize    = 32
	iterations = 100_000
)

// Hash derives a credential for the given password using a fresh random salt.
func Hash(password []byte) string {
	salt := common.GenerateRandByteArray(saltSize)
	key := pbkdf2.Key(password, salt, iterations, keySize, sha256.New)
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key)
}

// Verify recomputes the derivation with the stored salt and compares the
// result to the stored key in constant time. A stored credential that is
// missing the separator or is not valid hex yields ErrCredentialFormat.
func Verify(cred string, password []byte) (bool, error) {
	saltHex, keyHex, ok := strings.Cut(cred, ":")
	if !ok {
		return false, fmt.Errorf("%w: missing separator", common.ErrCredentialFormat)
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false, fmt.Errorf("%w: invalid salt hex", common.ErrCredentialFormat)
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return false, fmt.Errorf("%w: invalid key hex", common.ErrCredentialFormat)
	}
	if len(key) == 0 {
		return false, fmt.Errorf("%w: empty key", common.ErrCredentialFormat)
	}

	candidate := pbkdf2.Key(password, salt, iterations, len(key), sha256.New)
	return subtle.ConstantTimeCompare(candidate, key) == 1, nil
}
