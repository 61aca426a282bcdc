package student

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/codetutor/internal/common"
	"github.com/dmitrijs2005/codetutor/internal/cryptox"
	"github.com/dmitrijs2005/codetutor/internal/filex"
)

// Store persists one encrypted record file per username inside a data
// directory. It assumes at most one writer per username: this is a single
// local process with a single session, so no cross-process locking is done.
// The atomic-rename save discipline still protects against process crashes.
type Store struct {
	dir    string
	cipher *cryptox.Cipher
}

// NewStore binds a store to its data directory and cipher, creating the
// directory if needed.
func NewStore(dir string, cipher *cryptox.Cipher) (*Store, error) {
	if err := filex.EnsureDir(dir); err != nil {
		return nil, err
	}
	return &Store{dir: dir, cipher: cipher}, nil
}

func (s *Store) path(username string) string {
	return filepath.Join(s.dir, strings.ToLower(username)+".dat")
}

// Save serializes the record to JSON, encrypts it, and atomically replaces
// the record file. On failure the previous record (if any) remains intact.
func (s *Store) Save(r *Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal record %s: %w", r.Username, err)
	}

	encrypted, err := s.cipher.Encrypt(data)
	if err != nil {
		return fmt.Errorf("encrypt record %s: %w", r.Username, err)
	}

	if err := filex.WriteFileAtomic(s.path(r.Username), encrypted, 0o600); err != nil {
		return fmt.Errorf("save record %s: %w", r.Username, err)
	}
	return nil
}

// Load reads, decrypts, and deserializes the record for username.
// It returns ErrNotFound when no record exists, ErrDecryption when the
// payload cannot be decrypted, and ErrCorruptRecord when the decrypted
// payload fails to parse.
func (s *Store) Load(username string) (*Record, error) {
	data, err := os.ReadFile(s.path(username))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("record %s: %w", username, common.ErrNotFound)
		}
		return nil, fmt.Errorf("read record %s: %w", username, err)
	}

	plaintext, err := s.cipher.Decrypt(data)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", username, err)
	}

	var r Record
	if err := json.Unmarshal(plaintext, &r); err != nil {
		return nil, fmt.Errorf("record %s: %w: %v", username, common.ErrCorruptRecord, err)
	}
	if r.Scores == nil {
		r.Scores = map[int]int{}
	}
	return &r, nil
}

// Exists reports whether a record file is present for username.
func (s *Store) Exists(username string) bool {
	_, err := os.Stat(s.path(username))
	return err == nil
}
