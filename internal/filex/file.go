// Package filex contains filesystem helpers shared by the store and the
// certificate writer: directory creation and crash-safe file replacement.
package filex

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/codetutor/internal/common"
)

// EnsureDir creates dir (and any missing parents) if it does not exist yet.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// WriteFileAtomic writes data to path without ever leaving a partially
// written file behind. The data is first written to a temporary file in the
// same directory, synced to disk, and then renamed over the final path.
// If any step fails, the temporary file is removed and the previous content
// of path (if any) is left untouched.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	suffix, err := common.MakeRandHexString(4)
	if err != nil {
		return fmt.Errorf("temp name for %s: %w", path, err)
	}

	tmp, err := os.OpenFile(path+".tmp-"+suffix, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename %s -> %s: %w", tmp.Name(), path, err)
	}
	return nil
}
