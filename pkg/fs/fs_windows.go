//go:build windows

package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileLock creates filename.lock as a marker. flock is not available on
// Windows, so the lock is advisory only.
func (f *realFS) FileLock(filename string) (func(), error) {
	lockPath := filename + ".lock"

	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileLock, err)
	}

	lockFile, err := os.Create(lockPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileLock, err)
	}

	return func() {
		_ = lockFile.Close()
		_ = os.Remove(lockPath)
	}, nil
}
