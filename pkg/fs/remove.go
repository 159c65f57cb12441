package fs

import (
	"errors"
	"io/fs"
	"os"
)

// Remove removes a file. A missing file is not an error.
func (f *realFS) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
