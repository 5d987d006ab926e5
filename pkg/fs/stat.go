package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
)

// Exists reports whether path exists. Only a missing path yields false without error.
func (f *realFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, iofs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrStat, err)
	}
}

// IsDir reports whether path is a directory. A missing path is ErrDirectoryNotFound.
func (f *realFS) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, fmt.Errorf("%w: %s", ErrDirectoryNotFound, path)
		}
		return false, fmt.Errorf("%w: %w", ErrStat, err)
	}
	return info.IsDir(), nil
}
