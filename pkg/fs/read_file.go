package fs

import (
	"fmt"
	"os"
)

// ReadFile reads the whole file at path.
func (f *realFS) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	return data, nil
}

// MkdirAll creates path and its missing parents.
func (f *realFS) MkdirAll(path string, perm os.FileMode) error {
	if err := os.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
	}
	return nil
}
