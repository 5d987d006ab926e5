package fs

import (
	"fmt"
	"os"
)

// GetHomeDir returns the user's home directory, falling back to $HOME.
func (f *realFS) GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err == nil {
		return home, nil
	}
	if home = os.Getenv("HOME"); home != "" {
		return home, nil
	}
	return "", fmt.Errorf("%w: %w", ErrPathResolution, err)
}
