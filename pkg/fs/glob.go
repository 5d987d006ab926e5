package fs

import (
	"fmt"
	"path/filepath"
	"sort"
)

// Glob returns the paths matching pattern, sorted. A malformed pattern is ErrBadPattern.
func (f *realFS) Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
	}
	sort.Strings(matches)
	return matches, nil
}
