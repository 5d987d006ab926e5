package fs

import "fmt"

// LatestFile returns the most recently modified file in dir matching pattern.
func (f *realFS) LatestFile(dir, pattern string) (string, error) {
	files, err := f.ListFiles(dir, pattern)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("%w: no %s in %s", ErrNoMatchingFile, pattern, dir)
	}
	return files[0].Path, nil
}
