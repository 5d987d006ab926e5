package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ListFiles returns the regular files in dir matching pattern, newest first.
// Files with the same modification time are ordered by name.
func (f *realFS) ListFiles(dir, pattern string) ([]FileInfo, error) {
	isDir, err := f.IsDir(dir)
	if err != nil {
		return nil, err
	}
	if !isDir {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, dir)
	}

	matches, err := f.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}

	files := make([]FileInfo, 0, len(matches))
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStat, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, FileInfo{
			Path:    match,
			Name:    info.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.SliceStable(files, func(i, j int) bool {
		if files[i].ModTime.Equal(files[j].ModTime) {
			return files[i].Name < files[j].Name
		}
		return files[i].ModTime.After(files[j].ModTime)
	})
	return files, nil
}
