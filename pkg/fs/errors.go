// Package fs provides file system operations and error definitions.
package fs

import "errors"

// Error definitions for fs package.
var (
	// ErrDirectoryNotFound is returned when a directory to search does not exist.
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrNoMatchingFile is returned when no file matches the searched pattern.
	ErrNoMatchingFile = errors.New("no matching file")

	// ErrPathResolution is returned when a path cannot be expanded.
	ErrPathResolution = errors.New("path resolution failed")

	ErrStat            = errors.New("failed to stat path")
	ErrReadFile        = errors.New("failed to read file")
	ErrCreateDirectory = errors.New("failed to create directory")
	ErrBadPattern      = errors.New("invalid glob pattern")
)
