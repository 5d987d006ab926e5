package repository

import "errors"

// Error definitions for repository package.
var (
	// ErrGitMissing is returned when no Git implementation is provided.
	ErrGitMissing = errors.New("git dependency is required but not set")
)
