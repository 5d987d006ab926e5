// Package projectinit runs a complete project initialization: answers, branch, manifest.
package projectinit

import "errors"

// Error definitions for projectinit package.
var (
	ErrAnswers        = errors.New("failed to collect project answers")
	ErrNotesDiscovery = errors.New("no notes file found")
	ErrBranchName     = errors.New("failed to build branch name")
	ErrManifest       = errors.New("failed to write manifest")
	ErrCommit         = errors.New("failed to commit manifest")
	ErrSourceMissing  = errors.New("answers source is required but not set")
)
