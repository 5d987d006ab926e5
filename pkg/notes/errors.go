// Package notes parses structured Markdown project notes into answers.
package notes

import "errors"

// Error definitions for notes package.
var (
	// ErrNotesNotFound is returned when the notes file does not exist.
	ErrNotesNotFound = errors.New("notes file not found")
	// ErrNoContent is returned when no known section has any content.
	ErrNoContent = errors.New("no valid content could be parsed from the notes file, ensure it follows the template")
	// ErrRead is returned when the notes file cannot be read.
	ErrRead = errors.New("failed to read notes file")
	// ErrFSMissing is returned when no file system is provided.
	ErrFSMissing = errors.New("fs dependency is required but not set")
)

// Template errors.
var (
	ErrTemplateExists = errors.New("notes file already exists, use --force to overwrite")
	ErrTemplateWrite  = errors.New("failed to write notes template")
)
