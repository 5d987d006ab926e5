package workflow

import "errors"

// Error definitions for workflow package.
var (
	ErrValidatorMissing     = errors.New("validator dependency is required but not set")
	ErrBranchCreatorMissing = errors.New("branch creator dependency is required but not set")
)
