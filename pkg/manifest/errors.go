package manifest

import "errors"

// Error definitions for manifest package.
var (
	ErrFSMissing  = errors.New("fs dependency is required but not set")
	ErrSlugEmpty  = errors.New("manifest slug cannot be empty")
	ErrEncode     = errors.New("failed to encode manifest")
	ErrWrite      = errors.New("failed to write manifest")
	ErrOutputPath = errors.New("output directory is not usable")
)
