package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse  = errors.New("failed to parse config file")
	ErrConfigFileRead   = errors.New("failed to read config file")
	ErrConfigNotFound   = errors.New("config file not found")
	ErrConfigFileExists = errors.New("config file already exists, use --force to overwrite")
	ErrConfigWrite      = errors.New("failed to write config file")
	ErrEnvironmentLoad  = errors.New("failed to load environment variables")

	// Configuration validation errors.
	ErrInputDirEmpty        = errors.New("input_dir cannot be empty")
	ErrOutputDirEmpty       = errors.New("output_dir cannot be empty")
	ErrNotesPatternInvalid  = errors.New("notes_pattern is not a valid glob pattern")
	ErrBranchPrefixInvalid  = errors.New("branch_prefix is not a valid ref prefix")
	ErrDefaultProjectName   = errors.New("default_project_name cannot be empty")
	ErrLogLevelInvalid      = errors.New("log.level is invalid")
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
