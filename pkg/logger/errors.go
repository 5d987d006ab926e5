package logger

import "errors"

// Error definitions for logger package.
var (
	ErrLogDirectory = errors.New("failed to create log directory")
	ErrLogFile      = errors.New("failed to create log file")
	ErrInvalidLevel = errors.New("invalid log level")
)
