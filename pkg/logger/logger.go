// Package logger provides logging functionality for project-init.
package logger

// Logger interface provides logging capabilities.
type Logger interface {
	// Debugf logs a formatted debug message.
	Debugf(format string, args ...interface{})
	// Infof logs a formatted informational message.
	Infof(format string, args ...interface{})
	// Warnf logs a formatted warning.
	Warnf(format string, args ...interface{})
	// Errorf logs a formatted error.
	Errorf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Debugf does nothing for noop logger.
func (n *noopLogger) Debugf(_ string, _ ...interface{}) {}

// Infof does nothing for noop logger.
func (n *noopLogger) Infof(_ string, _ ...interface{}) {}

// Warnf does nothing for noop logger.
func (n *noopLogger) Warnf(_ string, _ ...interface{}) {}

// Errorf does nothing for noop logger.
func (n *noopLogger) Errorf(_ string, _ ...interface{}) {}
