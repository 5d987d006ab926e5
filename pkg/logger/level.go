package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// ParseLevel converts a level name such as "debug" or "INFO" to a zapcore.Level.
// An empty name yields info.
func ParseLevel(name string) (zapcore.Level, error) {
	if strings.TrimSpace(name) == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(name)))); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
	}
	return level, nil
}
