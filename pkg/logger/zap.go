package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogFileSuffix ends every log file name.
const LogFileSuffix = "_project_init.log"

// Options configures a zap-backed Logger.
type Options struct {
	// Level is the minimum level written to the console.
	Level zapcore.Level
	// Quiet disables the console sink entirely.
	Quiet bool
	// Console receives human-readable output. Defaults to os.Stderr.
	Console io.Writer
	// Dir is where the debug log file is created. Empty disables the file sink.
	Dir string
	// Fields are attached to every entry.
	Fields map[string]string
	// RunID is added to the log file name after the timestamp.
	RunID string
	// Now overrides the clock used to name the log file.
	Now func() time.Time
}

// ZapLogger writes to a console sink and, optionally, to a timestamped debug log file.
type ZapLogger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
	file  *os.File
	path  string
}

// NewZapLogger builds a ZapLogger from options.
func NewZapLogger(opts Options) (*ZapLogger, error) {
	var cores []zapcore.Core

	if !opts.Quiet {
		console := opts.Console
		if console == nil {
			console = os.Stderr
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleEncoderConfig()),
			zapcore.AddSync(console),
			zap.NewAtomicLevelAt(opts.Level),
		))
	}

	l := &ZapLogger{}
	if opts.Dir != "" {
		file, path, err := createLogFile(opts.Dir, opts.RunID, opts.Now)
		if err != nil {
			return nil, err
		}
		l.file = file
		l.path = path
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(fileEncoderConfig()),
			zapcore.AddSync(file),
			zap.NewAtomicLevelAt(zapcore.DebugLevel),
		))
	}

	base := zap.New(zapcore.NewTee(cores...))
	if len(opts.Fields) > 0 {
		fields := make([]zap.Field, 0, len(opts.Fields))
		for k, v := range opts.Fields {
			fields = append(fields, zap.String(k, v))
		}
		base = base.With(fields...)
	}

	l.base = base
	l.sugar = base.Sugar()
	return l, nil
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.CallerKey = zapcore.OmitKey
	cfg.NameKey = zapcore.OmitKey
	return cfg
}

func fileEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

// createLogFile creates <stamp>[_<runID>]_project_init.log in dir. An existing file is
// never reused so that concurrent runs do not interleave.
func createLogFile(dir, runID string, now func() time.Time) (*os.File, string, error) {
	if now == nil {
		now = time.Now
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrLogDirectory, err)
	}

	name := now().Format("20060102_150405")
	if runID != "" {
		name += "_" + runID
	}
	path := filepath.Join(dir, name+LogFileSuffix)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrLogFile, err)
	}
	return file, path, nil
}

// Path returns the log file path, or an empty string when the file sink is disabled.
func (l *ZapLogger) Path() string {
	return l.path
}

// Debugf logs a formatted debug message.
func (l *ZapLogger) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Infof logs a formatted informational message.
func (l *ZapLogger) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Warnf logs a formatted warning.
func (l *ZapLogger) Warnf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Errorf logs a formatted error.
func (l *ZapLogger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Close flushes buffered entries and closes the log file.
func (l *ZapLogger) Close() error {
	// Sync on a terminal returns EINVAL on Linux; only the file result matters.
	_ = l.base.Sync()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
