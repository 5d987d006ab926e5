//go:build unit

package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNoopLogger(t *testing.T) {
	logger := NewNoopLogger()

	// This should not panic or produce any output
	logger.Debugf("test message with args: %s", "value")
	logger.Infof("info")
	logger.Warnf("warn")
	logger.Errorf("error")
}

func TestZapLogger_ConsoleRespectsLevel(t *testing.T) {
	var console bytes.Buffer
	logger, err := NewZapLogger(Options{Level: zapcore.InfoLevel, Console: &console})
	require.NoError(t, err)

	logger.Debugf("debug %d", 2)
	logger.Infof("Project name from notes: '%s'", "Acme Forecast")
	logger.Warnf("careful")
	require.NoError(t, logger.Close())

	out := console.String()
	assert.NotContains(t, out, "debug 2")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "Project name from notes: 'Acme Forecast'")
	assert.Contains(t, out, "WARN")
	assert.Empty(t, logger.Path())
}

func TestZapLogger_Quiet(t *testing.T) {
	var console bytes.Buffer
	logger, err := NewZapLogger(Options{Quiet: true, Console: &console})
	require.NoError(t, err)

	logger.Errorf("hidden")
	require.NoError(t, logger.Close())
	assert.Empty(t, console.String())
}

func TestZapLogger_FileSinkCapturesDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	var console bytes.Buffer
	now := func() time.Time { return time.Date(2026, 10, 18, 9, 30, 5, 0, time.UTC) }

	logger, err := NewZapLogger(Options{
		Level:   zapcore.InfoLevel,
		Console: &console,
		Dir:     dir,
		Fields:  map[string]string{"run_id": "1234"},
		RunID:   "1234",
		Now:     now,
	})
	require.NoError(t, err)

	logger.Debugf("Manifest path determined: %s", "outputs/acme_manifest.json")
	logger.Infof("Script started.")
	require.NoError(t, logger.Close())

	assert.Equal(t, filepath.Join(dir, "20261018_093005_1234_project_init.log"), logger.Path())

	data, err := os.ReadFile(logger.Path())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "Manifest path determined: outputs/acme_manifest.json", entry["msg"])
	assert.Equal(t, "1234", entry["run_id"])

	assert.NotContains(t, console.String(), "Manifest path determined")
	assert.Contains(t, console.String(), "Script started.")
}

func TestZapLogger_RunsInTheSameSecondGetSeparateFiles(t *testing.T) {
	dir := t.TempDir()
	now := func() time.Time { return time.Date(2026, 10, 18, 9, 30, 5, 0, time.UTC) }

	first, err := NewZapLogger(Options{Quiet: true, Dir: dir, RunID: "run-a", Now: now})
	require.NoError(t, err)
	second, err := NewZapLogger(Options{Quiet: true, Dir: dir, RunID: "run-b", Now: now})
	require.NoError(t, err)

	first.Infof("from a")
	second.Infof("from b")
	require.NoError(t, first.Close())
	require.NoError(t, second.Close())

	require.NotEqual(t, first.Path(), second.Path())
	for path, msg := range map[string]string{first.Path(): "from a", second.Path(): "from b"} {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], msg)
	}
}

func TestZapLogger_ExistingLogFileIsNotReused(t *testing.T) {
	dir := t.TempDir()
	now := func() time.Time { return time.Date(2026, 10, 18, 9, 30, 5, 0, time.UTC) }

	first, err := NewZapLogger(Options{Quiet: true, Dir: dir, RunID: "run-a", Now: now})
	require.NoError(t, err)
	defer first.Close()

	_, err = NewZapLogger(Options{Quiet: true, Dir: dir, RunID: "run-a", Now: now})
	assert.ErrorIs(t, err, ErrLogFile)
}

func TestZapLogger_InvalidDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := NewZapLogger(Options{Quiet: true, Dir: filepath.Join(file, "logs")})
	assert.ErrorIs(t, err, ErrLogDirectory)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    zapcore.Level
		expectError bool
	}{
		{name: "empty defaults to info", input: "", expected: zapcore.InfoLevel},
		{name: "debug", input: "debug", expected: zapcore.DebugLevel},
		{name: "upper case", input: "WARN", expected: zapcore.WarnLevel},
		{name: "surrounding spaces", input: " error ", expected: zapcore.ErrorLevel},
		{name: "invalid", input: "loud", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestTestLogger_Assertions(t *testing.T) {
	logger := NewTestLogger()

	logger.Warnf("Error checking working tree status: %s", "permission denied")
	logger.Infof("Working tree is clean.")

	logger.AssertLogged(t, zapcore.WarnLevel, "permission denied")
	logger.AssertNotLogged(t, zapcore.ErrorLevel, "permission denied")
	assert.Equal(t, []string{"Working tree is clean."}, logger.Messages(zapcore.InfoLevel))
	assert.Len(t, logger.All(), 2)
}
