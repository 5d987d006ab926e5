// Package config loads and saves the pinit configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lerenn/project-init/pkg/branch"
	"github.com/lerenn/project-init/pkg/logger"
)

// DefaultConfigFile is the config file looked up in the working directory.
const DefaultConfigFile = ".pinit.yaml"

// EnvPrefix prefixes the environment variables overriding the configuration.
const EnvPrefix = "PINIT_"

// Config represents the application configuration.
type Config struct {
	// InputDir holds the notes files. Empty means DefaultNotesDir.
	InputDir           string    `koanf:"input_dir" yaml:"input_dir"`
	OutputDir          string    `koanf:"output_dir" yaml:"output_dir"`
	NotesPattern       string    `koanf:"notes_pattern" yaml:"notes_pattern"`
	BranchPrefix       string    `koanf:"branch_prefix" yaml:"branch_prefix"`
	DefaultProjectName string    `koanf:"default_project_name" yaml:"default_project_name"`
	CommitManifest     bool      `koanf:"commit_manifest" yaml:"commit_manifest"`
	Log                LogConfig `koanf:"log" yaml:"log"`
}

// LogConfig configures the log sinks.
type LogConfig struct {
	Level string `koanf:"level" yaml:"level"`
	// File enables the debug log file.
	File bool `koanf:"file" yaml:"file"`
	// Dir holds the log files. Empty means DefaultLogDir.
	Dir string `koanf:"dir" yaml:"dir"`
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if strings.TrimSpace(c.InputDir) == "" {
		return ErrInputDirEmpty
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return ErrOutputDirEmpty
	}
	if _, err := filepath.Match(c.NotesPattern, ""); err != nil || c.NotesPattern == "" {
		return fmt.Errorf("%w: %q", ErrNotesPatternInvalid, c.NotesPattern)
	}
	if err := validateBranchPrefix(c.BranchPrefix); err != nil {
		return err
	}
	if strings.TrimSpace(c.DefaultProjectName) == "" {
		return ErrDefaultProjectName
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrLogLevelInvalid, err)
	}
	return nil
}

// LogDir returns the directory log files go to.
func (c Config) LogDir() string {
	if c.Log.Dir != "" {
		return c.Log.Dir
	}
	return DefaultLogDir()
}

// DefaultLogDir is <user cache dir>/pinit/logs, outside any repository pinit works on,
// so the log file never makes the working tree dirty.
func DefaultLogDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "pinit", "logs")
	}
	return filepath.Join(os.TempDir(), "pinit", "logs")
}

// DefaultNotesDir is <user config dir>/pinit/notes. Notes kept there are never part of
// the working tree, so writing a template does not block the clean tree check.
func DefaultNotesDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "pinit", "notes")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".pinit", "notes")
	}
	return filepath.Join(os.TempDir(), "pinit", "notes")
}

// validateBranchPrefix accepts an empty prefix or one that survives ref sanitization.
func validateBranchPrefix(prefix string) error {
	if prefix == "" {
		return nil
	}
	candidate := strings.TrimSuffix(prefix, "/") + "/candidate"
	sanitized, err := branch.SanitizeBranchName(candidate)
	if err != nil || sanitized != candidate {
		return fmt.Errorf("%w: %q", ErrBranchPrefixInvalid, prefix)
	}
	return nil
}
