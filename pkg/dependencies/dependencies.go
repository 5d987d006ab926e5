// Package dependencies provides the dependency container shared by pinit commands.
package dependencies

import (
	"errors"

	"github.com/lerenn/project-init/pkg/config"
	"github.com/lerenn/project-init/pkg/console"
	"github.com/lerenn/project-init/pkg/fs"
	"github.com/lerenn/project-init/pkg/git"
	"github.com/lerenn/project-init/pkg/logger"
	"github.com/lerenn/project-init/pkg/prompt"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing      = errors.New("fs dependency is required but not set")
	ErrGitMissing     = errors.New("git dependency is required but not set")
	ErrConfigMissing  = errors.New("config dependency is required but not set")
	ErrLoggerMissing  = errors.New("logger dependency is required but not set")
	ErrPromptMissing  = errors.New("prompt dependency is required but not set")
	ErrConsoleMissing = errors.New("console dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS      fs.FS
	Git     git.Git
	Config  config.Manager
	Logger  logger.Logger
	Prompt  prompt.Prompter
	Console console.Console
}

// New creates a new Dependencies instance with defaults backed by the real system.
// Config is left nil; it depends on the --config flag.
func New() *Dependencies {
	return &Dependencies{
		FS:      fs.NewFS(),
		Git:     git.NewGit(),
		Logger:  logger.NewNoopLogger(),
		Prompt:  prompt.NewPrompt(),
		Console: console.NewConsole(),
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithConsole sets the console and returns the instance for chaining.
func (d *Dependencies) WithConsole(console console.Console) *Dependencies {
	d.Console = console
	return d
}

type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate returns the error of the first missing dependency.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Git, ErrGitMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Prompt, ErrPromptMissing},
		{d.Console, ErrConsoleMissing},
	}
	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
