package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/lerenn/project-init/pkg/config"
	"github.com/lerenn/project-init/pkg/console"
	"github.com/lerenn/project-init/pkg/dependencies"
	"github.com/lerenn/project-init/pkg/fs"
	"github.com/lerenn/project-init/pkg/logger"
	"github.com/lerenn/project-init/pkg/projectinit"
	"go.uber.org/zap/zapcore"
)

// app bundles what a command needs once the configuration is loaded.
type app struct {
	deps   *dependencies.Dependencies
	config config.Config
	log    *logger.ZapLogger
	runID  string
	// errs receives failure details. It stays active with --quiet.
	errs console.Console
}

// newConfigManager creates the config manager for the --config flag.
func newConfigManager() config.Manager {
	return config.NewManager(config.NewManagerParams{FS: fs.NewFS(), ConfigPath: configPath})
}

// newApp loads the configuration and builds the logger and dependencies.
func newApp() (*app, error) {
	manager := newConfigManager()
	cfg, err := manager.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	runID := uuid.NewString()
	zl, err := newLogger(cfg, runID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToSetupLog, err)
	}

	var out io.Writer = os.Stdout
	if quiet {
		out = io.Discard
	}

	deps := dependencies.New().
		WithConfig(manager).
		WithLogger(zl).
		WithConsole(console.NewConsoleWithWriter(out))

	return &app{
		deps:   deps,
		config: cfg,
		log:    zl,
		runID:  runID,
		errs:   console.NewConsoleWithWriter(os.Stderr),
	}, nil
}

// newLogger builds the zap logger described by cfg and the global flags.
func newLogger(cfg config.Config, runID string) (*logger.ZapLogger, error) {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	opts := logger.Options{
		Level:  level,
		Quiet:  quiet,
		Fields: map[string]string{"run_id": runID},
		RunID:  runID,
	}
	if cfg.Log.File {
		opts.Dir = cfg.LogDir()
	}
	return logger.NewZapLogger(opts)
}

func (a *app) projectInit() (projectinit.ProjectInit, error) {
	return projectinit.NewProjectInit(projectinit.NewProjectInitParams{
		Dependencies:   a.deps,
		Config:         a.config,
		RepositoryPath: repoPath,
		RunID:          a.runID,
	})
}

func (a *app) close() {
	if err := a.log.Close(); err != nil {
		a.errs.Warning("Could not close the log file: %v", err)
	}
}
