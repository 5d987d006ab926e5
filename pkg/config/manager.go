package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/lerenn/project-init/configs"
	"github.com/lerenn/project-init/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager loads and initializes the configuration stored at one path.
type Manager interface {
	// Load merges the embedded defaults, the config file and PINIT_* variables, in
	// increasing precedence, then validates the result.
	Load() (Config, error)
	// DefaultConfig returns the embedded defaults.
	DefaultConfig() (Config, error)
	// InitConfig writes the embedded defaults to the config path.
	InitConfig(force bool) error
	// GetConfigPath returns the config path.
	GetConfigPath() string
}

// NewManagerParams contains parameters for creating a new Manager.
type NewManagerParams struct {
	FS fs.FS
	// ConfigPath is the file to use. Empty means DefaultConfigFile, which may be absent.
	ConfigPath string
}

type realManager struct {
	fs         fs.FS
	configPath string
	explicit   bool
}

// NewManager creates a new Manager instance.
func NewManager(params NewManagerParams) Manager {
	if params.FS == nil {
		params.FS = fs.NewFS()
	}
	m := &realManager{fs: params.FS, configPath: params.ConfigPath, explicit: params.ConfigPath != ""}
	if !m.explicit {
		m.configPath = DefaultConfigFile
	}
	return m
}

// Load loads the configuration.
func (m *realManager) Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(configs.DefaultConfigYAML), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("%w: embedded defaults: %w", ErrConfigFileParse, err)
	}

	if err := m.loadFile(k); err != nil {
		return Config{}, err
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrEnvironmentLoad, err)
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	applyDefaults(&config)
	if err := m.expandPaths(&config); err != nil {
		return Config{}, err
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return config, nil
}

func (m *realManager) loadFile(k *koanf.Koanf) error {
	exists, err := m.fs.Exists(m.configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigFileRead, err)
	}
	if !exists {
		if m.explicit {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, m.configPath)
		}
		return nil
	}

	content, err := m.fs.ReadFile(m.configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigFileRead, err)
	}
	if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConfigFileParse, m.configPath, err)
	}
	return nil
}

// envKey maps PINIT_OUTPUT_DIR to output_dir and PINIT_LOG_LEVEL to log.level.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "log_"); ok {
		return "log." + rest
	}
	return key
}

// applyDefaults fills the settings whose default depends on the user.
func applyDefaults(config *Config) {
	if strings.TrimSpace(config.InputDir) == "" {
		config.InputDir = DefaultNotesDir()
	}
}

func (m *realManager) expandPaths(config *Config) error {
	for _, path := range []*string{&config.InputDir, &config.OutputDir, &config.Log.Dir} {
		expanded, err := m.fs.ExpandPath(*path)
		if err != nil {
			return err
		}
		*path = expanded
	}
	return nil
}

// DefaultConfig returns the embedded defaults.
func (m *realManager) DefaultConfig() (Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(configs.DefaultConfigYAML), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("%w: embedded defaults: %w", ErrConfigFileParse, err)
	}
	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}
	applyDefaults(&config)
	return config, nil
}

// InitConfig writes the embedded defaults, comments included, to the config path.
func (m *realManager) InitConfig(force bool) error {
	exists, err := m.fs.Exists(m.configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigFileRead, err)
	}
	if exists && !force {
		return fmt.Errorf("%w: %s", ErrConfigFileExists, m.configPath)
	}
	if err := m.fs.WriteFileAtomic(m.configPath, configs.DefaultConfigYAML, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigWrite, err)
	}
	return nil
}

// GetConfigPath returns the config path.
func (m *realManager) GetConfigPath() string {
	return m.configPath
}
