package config

import (
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	"github.com/unjucks/unjucks/internal/debug"
	"github.com/unjucks/unjucks/internal/template/model"
)

// Loader defines the interface for loading project configuration.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if the
	// file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Discover searches startDir, its parents, and the home directory
	// for a config file, returning defaults when none exists.
	Discover(startDir string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// FileLoader implements Loader for file-based configuration.
type FileLoader struct{}

// NewLoader creates a new FileLoader instance.
func NewLoader() Loader {
	return &FileLoader{}
}

// Load loads configuration from the specified file path.
func (l *FileLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid YAML syntax", err)
	}

	mergeConfig(&cfg, DefaultConfig())
	cfg.Path = path

	// Paths in the config are relative to the config file.
	base := filepath.Dir(path)
	if cfg.Templates != "" && !filepath.IsAbs(cfg.Templates) {
		cfg.Templates = filepath.Join(base, cfg.Templates)
	}
	if cfg.PacksDir != "" && !filepath.IsAbs(cfg.PacksDir) {
		cfg.PacksDir = filepath.Join(base, cfg.PacksDir)
	}

	if err := l.Validate(&cfg); err != nil {
		return nil, err
	}

	debug.Debug("[config] Loaded configuration from %s", path)
	return &cfg, nil
}

// LoadOrDefault loads configuration or returns defaults if the file
// doesn't exist.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	cfg, err := l.Load(path)
	if err != nil {
		if cfgErr, ok := err.(*ConfigError); ok && cfgErr.Type == ConfigNotFound {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Discover walks from startDir up to the filesystem root looking for
// a .unjucks.yaml, then checks the home directory, and finally falls
// back to defaults.
func (l *FileLoader) Discover(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, startDir, "failed to resolve directory", err)
	}

	for {
		candidate := filepath.Join(dir, model.ProjectConfigFile)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return l.Load(candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(homeDir, model.ProjectConfigFile)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return l.Load(candidate)
		}
	}

	debug.Debug("[config] No %s found, using defaults", model.ProjectConfigFile)
	return DefaultConfig(), nil
}

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	if err := validation.Validate(config.Watch.DebounceMs, validation.Min(0)); err != nil {
		return NewConfigErrorWithField(ConfigValidationFailed, config.Path, "watch.debounce_ms", err.Error())
	}
	err := validation.Validate(config.Generation.IgnorePatterns,
		validation.Each(validation.By(func(value interface{}) error {
			pattern, _ := value.(string)
			if _, err := glob.Compile(pattern, '/'); err != nil {
				return fmt.Errorf("invalid glob pattern %q: %v", pattern, err)
			}
			return nil
		})))
	if err != nil {
		return NewConfigErrorWithField(ConfigValidationFailed, config.Path, "generation.ignore_patterns", err.Error())
	}
	return nil
}

// mergeConfig fills missing fields in cfg from defaults.
func mergeConfig(cfg, defaults *Config) {
	if cfg.Generation.Dest == "" {
		cfg.Generation.Dest = defaults.Generation.Dest
	}
	if len(cfg.Generation.IgnorePatterns) == 0 {
		cfg.Generation.IgnorePatterns = defaults.Generation.IgnorePatterns
	}
	if cfg.Watch.DebounceMs == 0 {
		cfg.Watch.DebounceMs = defaults.Watch.DebounceMs
	}
}

// ExpandPath expands a leading ~ to the home directory and makes the
// path absolute.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		if path[1] == filepath.Separator || path[1] == '/' {
			return filepath.Join(homeDir, path[2:]), nil
		}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	return absPath, nil
}
