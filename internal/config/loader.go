package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that overrides the config path.
const EnvConfigPath = "CREATE_STACK_CONFIG"

// ResolvePath picks the config file location: the explicit path if given,
// then $CREATE_STACK_CONFIG, then <UserConfigDir>/create-stack/config.yaml.
func ResolvePath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(dir, "create-stack", "config.yaml"), nil
}

// Load reads the config file at path and returns it with defaults applied.
// A missing file yields the defaults. An unreadable file or invalid YAML is
// logged and also yields the defaults. Validation errors are returned.
func Load(path string, logger *slog.Logger) (*Config, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "config")

	cfg := NewDefaultConfig()

	loaded, err := loadYAMLFile(path, cfg)
	if err != nil {
		logger.Warn("failed to load config, using defaults", "path", path, "error", err)
		cfg = NewDefaultConfig()
	} else if !loaded {
		logger.Debug("config file not found, using defaults", "path", path)
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadYAMLFile reads a YAML file and unmarshals it into target.
// Returns (true, nil) if the file was found and parsed, (false, nil) if the
// file does not exist, or (false, error) on failure.
func loadYAMLFile(path string, target any) (bool, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w", path, ErrInvalidYAML)
	}

	return true, nil
}
