package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dirtree/internal/errors"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Traversal modes
const (
	TraversalRecursive = "recursive"
	TraversalStack     = "stack"
)

// Config represents the application configuration structure.
// Command-line flags take precedence over every value here.
type Config struct {
	Display struct {
		Files bool `yaml:"files"` // Include file-like entries
		ASCII bool `yaml:"ascii"` // Use ASCII connector glyphs
	} `yaml:"display"`
	Traversal struct {
		Mode string `yaml:"mode" validate:"required,oneof=recursive stack"` // recursive or stack
	} `yaml:"traversal"`
	Logging struct {
		Level  string `yaml:"level" validate:"required,oneof=debug info warn error"`
		Format string `yaml:"format" validate:"required,oneof=text json"`
	} `yaml:"logging"`
}

var validate = validator.New()

// DefaultPath returns $XDG_CONFIG_HOME/dirtree/config.yaml, falling back
// to ~/.config/dirtree/config.yaml.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dirtree", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "dirtree", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, errors.NewConfigError("unable to locate config directory", "", errors.ConfigNotFound, err)
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.NewConfigError("error reading config file", path, errors.ConfigNotFound, err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	cfg.Display = tempCfg.Display
	if tempCfg.Traversal.Mode != "" {
		cfg.Traversal.Mode = strings.ToLower(tempCfg.Traversal.Mode)
	}
	if tempCfg.Logging.Level != "" {
		cfg.Logging.Level = strings.ToLower(tempCfg.Logging.Level)
	}
	if tempCfg.Logging.Format != "" {
		cfg.Logging.Format = strings.ToLower(tempCfg.Logging.Format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Display.Files = false
	cfg.Display.ASCII = false
	cfg.Traversal.Mode = TraversalRecursive
	cfg.Logging.Level = "warn"
	cfg.Logging.Format = "text"
	return cfg
}

// New returns the default configuration.
func New() *Config {
	return defaultConfig()
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("invalid configuration", "", errors.InvalidConfig, fmt.Errorf("nil config"))
	}
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok && len(validationErrs) > 0 {
		e := validationErrs[0]
		return errors.NewConfigError("invalid configuration", e.Namespace(), errors.InvalidConfig,
			fmt.Errorf("validation failed on '%s' tag (value: %v)", e.Tag(), e.Value()))
	}
	return errors.NewConfigError("invalid configuration", "", errors.InvalidConfig, err)
}
