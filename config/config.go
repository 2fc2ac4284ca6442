package config

import (
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/grovetools/glon/errors"
	"github.com/grovetools/glon/logging"
	"github.com/grovetools/glon/pkg/clipboard"
	"github.com/grovetools/glon/pkg/ide"
	"github.com/grovetools/glon/pkg/paths"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Config is the glon.yml configuration surface.
type Config struct {
	// BasePath is the root of the organized directory structure.
	BasePath string `yaml:"base_path"`

	// IDE selects the editor used by open. Must be one of the recognized
	// selectors; an unknown value is a configuration error.
	IDE string `yaml:"ide"`

	// Clipboard controls how clipboard payloads are sanitized.
	Clipboard ClipboardConfig `yaml:"clipboard"`

	// Logging configures the logging subsystem.
	Logging logging.Config `yaml:"logging"`
}

// ClipboardConfig bounds what clipboard content is considered usable.
type ClipboardConfig struct {
	// MaxLength caps the payload size in bytes; zero means the default.
	MaxLength int `yaml:"max_length"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		BasePath: paths.DefaultBasePath,
		IDE:      string(ide.Default),
		Clipboard: ClipboardConfig{
			MaxLength: clipboard.DefaultMaxLength,
		},
	}
}

// Load reads and parses a glon configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes parses configuration data, expanding ${VAR} environment
// references in values and filling in defaults for unset fields.
func LoadFromBytes(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads the configuration from the XDG config location, falling
// back to defaults when no file exists. A file that exists but cannot be
// parsed is still an error; missing configuration never is.
func LoadDefault() (*Config, error) {
	path := paths.ConfigFile()
	if path == "" {
		return Default(), nil
	}

	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, errors.ErrCodeConfigNotFound) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Validate checks fields whose values come from a fixed vocabulary.
func (c *Config) Validate() error {
	if c.BasePath == "" {
		return errors.ConfigInvalid("base_path cannot be empty")
	}
	if _, err := ide.Parse(c.IDE); err != nil {
		return err
	}
	return nil
}

// SelectedIDE returns the configured IDE selector.
func (c *Config) SelectedIDE() (ide.IDE, error) {
	return ide.Parse(c.IDE)
}

// expandEnvVars replaces ${VAR} references with environment values.
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		name := envVarRegex.FindStringSubmatch(match)[1]
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		return match
	})
}
