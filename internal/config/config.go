// Package config loads dotnetctl settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/conneroisu/dotnetctl/pkg/dotneterrs"
)

// Environment variables that override file settings.
const (
	EnvCLIPath   = "DOTNETCTL_CLI_PATH"
	EnvLogLevel  = "DOTNETCTL_LOG_LEVEL"
	EnvLogFormat = "DOTNETCTL_LOG_FORMAT"
	EnvTimeout   = "DOTNETCTL_TIMEOUT"
)

// Config is the executable's configuration.
type Config struct {
	// CLIPath overrides discovery of the dotnet binary.
	CLIPath string            `yaml:"cli_path"`
	Env     map[string]string `yaml:"env"`
	// Timeout bounds each request. Zero means no deadline.
	Timeout time.Duration `yaml:"timeout"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
}

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ServerConfig is announced to MCP clients.
type ServerConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Timeout: 30 * time.Second,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Name:    "dotnetctl",
			Version: "0.1.0",
		},
	}
}

// Load reads the YAML file at path, falling back to defaults when path is
// empty or missing, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		contents, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(contents, &cfg); err != nil {
				return Config{}, dotneterrs.NewValidationError(
					dotneterrs.ErrCodeInvalidConfig,
					"unmarshal config",
					err,
					"path",
					path,
				)
			}
		}
	}
	cfg.applyDefaults()

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = defaults.Log.Format
	}
	if c.Server.Name == "" {
		c.Server.Name = defaults.Server.Name
	}
	if c.Server.Version == "" {
		c.Server.Version = defaults.Server.Version
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvCLIPath); ok && v != "" {
		c.CLIPath = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Log.Format = v
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return dotneterrs.NewValidationError(
				dotneterrs.ErrCodeInvalidFormat,
				"invalid "+EnvTimeout,
				err,
				"timeout",
				v,
			)
		}
		c.Timeout = d
	}

	return nil
}

var (
	validLevels  = []string{"trace", "debug", "info", "warn", "warning", "error"}
	validFormats = []string{"text", "json"}
)

// Validate checks field values.
func (c Config) Validate() error {
	if !oneOf(c.Log.Level, validLevels) {
		return dotneterrs.NewValidationError(
			dotneterrs.ErrCodeInvalidConfig,
			fmt.Sprintf("unsupported log level %q", c.Log.Level),
			nil,
			"log.level",
			c.Log.Level,
		)
	}
	if !oneOf(c.Log.Format, validFormats) {
		return dotneterrs.NewValidationError(
			dotneterrs.ErrCodeInvalidConfig,
			fmt.Sprintf("unsupported log format %q", c.Log.Format),
			nil,
			"log.format",
			c.Log.Format,
		)
	}
	if c.Timeout < 0 {
		return dotneterrs.NewValidationError(
			dotneterrs.ErrCodeInvalidConfig,
			"timeout must not be negative",
			nil,
			"timeout",
			c.Timeout.String(),
		)
	}

	return nil
}

func oneOf(v string, allowed []string) bool {
	return slices.Contains(allowed, strings.ToLower(v))
}
