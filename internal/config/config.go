// Package config loads carbonmap settings from ~/.carbonmap/config.yaml.
//
// Values are resolved in order: built-in defaults, the config file, then
// CARBONMAP_* environment variables. CLI flags are applied last by the cli
// package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/rshade/carbonmap/internal/greenops"
	"github.com/rshade/carbonmap/internal/logging"
	"github.com/rshade/carbonmap/internal/zone"
)

// Environment variable names.
const (
	EnvHome        = "CARBONMAP_HOME"
	EnvLogLevel    = "CARBONMAP_LOG_LEVEL"
	EnvLogFormat   = "CARBONMAP_LOG_FORMAT"
	EnvStateFile   = "CARBONMAP_STATE_FILE"
	EnvPrecision   = "CARBONMAP_PRECISION"
	configFileName = "config.yaml"
)

// Defaults.
const (
	DefaultDomain    = "energy"
	DefaultMixMode   = "consumption"
	DefaultPrecision = 1
	DefaultLogLevel  = "info"
	DefaultLogFormat = logging.FormatConsole
)

// Config is the full carbonmap configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	State   StateConfig   `yaml:"state"`
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig controls how derived values are presented.
type DisplayConfig struct {
	Domain    string `yaml:"domain"`
	MixMode   string `yaml:"mix_mode"`
	Precision int    `yaml:"precision"`
}

// StateConfig points at the snapshot to read when no flag is given.
type StateConfig struct {
	File         string `yaml:"file"`
	CountriesDir string `yaml:"countries_dir"`
}

// LoggingConfig mirrors logging.Config in YAML form.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Domain:    DefaultDomain,
			MixMode:   DefaultMixMode,
			Precision: DefaultPrecision,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// New returns the configuration from the default config file with
// environment overrides applied. A missing or unreadable file leaves the
// defaults in place.
func New() *Config {
	cfg := Default()
	if dir, err := GetConfigDir(); err == nil {
		path := filepath.Join(dir, configFileName)
		if _, statErr := os.Stat(path); statErr == nil {
			if mergeErr := ShallowMergeYAML(cfg, path); mergeErr != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: ignoring config file %s: %v\n", path, mergeErr)
				cfg = Default()
			}
		}
	}
	cfg.ApplyEnv(os.LookupEnv)
	return cfg
}

// Load reads path onto the defaults and applies environment overrides.
// Unlike New, a broken file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := ShallowMergeYAML(cfg, path); err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv applies CARBONMAP_* overrides read through lookupEnv.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvStateFile); ok && v != "" {
		c.State.File = v
	}
	if v, ok := lookupEnv(EnvPrecision); ok && v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Display.Precision = p
		}
	}
}

// Validate checks enumerated fields and ranges.
func (c *Config) Validate() error {
	var errs []error
	if _, err := greenops.ParseDomain(c.Display.Domain); err != nil {
		errs = append(errs, fmt.Errorf("display.domain: %w", err))
	}
	if _, err := zone.ParseMixMode(c.Display.MixMode); err != nil {
		errs = append(errs, fmt.Errorf("display.mix_mode: %w", err))
	}
	if c.Display.Precision < 0 {
		errs = append(errs, fmt.Errorf("display.precision must be >= 0, got %d", c.Display.Precision))
	}
	switch c.Logging.Format {
	case logging.FormatConsole, logging.FormatJSON, "":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be %q or %q, got %q",
			logging.FormatConsole, logging.FormatJSON, c.Logging.Format))
	}
	return errors.Join(errs...)
}

// Domain returns the parsed display domain, falling back to energy.
func (c *Config) Domain() greenops.Domain {
	d, err := greenops.ParseDomain(c.Display.Domain)
	if err != nil {
		return greenops.DomainEnergy
	}
	return d
}

// MixMode returns the parsed display mix mode, falling back to consumption.
func (c *Config) MixMode() zone.MixMode {
	m, err := zone.ParseMixMode(c.Display.MixMode)
	if err != nil {
		return zone.MixModeConsumption
	}
	return m
}

// GetConfigDir returns the carbonmap configuration directory.
func GetConfigDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".carbonmap"), nil
}

// DefaultConfigPath returns the path of config.yaml inside GetConfigDir.
func DefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Save writes the configuration to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
