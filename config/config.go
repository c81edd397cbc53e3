// Package config loads host settings for the lox command from a TOML or
// YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the ast and tokens commands.
const (
	FormatSExpr = "sexpr"
	FormatText  = "text"
	FormatYAML  = "yaml"
)

// Config holds the complete application configuration
type Config struct {
	REPL   REPLConfig   `toml:"repl" yaml:"repl"`
	Output OutputConfig `toml:"output" yaml:"output"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// REPLConfig holds interactive prompt settings
type REPLConfig struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	HistoryFile string `toml:"history_file" yaml:"history_file"`
}

// OutputConfig selects how results and diagnostics are printed
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
	Color  bool   `toml:"color" yaml:"color"`
}

// LogConfig holds debug logging settings
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.applyDefaults()
	cfg.REPL.HistoryFile = os.ExpandEnv(cfg.REPL.HistoryFile)

	return &cfg, nil
}

// LoadFromEnv loads configuration from the LOX_CONFIG environment variable,
// falling back to the default locations. With no file anywhere it returns
// the defaults.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("LOX_CONFIG")
	if path == "" {
		home, _ := os.UserHomeDir()
		defaultPaths := []string{
			"./lox.toml",
			"./lox.yaml",
			filepath.Join(home, ".config", "lox", "config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

func (c *Config) applyDefaults() {
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "> "
	}
	if c.REPL.HistoryFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.REPL.HistoryFile = filepath.Join(home, ".lox_history")
		}
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatSExpr
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

// ValidateFormat reports whether format is a known output format.
func ValidateFormat(format string) error {
	switch format {
	case FormatSExpr, FormatText, FormatYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}

func (c *Config) validate() error {
	if c.Output.Format != "" {
		if err := ValidateFormat(c.Output.Format); err != nil {
			return err
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
