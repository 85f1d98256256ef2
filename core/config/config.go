// File: config.go
// Title: Configuration Management Implementation
// Description: Implements loading, parsing and validating the loxgo CLI
//              configuration from TOML and YAML files with file extension
//              auto-detection and defaults.
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	loxlog "github.com/loxlang/loxgo/core/log"
	loxstringx "github.com/loxlang/loxgo/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config holds the loxgo CLI configuration
type Config struct {
	// Log configures the structured logger
	Log LogConfig `toml:"log" yaml:"log"`

	// REPL configures the interactive prompt
	REPL REPLConfig `toml:"repl" yaml:"repl"`

	// MaxSourceLength limits accepted source length in bytes
	MaxSourceLength int `toml:"max_source_length" yaml:"max_source_length"`
}

// LogConfig configures logging behavior
type LogConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error, fatal)
	Level string `toml:"level" yaml:"level"`

	// Format is the output format (json, text, console)
	Format string `toml:"format" yaml:"format"`
}

// REPLConfig configures the interactive prompt
type REPLConfig struct {
	// Prompt is the text shown before each input line
	Prompt string `toml:"prompt" yaml:"prompt"`

	// ShowTokens echoes the token sequence for each input line
	ShowTokens bool `toml:"show_tokens" yaml:"show_tokens"`

	// ShowTree echoes the expression tree for each input line
	ShowTree bool `toml:"show_tree" yaml:"show_tree"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  loxlog.DefaultLevel().String(),
			Format: "console",
		},
		REPL: REPLConfig{
			Prompt:     "> ",
			ShowTokens: false,
			ShowTree:   false,
		},
		MaxSourceLength: 65536,
	}
}

// Load loads configuration from a file, auto-detecting the format
func Load(filePath string) (*Config, error) {
	return LoadWithFormat(filePath, FormatAuto)
}

// LoadWithFormat loads configuration from a file with an explicit format
func LoadWithFormat(filePath string, format Format) (*Config, error) {
	if loxstringx.IsBlank(filePath) {
		return nil, fmt.Errorf("config file path cannot be empty")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", filePath)
	}

	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := parseContent(content, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filePath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filePath, err)
	}

	return cfg, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	cfg, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config from string: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format, filling in
// defaults for any omitted keys
func parseContent(content []byte, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return cfg, nil
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if _, err := loxlog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	if _, err := loxlog.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("log.format: %w", err)
	}

	if c.MaxSourceLength <= 0 {
		return fmt.Errorf("max_source_length must be positive, got %d", c.MaxSourceLength)
	}

	if loxstringx.IsEmpty(c.REPL.Prompt) {
		return fmt.Errorf("repl.prompt cannot be empty")
	}

	return nil
}

// LogLevel returns the parsed log level
func (c *Config) LogLevel() loxlog.Level {
	level, err := loxlog.ParseLevel(c.Log.Level)
	if err != nil {
		return loxlog.DefaultLevel()
	}
	return level
}

// LogFormat returns the parsed log format
func (c *Config) LogFormat() loxlog.Format {
	format, err := loxlog.ParseFormat(c.Log.Format)
	if err != nil {
		return loxlog.FormatConsole
	}
	return format
}

// String provides a readable representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{log: %s/%s, prompt: %q, maxSourceLength: %d}",
		c.Log.Level, c.Log.Format, c.REPL.Prompt, c.MaxSourceLength)
}
