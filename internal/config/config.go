// Package config loads csstok settings from TOML, YAML or CUE files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/iamdustan/postcss/internal/logging"
	"github.com/iamdustan/postcss/scanner"
	"github.com/iamdustan/postcss/token/dump"
)

// ErrUnknownFormat is returned for config files with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown config format")

// Config holds csstok settings.
type Config struct {
	// Output format for token dumps: text, json or yaml.
	Format string `toml:"format" yaml:"format" json:"format"`

	// Color styles text dumps.
	Color bool `toml:"color" yaml:"color" json:"color"`

	// Lenient turns unexpected characters into word tokens.
	Lenient bool `toml:"lenient" yaml:"lenient" json:"lenient"`

	// MaxDepth limits nested recursively tokenized brackets.
	MaxDepth int `toml:"max_depth" yaml:"max_depth" json:"max_depth"`

	LogLevel string `toml:"log_level" yaml:"log_level" json:"log_level"`
	LogFile  string `toml:"log_file" yaml:"log_file" json:"log_file"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Format:   string(dump.FormatText),
		MaxDepth: scanner.DefaultMaxDepth,
		LogLevel: "warn",
	}
}

// Load reads the file at path over the defaults.
// The format is chosen by the file extension.
func Load(path string) (Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return cfg, fmt.Errorf("parse toml config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("parse yaml config %s: %w", path, err)
		}
	case ".cue":
		value := cuecontext.New().CompileBytes(content, cue.Filename(path))
		if err := value.Err(); err != nil {
			return cfg, fmt.Errorf("parse cue config %s: %w", path, err)
		}
		if err := value.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("decode cue config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	return cfg, cfg.Validate()
}

// Validate checks that all settings are usable.
func (c Config) Validate() error {
	if _, err := dump.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ScannerOptions returns the scanner options described by c.
func (c Config) ScannerOptions() scanner.Options {
	return scanner.Options{Lenient: c.Lenient, MaxDepth: c.MaxDepth}
}
