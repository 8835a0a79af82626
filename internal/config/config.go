// Package config loads meshtint settings from built-in defaults, an optional
// TOML file and MESHTINT_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/jmylchreest/meshtint/internal/gradient"
	"github.com/jmylchreest/meshtint/internal/mesh"
)

// ErrInvalid is wrapped by every configuration error.
var ErrInvalid = errors.New("invalid configuration")

// Environment variables read by WithEnvConfig.
const (
	EnvSize      = "MESHTINT_SIZE"
	EnvSpeed     = "MESHTINT_SPEED"
	EnvAmplitude = "MESHTINT_AMPLITUDE"
	EnvPattern   = "MESHTINT_PATTERN"
	EnvFormat    = "MESHTINT_FORMAT"
)

// Config is the full CLI configuration.
type Config struct {
	Gradient gradient.Config `toml:"gradient"`
	Output   Output          `toml:"output"`

	// Source is the file the configuration was read from, if any.
	Source string `toml:"-"`
}

// Output controls how commands print results.
type Output struct {
	Format  string `toml:"format"`
	Preview bool   `toml:"preview"`
	Workers int    `toml:"workers"`
}

// ValidFormats lists the accepted output formats.
func ValidFormats() []string {
	return []string{"hex", "rgb", "json"}
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Gradient: gradient.DefaultConfig(),
		Output: Output{
			Format:  "hex",
			Preview: true,
		},
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := c.Gradient.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if !slices.Contains(ValidFormats(), c.Output.Format) {
		return fmt.Errorf("%w: unsupported format: %s (supported: hex, rgb, json)", ErrInvalid, c.Output.Format)
	}
	if c.Output.Workers < 0 {
		return fmt.Errorf("%w: workers cannot be negative, got %d", ErrInvalid, c.Output.Workers)
	}
	return nil
}

// DefaultPath returns $XDG_CONFIG_HOME/meshtint/config.toml (or the
// platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "meshtint", "config.toml"), nil
}

// Builder assembles a Config.
type Builder struct {
	config         Config
	filePath       string
	useDefaultFile bool
	useEnv         bool
}

// NewBuilder starts from Default.
func NewBuilder() *Builder {
	return &Builder{config: Default()}
}

// WithFile reads the given TOML file. A missing file is an error.
func (b *Builder) WithFile(path string) *Builder {
	b.filePath = path
	return b
}

// WithDefaultFile reads DefaultPath when it exists and WithFile was not used.
func (b *Builder) WithDefaultFile() *Builder {
	b.useDefaultFile = true
	return b
}

// WithEnvConfig applies MESHTINT_* overrides after any file.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// Build loads and validates the configuration.
func (b *Builder) Build() (Config, error) {
	config := b.config

	path := b.filePath
	if path == "" && b.useDefaultFile {
		if p, err := DefaultPath(); err == nil {
			if _, statErr := os.Stat(p); statErr == nil {
				path = p
			}
		}
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &config); err != nil {
			return Config{}, fmt.Errorf("%w: failed to read %s: %w", ErrInvalid, path, err)
		}
		config.Source = path
	}

	if b.useEnv {
		if err := applyEnv(&config); err != nil {
			return Config{}, err
		}
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func applyEnv(config *Config) error {
	if v := os.Getenv(EnvSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, EnvSize, err)
		}
		config.Gradient.Size = n
	}
	if v := os.Getenv(EnvSpeed); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, EnvSpeed, err)
		}
		config.Gradient.Speed = f
	}
	if v := os.Getenv(EnvAmplitude); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, EnvAmplitude, err)
		}
		config.Gradient.Amplitude = f
	}
	if v := os.Getenv(EnvPattern); v != "" {
		p, err := mesh.ParsePattern(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, EnvPattern, err)
		}
		config.Gradient.Pattern = p
	}
	if v := os.Getenv(EnvFormat); v != "" {
		config.Output.Format = v
	}
	return nil
}
