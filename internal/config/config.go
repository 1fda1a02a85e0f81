// Package config loads beamterms's CLI defaults: output format, color
// mode, and the scan-cache directory. Precedence, narrowest to widest:
// built-in defaults, an optional YAML config file, environment
// variable overrides, then command-line flags — each layer overrides
// only the fields it actually sets.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xyproto/env/v2"
	"gopkg.in/yaml.v3"
)

// Format is the CLI's default term-rendering output format.
type Format string

const (
	FormatText Format = "text"
	FormatCBOR Format = "cbor"
)

// Config holds beamterms's CLI defaults.
type Config struct {
	// Format names a rendering surface, text or cbor. No command reads
	// it: `beamterms decode` takes its format from its own --format
	// flag, and `beamterms scan` has no format option.
	Format Format `yaml:"format"`

	// Color names a color mode: auto, always, or never. No command
	// reads it; terminal output is always rendered with
	// render.DefaultTheme.
	Color string `yaml:"color"`

	// CacheDir is where internal/scancache stores scan reports.
	CacheDir string `yaml:"cache_dir"`
}

// Default returns beamterms's built-in configuration, used as the
// base before any config file, environment variable, or flag is
// applied.
func Default() Config {
	cacheDir := filepath.Join(userCacheHome(), "beamterms", "scan")
	return Config{
		Format:   FormatText,
		Color:    "auto",
		CacheDir: cacheDir,
	}
}

func userCacheHome() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return dir
	}
	return "."
}

// configFileEnvVar is the environment variable naming an explicit
// config file path, read by Load through github.com/xyproto/env/v2
// when no explicit path is given.
const configFileEnvVar = "BEAMTERMS_CONFIG"

// Load builds a Config by applying, in order, the built-in defaults,
// an optional YAML file (from configPath, falling back to
// BEAMTERMS_CONFIG when configPath is empty), and environment
// variable overrides. Command-line flags are applied afterward by the
// caller via ApplyFlags, since pflag parsing happens in cmd/beamterms
// and this package has no flag.FlagSet of its own.
func Load(configPath string) (Config, error) {
	cfg := Default()

	if configPath == "" {
		configPath = env.Str(configFileEnvVar, "")
	}
	if configPath != "" {
		if err := cfg.mergeFile(configPath); err != nil {
			return Config{}, err
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides applies BEAMTERMS_FORMAT, BEAMTERMS_COLOR, and
// BEAMTERMS_CACHE_DIR on top of whatever the defaults/file layers
// produced, each only when set.
func (c *Config) applyEnvOverrides() {
	c.Format = Format(env.Str("BEAMTERMS_FORMAT", string(c.Format)))
	c.Color = env.Str("BEAMTERMS_COLOR", c.Color)
	c.CacheDir = env.Str("BEAMTERMS_CACHE_DIR", c.CacheDir)
}

// ApplyFlags overrides fields with command-line flag values, each
// only when the given value is non-empty: an empty string means
// "flag not given".
func (c *Config) ApplyFlags(format, color, cacheDir string) {
	if format != "" {
		c.Format = Format(format)
	}
	if color != "" {
		c.Color = color
	}
	if cacheDir != "" {
		c.CacheDir = cacheDir
	}
}

// Validate checks that Format and Color hold recognized values.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatCBOR:
	default:
		return fmt.Errorf("config: invalid format %q, want %q or %q", c.Format, FormatText, FormatCBOR)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("config: invalid color mode %q, want auto, always, or never", c.Color)
	}
	return nil
}
