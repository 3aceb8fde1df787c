// Package config loads ccb settings and resolves the benefits data file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// EnvDataFile overrides the benefits data file location.
	EnvDataFile = "BENEFITS_DATA_FILE"

	// DefaultDataFile is used relative to the working directory when nothing
	// else selects a path.
	DefaultDataFile = "credit_card_benefits.json"
)

// Config holds all ccb configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataFile string `toml:"data_file,omitempty"`
	LogLevel string `toml:"log_level"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			LogLevel: "warn",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ccb")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ccb"
	}
	return filepath.Join(home, ".config", "ccb")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config file at path, returning defaults if it doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's config file
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to the default location.
func Save(cfg Config) error {
	return SaveTo(cfg, Path())
}

// SaveTo writes the config to path.
func SaveTo(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // path is the user's config file
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// DataFile returns the benefits file path: the environment variable first,
// then the config file, then DefaultDataFile.
func DataFile(cfg Config) string {
	if p := strings.TrimSpace(os.Getenv(EnvDataFile)); p != "" {
		return p
	}
	if cfg.General.DataFile != "" {
		return cfg.General.DataFile
	}
	return DefaultDataFile
}

// DataFileSource names where DataFile took its value from.
func DataFileSource(cfg Config) string {
	switch {
	case strings.TrimSpace(os.Getenv(EnvDataFile)) != "":
		return "env " + EnvDataFile
	case cfg.General.DataFile != "":
		return "config file"
	default:
		return "default"
	}
}

// ParseLogLevel maps a level name to a slog level, defaulting to warn.
func ParseLogLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelWarn
	}
	return lvl
}
