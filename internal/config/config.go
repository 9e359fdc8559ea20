package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

const appName = "termtarot"

var ErrPathNotFound = errors.New("path not found")

// Kind identifies which library a path belongs to
type Kind string

const (
	Decks   Kind = "decks"
	Spreads Kind = "spreads"
)

// Singular returns the element name used in messages, e.g. "deck"
func (k Kind) Singular() string {
	return strings.TrimSuffix(string(k), "s")
}

// Config represents the application configuration
type Config struct {
	DefaultDeck   string `toml:"default_deck"`
	DefaultSpread string `toml:"default_spread"`
	Pager         string `toml:"pager"`
}

// Env holds overrides read from the environment
type Env struct {
	Deck   string `env:"TERMTAROT_DECK"`
	Spread string `env:"TERMTAROT_SPREAD"`
	Pager  string `env:"PAGER"`
}

// LoadEnv parses environment overrides
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetLibraryPath returns the library directory for decks or spreads
func GetLibraryPath(kind Kind) string {
	return filepath.Join(GetXDGDataHome(), appName, string(kind))
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return &config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := &Config{
		Pager: "less",
	}

	if err := saveConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// SetDefault stores the default deck or spread in the config
func SetDefault(kind Kind, name string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	switch kind {
	case Decks:
		config.DefaultDeck = name
	case Spreads:
		config.DefaultSpread = name
	default:
		return fmt.Errorf("unknown library kind: %s", kind)
	}

	return saveConfig(config)
}

// Default returns the configured default for kind
func (c *Config) Default(kind Kind) string {
	if kind == Decks {
		return c.DefaultDeck
	}
	return c.DefaultSpread
}

// PagerCommand returns the pager to use, preferring the environment
func PagerCommand(e Env, c *Config) string {
	if e.Pager != "" {
		return e.Pager
	}
	if c != nil && c.Pager != "" {
		return c.Pager
	}
	return "less"
}

// GetElementPath returns the path to a deck or spread, either in the library
// or a filesystem path
func GetElementPath(kind Kind, name string) (string, error) {
	// First, try to find the entry in the library
	libraryPath := filepath.Join(GetLibraryPath(kind), name)
	if _, err := os.Stat(libraryPath); err == nil {
		return libraryPath, nil
	}

	// If not found in the library, treat as a path
	expanded := ExpandHome(name)
	if _, err := os.Stat(expanded); err == nil {
		return expanded, nil
	}

	return "", fmt.Errorf("%w: %s %s", ErrPathNotFound, kind.Singular(), name)
}

// ResolvePath picks the path for kind: the flag value, then the environment,
// then the config default, then the whole library directory.
func ResolvePath(kind Kind, flagValue string, e Env, c *Config) (string, error) {
	candidates := []struct {
		source string
		value  string
	}{
		{"flag", flagValue},
		{"environment", envValue(kind, e)},
		{"config", c.Default(kind)},
	}

	for _, candidate := range candidates {
		if candidate.value == "" {
			continue
		}
		slog.Debug("resolving path", "kind", kind, "source", candidate.source, "value", candidate.value)
		return GetElementPath(kind, candidate.value)
	}

	libraryPath := GetLibraryPath(kind)
	if _, err := os.Stat(libraryPath); err != nil {
		return "", fmt.Errorf("%w: no %s path supplied and library %s does not exist (run '%s %s init')",
			ErrPathNotFound, kind.Singular(), libraryPath, appName, kind.Singular())
	}
	return libraryPath, nil
}

func envValue(kind Kind, e Env) string {
	if kind == Decks {
		return e.Deck
	}
	return e.Spread
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}
