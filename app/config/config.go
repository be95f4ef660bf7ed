package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// ModeTUI runs the terminal UI.
	ModeTUI = "tui"
	// ModeServe runs the HTTP adapter.
	ModeServe = "serve"

	// SeedDefault starts with the built-in sample assignments.
	SeedDefault = "default"
	// SeedNone starts with an empty list.
	SeedNone = "none"
)

// Config holds start-up settings. Nothing here is ever written back.
type Config struct {
	// Addr is the listen address for the HTTP adapter.
	Addr string `yaml:"addr"`

	// Seed is SeedDefault, SeedNone or the path of a YAML task file.
	Seed string `yaml:"seed"`

	// Mode selects the front end started by the bare command.
	Mode string `yaml:"mode"`

	// Verbose enables per-mutation logging.
	Verbose bool `yaml:"verbose"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Addr: ":8080",
		Seed: SeedDefault,
		Mode: ModeTUI,
	}
}

// Load builds a Config from defaults, the YAML file at path (if non-empty)
// and STUDYTASKS_* environment variables, in that order of precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.Addr = getEnv("STUDYTASKS_ADDR", cfg.Addr)
	cfg.Seed = getEnv("STUDYTASKS_SEED", cfg.Seed)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks that the settings can be used.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("config: addr must not be empty")
	}
	switch c.Mode {
	case ModeTUI, ModeServe:
	default:
		return fmt.Errorf("config: unknown mode %q", c.Mode)
	}
	if c.Seed == "" {
		c.Seed = SeedDefault
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
