// Package config loads the cleaner's static run configuration from a YAML
// file, with environment variables (optionally sourced from a .env file next
// to the process) taking precedence for the deployment-specific fields.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Environment variable overrides. They win over the YAML file so one shared
// config can be redirected per host or flipped to LIVE without editing it.
const (
	EnvTargetDir = "FILECLEANER_TARGET_DIR"
	EnvLogDir    = "FILECLEANER_LOG_DIR"
	EnvMode      = "FILECLEANER_MODE"
)

const (
	DefaultAgeHours      = 72
	DefaultRetentionDays = 14
	DefaultMode          = "TEST"
)

// PatternConfig is one matching rule as written in the config file.
type PatternConfig struct {
	Substring string `yaml:"substring"`
	Extension string `yaml:"extension"`
}

// Config is the static configuration for one run.
type Config struct {
	TargetDir     string          `yaml:"target_dir"`
	Patterns      []PatternConfig `yaml:"patterns"`
	AgeHours      int             `yaml:"age_hours"`
	LogDir        string          `yaml:"log_dir"`
	RetentionDays int             `yaml:"retention_days"`
	Mode          string          `yaml:"mode"`
}

// Load reads, overlays and validates the configuration at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.SetStrict(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	// Best-effort .env load; absence is the common case.
	_ = godotenv.Load()
	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvTargetDir); v != "" {
		c.TargetDir = v
	}
	if v := os.Getenv(EnvLogDir); v != "" {
		c.LogDir = v
	}
	if v := os.Getenv(EnvMode); v != "" {
		c.Mode = v
	}
}

func (c *Config) applyDefaults() {
	if c.AgeHours == 0 {
		c.AgeHours = DefaultAgeHours
	}
	if c.RetentionDays == 0 {
		c.RetentionDays = DefaultRetentionDays
	}
	if c.Mode == "" {
		c.Mode = DefaultMode
	}
}

// Validate checks the invariants no later component re-checks.
func (c *Config) Validate() error {
	if c.TargetDir == "" {
		return fmt.Errorf("target_dir is required")
	}
	if c.LogDir == "" {
		return fmt.Errorf("log_dir is required")
	}
	if c.AgeHours < 0 {
		return fmt.Errorf("age_hours must not be negative (got %d)", c.AgeHours)
	}
	if c.RetentionDays < 0 {
		return fmt.Errorf("retention_days must not be negative (got %d)", c.RetentionDays)
	}
	for i, p := range c.Patterns {
		// Extensions are compared against filepath.Ext output, which always
		// carries the dot. A dotless "pdf" would silently never match.
		if p.Extension != "" && !strings.HasPrefix(p.Extension, ".") {
			return fmt.Errorf("patterns[%d]: extension %q must start with '.'", i, p.Extension)
		}
	}
	return nil
}
