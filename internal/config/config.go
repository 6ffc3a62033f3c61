// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/vmunix/arrsync/internal/arr"
)

// Defaults applied by Load.
const (
	DefaultLogLevel     = "info"
	DefaultTimeout      = 30 * time.Second
	DefaultSlowTimeout  = 90 * time.Second
	DefaultPollInterval = 5 * time.Second
	DefaultIndexDelay   = 5 * time.Second
)

// Config is the root configuration structure.
type Config struct {
	Log       LogConfig        `toml:"log"`
	HTTP      HTTPConfig       `toml:"http"`
	Queue     QueueConfig      `toml:"queue"`
	Indexing  IndexingConfig   `toml:"indexing"`
	Lookup    LookupConfig     `toml:"lookup"`
	Instances []InstanceConfig `toml:"instances"`
}

type LogConfig struct {
	Level string `toml:"level"`
	// File enables a rotated log file instead of stderr.
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

type HTTPConfig struct {
	Timeout     time.Duration `toml:"timeout"`
	SlowTimeout time.Duration `toml:"slow_timeout"`
	UserAgent   string        `toml:"user_agent"`
}

type QueueConfig struct {
	PollInterval time.Duration `toml:"poll_interval"`
}

type IndexingConfig struct {
	Enabled bool          `toml:"enabled"`
	Delay   time.Duration `toml:"delay"`
}

type LookupConfig struct {
	Rank bool `toml:"rank"`
}

// InstanceConfig describes one Radarr or Sonarr server.
type InstanceConfig struct {
	ID     string `toml:"id"`
	Label  string `toml:"label"`
	Kind   string `toml:"kind"`
	URL    string `toml:"url"`
	APIKey string `toml:"api_key"`
	// Slow selects the long timeout for servers behind slow links.
	Slow bool `toml:"slow"`
}

// Instance converts the entry. Without an explicit id, the id is derived
// from the URL so it stays the same across runs.
func (c InstanceConfig) Instance() (arr.Instance, error) {
	kind, err := arr.ParseKind(c.Kind)
	if err != nil {
		return arr.Instance{}, err
	}
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(strings.TrimSuffix(c.URL, "/")))
	if c.ID != "" {
		if id, err = uuid.Parse(c.ID); err != nil {
			return arr.Instance{}, fmt.Errorf("instance id %q: %w", c.ID, err)
		}
	}
	label := c.Label
	if label == "" {
		label = string(kind)
	}
	return arr.Instance{ID: id, Kind: kind, Label: label, URL: c.URL, APIKey: c.APIKey, Slow: c.Slow}, nil
}

// ArrInstances converts every configured instance.
func (c *Config) ArrInstances() ([]arr.Instance, error) {
	out := make([]arr.Instance, 0, len(c.Instances))
	for i, ic := range c.Instances {
		inst, err := ic.Instance()
		if err != nil {
			return nil, fmt.Errorf("instances[%d]: %w", i, err)
		}
		out = append(out, inst)
	}
	return out, nil
}

// Find returns the instance whose label or id matches key.
func (c *Config) Find(key string) (arr.Instance, error) {
	instances, err := c.ArrInstances()
	if err != nil {
		return arr.Instance{}, err
	}
	for _, inst := range instances {
		if strings.EqualFold(inst.Label, key) || inst.ID.String() == key {
			return inst, nil
		}
	}
	return arr.Instance{}, fmt.Errorf("%w: %q", ErrUnknownInstance, key)
}

// ErrUnknownInstance is returned by Find when no instance matches.
var ErrUnknownInstance = errors.New("unknown instance")

// Load reads, substitutes, decodes and validates the configuration file.
// Failures are reported as a *ConfigError.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}
	cerr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cerr.HasErrors() {
		return nil, cerr
	}
	return cfg, nil
}

// LoadWithoutValidation reads the configuration and applies defaults but
// skips validation and ignores unresolved variables.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	env, err := dotenv(filepath.Join(filepath.Dir(path), ".env"))
	if err != nil {
		return nil, nil, err
	}
	content, missing := substitute(string(data), env)

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, missing, nil
}

// dotenv reads a .env file next to the configuration. A missing file is not
// an error.
func dotenv(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return env, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.HTTP.Timeout == 0 {
		c.HTTP.Timeout = DefaultTimeout
	}
	if c.HTTP.SlowTimeout == 0 {
		c.HTTP.SlowTimeout = DefaultSlowTimeout
	}
	if c.Queue.PollInterval == 0 {
		c.Queue.PollInterval = DefaultPollInterval
	}
	if c.Indexing.Delay == 0 {
		c.Indexing.Delay = DefaultIndexDelay
	}
}
