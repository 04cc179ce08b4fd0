package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"

	"github.com/charliek/cwlog/internal/constants"
	"github.com/charliek/cwlog/internal/domain"
)

// Config represents the top-level cwlog configuration
type Config struct {
	EnvFile   string          `yaml:"env_file"`
	AWS       AWSConfig       `yaml:"aws"`
	LogGroups LogGroupsConfig `yaml:"log_groups"`
	Search    SearchConfig    `yaml:"search"`
	Follow    FollowConfig    `yaml:"follow"`
	LogLevel  string          `yaml:"log_level"`
}

// AWSConfig selects the shared-config profile and region
type AWSConfig struct {
	Profile string `yaml:"profile"`
	Region  string `yaml:"region"`
}

// LogGroupsConfig narrows the listed log groups
type LogGroupsConfig struct {
	Prefix string `yaml:"prefix"` // name prefix sent to DescribeLogGroups
	Stage  string `yaml:"stage"`  // substring every listed name must contain
}

// SearchConfig defines query defaults
type SearchConfig struct {
	Timezone      string `yaml:"timezone"`
	KeywordWindow string `yaml:"keyword_window"`
	MaxEvents     int    `yaml:"max_events"`
}

// FollowConfig defines follow-mode polling
type FollowConfig struct {
	PollInterval string `yaml:"poll_interval"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads and parses a configuration file
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("checking config file: %w", err)
	}

	if err := CheckFilePermissions(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// LoadOrDefault loads path when it exists. A missing file is only an error
// when the operator named it explicitly.
func LoadOrDefault(path string, explicit bool) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if !explicit && errors.Is(err, domain.ErrConfigNotFound) {
		return Default(), nil
	}
	return nil, err
}

// Parse parses configuration from YAML bytes
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.EnvFile == "" {
		cfg.EnvFile = constants.DefaultEnvFile
	}
	if cfg.Search.Timezone == "" {
		cfg.Search.Timezone = constants.DefaultTimezone
	}
	if cfg.Search.KeywordWindow == "" {
		cfg.Search.KeywordWindow = constants.DefaultKeywordWindow.String()
	}
	if cfg.Search.MaxEvents == 0 {
		cfg.Search.MaxEvents = constants.DefaultMaxEvents
	}
	if cfg.Follow.PollInterval == "" {
		cfg.Follow.PollInterval = constants.DefaultPollInterval.String()
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = constants.DefaultLogLevel
	}
}

// Location returns the time zone local date input is read in
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Search.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", c.Search.Timezone, err)
	}
	return loc, nil
}

// KeywordWindow returns the look-back window of keyword-only searches
func (c *Config) KeywordWindow() time.Duration {
	d, err := time.ParseDuration(c.Search.KeywordWindow)
	if err != nil || d <= 0 {
		return constants.DefaultKeywordWindow
	}
	return d
}

// PollInterval returns the follow-mode poll interval
func (c *Config) PollInterval() time.Duration {
	d, err := time.ParseDuration(c.Follow.PollInterval)
	if err != nil || d <= 0 {
		return constants.DefaultPollInterval
	}
	return d
}
