// Package config provides configuration management for the changelog command
package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/reillywatson/changelogger/internal/changelog"
	"github.com/reillywatson/changelogger/internal/platform"
)

// Config holds the configuration for a changelog run
type Config struct {
	// Platform configuration
	Platform string `json:"platform" yaml:"platform" mapstructure:"platform"`
	Token    string `json:"token" yaml:"token" mapstructure:"token"`
	BaseURL  string `json:"base_url,omitempty" yaml:"base_url,omitempty" mapstructure:"base-url"`

	// Repository configuration. Owner and Repo are detected from Remote when empty.
	Owner      string `json:"owner" yaml:"owner" mapstructure:"repo-owner"`
	Repo       string `json:"repo" yaml:"repo" mapstructure:"repo-name"`
	Remote     string `json:"remote,omitempty" yaml:"remote,omitempty" mapstructure:"remote"`
	BaseBranch string `json:"base_branch" yaml:"base_branch" mapstructure:"base-branch"`

	// Output configuration
	Output      string `json:"output" yaml:"output" mapstructure:"output"`
	OutputFile  string `json:"output_file,omitempty" yaml:"output_file,omitempty" mapstructure:"output-file"`
	MetricsFile string `json:"metrics_file,omitempty" yaml:"metrics_file,omitempty" mapstructure:"metrics-file"`

	// Cache configuration
	NoCache  bool          `json:"no_cache,omitempty" yaml:"no_cache,omitempty" mapstructure:"no-cache"`
	CacheDir string        `json:"cache_dir,omitempty" yaml:"cache_dir,omitempty" mapstructure:"cache-dir"`
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl" mapstructure:"cache-ttl"`

	// Transport configuration
	RateLimit float64       `json:"rate_limit" yaml:"rate_limit" mapstructure:"rate-limit"`
	MaxPages  int           `json:"max_pages" yaml:"max_pages" mapstructure:"max-pages"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// Logging configuration
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log-level"`
	Verbose  bool   `json:"verbose,omitempty" yaml:"verbose,omitempty" mapstructure:"verbose"`

	ConfigFile string `json:"config_file,omitempty" yaml:"config_file,omitempty" mapstructure:"config"`
}

// NewDefaultConfig returns a new Config with default values
func NewDefaultConfig() *Config {
	return &Config{
		Platform:   "github",
		Remote:     "origin",
		BaseBranch: "master",
		Output:     string(changelog.FormatMarkdown),
		CacheTTL:   10 * time.Minute,
		RateLimit:  10,
		MaxPages:   3,
		Timeout:    60 * time.Second,
		LogLevel:   "info",
	}
}

// Repository returns the configured repository.
func (c *Config) Repository() platform.Repository {
	return platform.Repository{Owner: c.Owner, Name: c.Repo}
}

// DebugString returns a JSON representation of the config with sensitive information redacted
func (c *Config) DebugString() string {
	debugConfig := *c
	if debugConfig.Token != "" {
		debugConfig.Token = "[REDACTED]"
	}

	data, err := json.MarshalIndent(debugConfig, "", "  ")
	if err != nil {
		return fmt.Sprintf("failed to marshal config: %v", err)
	}
	return string(data)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Platform == "" {
		return ErrMissingPlatform
	}
	if c.Token == "" {
		return ErrMissingToken
	}
	if c.Owner == "" {
		return ErrMissingOwner
	}
	if c.Repo == "" {
		return ErrMissingRepo
	}
	if c.BaseBranch == "" {
		return ErrMissingBaseBranch
	}
	if _, err := changelog.ParseFormat(c.Output); err != nil {
		return ErrInvalidOutput
	}
	if c.MaxPages < 0 {
		return ErrInvalidMaxPages
	}
	if c.RateLimit < 0 {
		return ErrInvalidRateLimit
	}
	return nil
}

func (c *Config) trim() {
	c.Platform = strings.ToLower(strings.TrimSpace(c.Platform))
	c.Token = strings.TrimSpace(c.Token)
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	c.Owner = strings.TrimSpace(c.Owner)
	c.Repo = strings.TrimSpace(c.Repo)
	c.Remote = strings.TrimSpace(c.Remote)
	c.BaseBranch = strings.TrimSpace(c.BaseBranch)
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	c.OutputFile = strings.TrimSpace(c.OutputFile)
	c.MetricsFile = strings.TrimSpace(c.MetricsFile)
	c.CacheDir = strings.TrimSpace(c.CacheDir)
	c.LogLevel = strings.TrimSpace(c.LogLevel)
}
