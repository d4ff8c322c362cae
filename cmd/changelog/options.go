package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reillywatson/changelogger/internal/cache"
	"github.com/reillywatson/changelogger/internal/changelog"
	"github.com/reillywatson/changelogger/internal/config"
	"github.com/reillywatson/changelogger/internal/gitrepo"
	"github.com/reillywatson/changelogger/internal/metrics"
	"github.com/reillywatson/changelogger/internal/platform"
	"github.com/reillywatson/changelogger/internal/transport"
	"github.com/reillywatson/changelogger/internal/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ChangelogOption option for the changelog command
type ChangelogOption struct {
	*logrus.Logger
	Config *config.Config

	viper   *viper.Viper
	metrics *metrics.Collector

	// detectRemote and workDir locate the repository when owner or name are not given
	detectRemote func(path, remote string) (gitrepo.Remote, error)
	workDir      string
}

// NewChangelogOption creates a new ChangelogOption instance
func NewChangelogOption() *ChangelogOption {
	return &ChangelogOption{
		Logger:       logrus.New(),
		Config:       config.NewDefaultConfig(),
		viper:        viper.New(),
		metrics:      metrics.New(),
		detectRemote: gitrepo.Detect,
		workDir:      ".",
	}
}

// AddFlags add flags to options
func (o *ChangelogOption) AddFlags(flags *pflag.FlagSet) {
	c := o.Config

	// Platform and authentication configuration
	flags.StringVar(&c.Platform, "platform", c.Platform, "Git platform (github or gitlab)")
	flags.StringVar(&c.Token, "token", "", "Git platform API token for authentication")
	flags.StringVar(&c.BaseURL, "base-url", "", "API base URL (optional, defaults per platform)")

	// Repository configuration
	flags.StringVar(&c.Owner, "repo-owner", "", "Repository owner (detected from the git remote when empty)")
	flags.StringVar(&c.Repo, "repo-name", "", "Repository name (detected from the git remote when empty)")
	flags.StringVar(&c.Remote, "remote", c.Remote, "Git remote used to detect owner and name")
	flags.StringVar(&c.BaseBranch, "base-branch", c.BaseBranch, "Branch the integration pull request was merged into")

	// Output configuration
	flags.StringVarP(&c.Output, "output", "o", c.Output, "Output format (markdown|text|json|yaml)")
	flags.StringVar(&c.OutputFile, "output-file", "", "Write the changelog to this file instead of stdout")
	flags.StringVar(&c.MetricsFile, "metrics-file", "", "Write Prometheus metrics in textfile format to this path")

	// Cache configuration
	flags.BoolVar(&c.NoCache, "no-cache", false, "Disable the response cache")
	flags.StringVar(&c.CacheDir, "cache-dir", "", "Cache directory (default: user cache dir)")
	flags.DurationVar(&c.CacheTTL, "cache-ttl", c.CacheTTL, "How long commit associations are cached")

	// Transport configuration
	flags.Float64Var(&c.RateLimit, "rate-limit", c.RateLimit, "Maximum API requests per second (0 disables limiting)")
	flags.IntVar(&c.MaxPages, "max-pages", c.MaxPages, "Pages of closed pull requests to scan (0 for all)")
	flags.DurationVar(&c.Timeout, "timeout", c.Timeout, "Timeout for each API request")

	// Logging configuration
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")
	flags.BoolVar(&c.Verbose, "verbose", false, "Enable verbose logging (debug level logs)")

	flags.StringVar(&c.ConfigFile, "config", "", "Path to a YAML config file using flag names as keys")
}

// Run generates the changelog and writes it to stdout or the configured output file
func (o *ChangelogOption) Run(ctx context.Context, stdout io.Writer) error {
	if err := o.initialize(true); err != nil {
		return err
	}

	format, err := changelog.ParseFormat(o.Config.Output)
	if err != nil {
		return err
	}

	client, closeClient, err := o.newClient()
	if err != nil {
		return err
	}
	defer closeClient()

	generator := changelog.NewGenerator(client, changelog.Options{
		Repository: o.Config.Repository(),
		BaseBranch: o.Config.BaseBranch,
		Logger:     o.Logger,
		Observer:   o.metrics,
	})

	cl, runErr := generator.Run(ctx)
	o.writeMetrics()
	if runErr != nil {
		if errors.Is(runErr, changelog.ErrNoMergedPullRequest) {
			return fmt.Errorf("nothing to changelog: %w", runErr)
		}
		return fmt.Errorf("failed to generate changelog: %w", runErr)
	}

	return o.writeChangelog(stdout, cl, format)
}

// initialize reads configuration from flags, environment and config file, then validates it.
// whoami does not need a repository, so requireRepository is false there.
func (o *ChangelogOption) initialize(requireRepository bool) error {
	if err := config.BindEnv(o.viper); err != nil {
		return fmt.Errorf("failed to bind environment: %w", err)
	}
	if err := o.Config.Load(o.viper); err != nil {
		return err
	}

	// Set log level based on verbose flag
	if o.Config.Verbose {
		o.SetLevel(logrus.DebugLevel)
		o.Debug("Verbose logging enabled")
	} else {
		level, err := logrus.ParseLevel(o.Config.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", o.Config.LogLevel, err)
		}
		o.SetLevel(level)
	}

	if requireRepository && (o.Config.Owner == "" || o.Config.Repo == "") {
		o.detectRepository()
	}
	o.Debugf("Configuration: %s", o.Config.DebugString())

	err := o.Config.Validate()
	if !requireRepository && (errors.Is(err, config.ErrMissingOwner) || errors.Is(err, config.ErrMissingRepo)) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// detectRepository fills owner and name from the local git remote. Failures are
// left for Validate to report.
func (o *ChangelogOption) detectRepository() {
	remote, err := o.detectRemote(o.workDir, o.Config.Remote)
	if err != nil {
		o.Debugf("Could not detect repository from git remote %q: %v", o.Config.Remote, err)
		return
	}
	if o.Config.Owner == "" {
		o.Config.Owner = remote.Repository.Owner
	}
	if o.Config.Repo == "" {
		o.Config.Repo = remote.Repository.Name
	}
	o.WithFields(logrus.Fields{
		"remote": o.Config.Remote,
		"host":   remote.Host,
	}).Infof("Using repository %s from git remote", o.Config.Repository())
	if remote.Platform() != o.Config.Platform {
		o.Warnf("Remote host %s looks like %s but platform is %s", remote.Host, remote.Platform(), o.Config.Platform)
	}
}

// newClient builds the platform client stack: rate-limited transport, platform
// adapter, query metrics and, unless disabled, the response cache.
func (o *ChangelogOption) newClient() (platform.Client, func(), error) {
	headers := map[string]string{}
	if o.Config.Platform == "github" {
		headers["X-GitHub-Api-Version"] = transport.GitHubAPIVersion
	}
	httpClient := transport.NewHTTPClient(transport.Options{
		RequestsPerSecond: o.Config.RateLimit,
		Burst:             1,
		Timeout:           o.Config.Timeout,
		UserAgent:         version.UserAgent(),
		Headers:           headers,
	})

	client, err := platform.NewClient(o.Logger, platform.Options{
		Platform:   o.Config.Platform,
		Token:      o.Config.Token,
		BaseURL:    o.Config.BaseURL,
		UserAgent:  version.UserAgent(),
		HTTPClient: httpClient,
		MaxPages:   o.Config.MaxPages,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s client: %w", o.Config.Platform, err)
	}

	instrumented := platform.NewInstrumentedClient(client, o.metrics)
	if o.Config.NoCache {
		return instrumented, func() {}, nil
	}

	store, err := o.newCache()
	if err != nil {
		o.Warnf("Running without cache: %v", err)
		return instrumented, func() {}, nil
	}
	cached := platform.NewCachedClient(instrumented, store, o.cacheNamespace(), o.Config.CacheTTL, o.Logger).
		WithObserver(o.metrics)
	return cached, func() {
		if err := cached.Close(); err != nil {
			o.Debugf("Failed to close cache: %v", err)
		}
	}, nil
}

func (o *ChangelogOption) newCache() (cache.Cache, error) {
	if o.Config.CacheDir != "" {
		return cache.NewFileCacheWithDir(o.Config.CacheDir)
	}
	return cache.NewDefaultCache()
}

// cacheNamespace keeps entries of different platforms and hosts apart.
func (o *ChangelogOption) cacheNamespace() string {
	if o.Config.BaseURL == "" {
		return o.Config.Platform
	}
	return o.Config.Platform + "@" + o.Config.BaseURL
}

func (o *ChangelogOption) writeChangelog(stdout io.Writer, cl *changelog.Changelog, format changelog.Format) error {
	if o.Config.OutputFile == "" {
		return changelog.Render(stdout, cl, format)
	}

	f, err := os.Create(o.Config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := changelog.Render(f, cl, format); err != nil {
		f.Close()
		return fmt.Errorf("failed to write changelog: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write changelog: %w", err)
	}
	o.Infof("Wrote %d entries to %s", len(cl.Entries), o.Config.OutputFile)
	return nil
}

func (o *ChangelogOption) writeMetrics() {
	if o.Config.MetricsFile == "" {
		return
	}
	if err := o.metrics.WriteTextfile(o.Config.MetricsFile); err != nil {
		o.Warnf("Failed to write metrics to %s: %v", o.Config.MetricsFile, err)
	}
}
