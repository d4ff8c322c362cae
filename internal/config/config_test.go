package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/reillywatson/changelogger/internal/config"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func validConfig() *config.Config {
	cfg := config.NewDefaultConfig()
	cfg.Token = "test-token"
	cfg.Owner = "koel"
	cfg.Repo = "koel"
	return cfg
}

// setEnv sets key until the current test finishes.
func setEnv(key, value string) {
	old, had := os.LookupEnv(key)
	Expect(os.Setenv(key, value)).To(Succeed())
	DeferCleanup(func() {
		if had {
			os.Setenv(key, old)
		} else {
			os.Unsetenv(key)
		}
	})
}

func unsetEnv(keys ...string) {
	for _, key := range keys {
		if old, had := os.LookupEnv(key); had {
			Expect(os.Unsetenv(key)).To(Succeed())
			DeferCleanup(os.Setenv, key, old)
		}
	}
}

var _ = Describe("Config", func() {
	Describe("NewDefaultConfig", func() {
		It("should return a new config with default values", func() {
			cfg := config.NewDefaultConfig()

			Expect(cfg).NotTo(BeNil())
			Expect(cfg.Platform).To(Equal("github"))
			Expect(cfg.BaseBranch).To(Equal("master"))
			Expect(cfg.Output).To(Equal("markdown"))
			Expect(cfg.Remote).To(Equal("origin"))
			Expect(cfg.NoCache).To(BeFalse())
			Expect(cfg.CacheTTL).To(Equal(10 * time.Minute))
			Expect(cfg.RateLimit).To(Equal(10.0))
			Expect(cfg.MaxPages).To(Equal(3))
			Expect(cfg.Timeout).To(Equal(time.Minute))
			Expect(cfg.LogLevel).To(Equal("info"))
		})
	})

	Describe("Validate", func() {
		DescribeTable("should validate configuration correctly",
			func(mutate func(*config.Config), expectedError error) {
				cfg := validConfig()
				mutate(cfg)

				err := cfg.Validate()
				if expectedError == nil {
					Expect(err).NotTo(HaveOccurred())
				} else {
					Expect(err).To(MatchError(expectedError))
				}
			},
			Entry("valid configuration", func(*config.Config) {}, nil),
			Entry("missing platform", func(c *config.Config) { c.Platform = "" }, config.ErrMissingPlatform),
			Entry("missing token", func(c *config.Config) { c.Token = "" }, config.ErrMissingToken),
			Entry("missing owner", func(c *config.Config) { c.Owner = "" }, config.ErrMissingOwner),
			Entry("missing repo", func(c *config.Config) { c.Repo = "" }, config.ErrMissingRepo),
			Entry("missing base branch", func(c *config.Config) { c.BaseBranch = "" }, config.ErrMissingBaseBranch),
			Entry("unknown output", func(c *config.Config) { c.Output = "html" }, config.ErrInvalidOutput),
			Entry("negative max pages", func(c *config.Config) { c.MaxPages = -1 }, config.ErrInvalidMaxPages),
			Entry("negative rate limit", func(c *config.Config) { c.RateLimit = -0.5 }, config.ErrInvalidRateLimit),
			Entry("unbounded pages", func(c *config.Config) { c.MaxPages = 0 }, nil),
			Entry("yaml output", func(c *config.Config) { c.Output = "yaml" }, nil),
		)
	})

	Describe("DebugString", func() {
		It("should redact the token", func() {
			cfg := validConfig()
			cfg.Token = "ghp_secret"

			out := cfg.DebugString()
			Expect(out).NotTo(ContainSubstring("ghp_secret"))
			Expect(out).To(ContainSubstring("[REDACTED]"))
			Expect(out).To(ContainSubstring(`"owner": "koel"`))
			Expect(cfg.Token).To(Equal("ghp_secret"))
		})

		It("should leave an empty token empty", func() {
			cfg := config.NewDefaultConfig()
			Expect(cfg.DebugString()).To(ContainSubstring(`"token": ""`))
		})
	})

	Describe("Repository", func() {
		It("should combine owner and repo", func() {
			Expect(validConfig().Repository().String()).To(Equal("koel/koel"))
		})
	})

	Describe("Load", func() {
		var (
			v   *viper.Viper
			cfg *config.Config
		)

		BeforeEach(func() {
			unsetEnv("CHANGELOG_TOKEN", "GITHUB_TOKEN", "GITHUB_ACCESS_TOKEN", "GITLAB_TOKEN",
				"CHANGELOG_BASE_BRANCH", "CHANGELOG_CACHE_TTL", "CHANGELOG_OUTPUT", "CHANGELOG_CONFIG")
			v = viper.New()
			Expect(config.BindEnv(v)).To(Succeed())
			cfg = config.NewDefaultConfig()
		})

		It("should keep defaults when nothing is set", func() {
			Expect(cfg.Load(v)).To(Succeed())
			Expect(cfg).To(Equal(config.NewDefaultConfig()))
		})

		It("should read prefixed environment variables", func() {
			setEnv("CHANGELOG_BASE_BRANCH", " develop\n")
			setEnv("CHANGELOG_CACHE_TTL", "5m")
			setEnv("CHANGELOG_OUTPUT", "JSON")

			Expect(cfg.Load(v)).To(Succeed())
			Expect(cfg.BaseBranch).To(Equal("develop"))
			Expect(cfg.CacheTTL).To(Equal(5 * time.Minute))
			Expect(cfg.Output).To(Equal("json"))
		})

		It("should fall back to platform token variables", func() {
			setEnv("GITLAB_TOKEN", "glpat-123")

			Expect(cfg.Load(v)).To(Succeed())
			Expect(cfg.Token).To(Equal("glpat-123"))
		})

		It("should prefer CHANGELOG_TOKEN over GITHUB_TOKEN", func() {
			setEnv("GITHUB_TOKEN", "from-github")
			setEnv("CHANGELOG_TOKEN", "from-changelog")

			Expect(cfg.Load(v)).To(Succeed())
			Expect(cfg.Token).To(Equal("from-changelog"))
		})

		It("should prefer changed flags over the environment", func() {
			setEnv("CHANGELOG_BASE_BRANCH", "develop")

			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			flags.StringVar(&cfg.BaseBranch, "base-branch", cfg.BaseBranch, "")
			Expect(flags.Parse([]string{"--base-branch", "release"})).To(Succeed())
			Expect(v.BindPFlags(flags)).To(Succeed())

			Expect(cfg.Load(v)).To(Succeed())
			Expect(cfg.BaseBranch).To(Equal("release"))
		})

		It("should read a config file", func() {
			dir, err := os.MkdirTemp("", "changelog-config")
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(os.RemoveAll, dir)

			path := filepath.Join(dir, "changelog.yaml")
			Expect(os.WriteFile(path, []byte("platform: gitlab\nrepo-owner: group\nrepo-name: project\nmax-pages: 7\n"), 0o600)).To(Succeed())
			setEnv("CHANGELOG_CONFIG", path)

			Expect(cfg.Load(v)).To(Succeed())
			Expect(cfg.Platform).To(Equal("gitlab"))
			Expect(cfg.Repository().String()).To(Equal("group/project"))
			Expect(cfg.MaxPages).To(Equal(7))
		})

		It("should fail on a missing config file", func() {
			setEnv("CHANGELOG_CONFIG", "/nonexistent/changelog.yaml")

			err := cfg.Load(v)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("failed to read config file"))
		})
	})
})
