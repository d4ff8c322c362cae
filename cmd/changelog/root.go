package main

import (
	"os"

	"github.com/spf13/cobra"

	// Import platform implementations to register them
	_ "github.com/reillywatson/changelogger/internal/github"
	_ "github.com/reillywatson/changelogger/internal/gitlab"
)

// NewRootCommand builds the changelog command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(NewChangelogOption())
}

func newRootCommand(opt *ChangelogOption) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "changelog",
		Short: "Generate a changelog for the latest merged pull request",
		Long: `changelog finds the most recently merged pull request into the base branch,
walks its commits, and attributes each commit to the pull request it originally
came from, producing one line per commit.

Owner and repository are read from the local git remote when not given.

Example usage:
  # Changelog of the latest release merge into master, as markdown
  changelog --token $GITHUB_TOKEN --repo-owner koel --repo-name koel

  # GitLab, merges into main, as JSON written to a file
  changelog --platform gitlab --base-branch main --output json --output-file changes.json

  # Self-hosted GitHub Enterprise
  changelog --base-url https://github.example.com/api/v3/ --repo-owner team --repo-name app

Environment:
  Every flag can be set as CHANGELOG_<FLAG>, e.g. CHANGELOG_BASE_BRANCH=main.
  The token is also read from GITHUB_TOKEN, GITHUB_ACCESS_TOKEN and GITLAB_TOKEN.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opt.Run(cmd.Context(), cmd.OutOrStdout())
		},
	}

	opt.AddFlags(rootCmd.PersistentFlags())
	// Bind flags to viper for environment variable support
	if err := opt.viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		opt.Warnf("Failed to bind flags: %v", err)
	}

	rootCmd.AddCommand(newWhoamiCommand(opt))
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
