package changelog

import (
	"context"
	"fmt"

	"github.com/reillywatson/changelogger/internal/platform"
)

// SourceResolver resolves the source pull request of a commit, never reporting
// excluded unless nothing else is associated with the commit.
type SourceResolver interface {
	ResolveSourcePullRequest(ctx context.Context, commit platform.Commit, excluded int) (platform.PullRequest, Attribution, error)
}

// Entry is one changelog line: a commit credited to its author and source pull request.
type Entry struct {
	CommitID                string      `json:"commit_id" yaml:"commit_id"`
	AuthorLogin             string      `json:"author_login" yaml:"author_login"`
	AuthorURL               string      `json:"author_url" yaml:"author_url"`
	Message                 string      `json:"message" yaml:"message"`
	SourcePullRequestNumber int         `json:"source_pull_request_number" yaml:"source_pull_request_number"`
	SourcePullRequestURL    string      `json:"source_pull_request_url" yaml:"source_pull_request_url"`
	Attribution             Attribution `json:"attribution" yaml:"attribution"`
}

// Degraded reports whether the entry points at the integration request itself.
func (e Entry) Degraded() bool {
	return e.Attribution.Degraded()
}

// Subject returns the first line of the commit message.
func (e Entry) Subject() string {
	return platform.Commit{Message: e.Message}.Subject()
}

func (e Entry) String() string {
	return fmt.Sprintf("%s(%s) commits %s in %s", e.AuthorLogin, e.AuthorURL, e.Subject(), e.SourcePullRequestURL)
}

// Assemble produces one entry per commit, in commit order. The resolver is called for
// every commit. Degraded attributions point at the integration request. The first
// resolver error is returned and no entries are produced.
func Assemble(ctx context.Context, integration platform.PullRequest, commits []platform.Commit, resolver SourceResolver) ([]Entry, error) {
	entries := make([]Entry, 0, len(commits))
	for _, commit := range commits {
		source, attribution, err := resolver.ResolveSourcePullRequest(ctx, commit, integration.Number)
		if err != nil {
			return nil, fmt.Errorf("attribute commit %s: %w", commit.ID, err)
		}
		if attribution == AttributionUnassociated {
			source = integration
		}

		entries = append(entries, Entry{
			CommitID:                commit.ID,
			AuthorLogin:             commit.AuthorLogin,
			AuthorURL:               commit.AuthorURL,
			Message:                 commit.Message,
			SourcePullRequestNumber: source.Number,
			SourcePullRequestURL:    source.URL,
			Attribution:             attribution,
		})
	}
	return entries, nil
}
