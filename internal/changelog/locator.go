package changelog

import (
	"context"

	"github.com/reillywatson/changelogger/internal/platform"
)

// PullRequestLister lists closed pull requests against a base branch, newest first.
type PullRequestLister interface {
	ListClosedPullRequests(ctx context.Context, repo platform.Repository, baseBranch string) ([]platform.PullRequest, error)
}

// FindLatestMerged returns the first pull request in prs that was merged.
// Closed requests without a merge identifier were rejected or abandoned and are skipped.
func FindLatestMerged(prs []platform.PullRequest) (platform.PullRequest, error) {
	for _, pr := range prs {
		if pr.Merged() {
			return pr, nil
		}
	}
	return platform.PullRequest{}, ErrNoMergedPullRequest
}

// Locator finds the latest merged pull request into a base branch.
type Locator struct {
	client     PullRequestLister
	repo       platform.Repository
	baseBranch string
}

func NewLocator(client PullRequestLister, repo platform.Repository, baseBranch string) *Locator {
	return &Locator{client: client, repo: repo, baseBranch: baseBranch}
}

// FindLatestMergedPullRequest returns ErrNoMergedPullRequest when nothing was merged yet.
func (l *Locator) FindLatestMergedPullRequest(ctx context.Context) (platform.PullRequest, error) {
	prs, err := l.client.ListClosedPullRequests(ctx, l.repo, l.baseBranch)
	if err != nil {
		return platform.PullRequest{}, err
	}
	return FindLatestMerged(prs)
}
