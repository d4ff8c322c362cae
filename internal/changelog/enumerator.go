package changelog

import (
	"context"

	"github.com/reillywatson/changelogger/internal/platform"
)

// CommitLister lists the commits of a pull request.
type CommitLister interface {
	ListPullRequestCommits(ctx context.Context, repo platform.Repository, number int) ([]platform.Commit, error)
}

// Enumerator lists the commits an integration pull request introduced.
type Enumerator struct {
	client CommitLister
	repo   platform.Repository
}

func NewEnumerator(client CommitLister, repo platform.Repository) *Enumerator {
	return &Enumerator{client: client, repo: repo}
}

// ListCommits returns the commits in platform order. An empty list is not an error.
func (e *Enumerator) ListCommits(ctx context.Context, number int) ([]platform.Commit, error) {
	commits, err := e.client.ListPullRequestCommits(ctx, e.repo, number)
	if err != nil {
		return nil, err
	}
	if commits == nil {
		commits = []platform.Commit{}
	}
	return commits, nil
}
