package platform

import (
	"context"
	"time"
)

// QueryObserver is notified after every platform query. *metrics.Collector satisfies it.
type QueryObserver interface {
	ObserveQuery(operation string, elapsed time.Duration, err error)
}

// InstrumentedClient reports the latency and outcome of each query to an observer.
type InstrumentedClient struct {
	client   Client
	observer QueryObserver
	now      func() time.Time
}

func NewInstrumentedClient(client Client, observer QueryObserver) *InstrumentedClient {
	return &InstrumentedClient{client: client, observer: observer, now: time.Now}
}

func (c *InstrumentedClient) ListClosedPullRequests(ctx context.Context, repo Repository, baseBranch string) ([]PullRequest, error) {
	start := c.now()
	prs, err := c.client.ListClosedPullRequests(ctx, repo, baseBranch)
	c.observer.ObserveQuery("list_closed_pulls", c.now().Sub(start), err)
	return prs, err
}

func (c *InstrumentedClient) ListPullRequestCommits(ctx context.Context, repo Repository, number int) ([]Commit, error) {
	start := c.now()
	commits, err := c.client.ListPullRequestCommits(ctx, repo, number)
	c.observer.ObserveQuery("list_commits", c.now().Sub(start), err)
	return commits, err
}

func (c *InstrumentedClient) ListPullRequestsWithCommit(ctx context.Context, repo Repository, sha string) ([]PullRequest, error) {
	start := c.now()
	prs, err := c.client.ListPullRequestsWithCommit(ctx, repo, sha)
	c.observer.ObserveQuery("list_commit_pulls", c.now().Sub(start), err)
	return prs, err
}

func (c *InstrumentedClient) CurrentUser(ctx context.Context) (string, error) {
	start := c.now()
	login, err := c.client.CurrentUser(ctx)
	c.observer.ObserveQuery("current_user", c.now().Sub(start), err)
	return login, err
}
