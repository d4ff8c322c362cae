package platform

import (
	"context"
	"errors"
	"time"

	"github.com/reillywatson/changelogger/internal/cache"
	"github.com/sirupsen/logrus"
)

// MergedCommitsTTL is how long the commit list of a merged pull request is kept.
// Merged requests no longer change, so the list is effectively immutable.
const MergedCommitsTTL = 24 * time.Hour

// CacheObserver is notified of cache lookups. *metrics.Collector satisfies it.
type CacheObserver interface {
	ObserveCacheLookup(operation, outcome string)
}

// CachedClient wraps a Client with caching of commit lists and commit associations.
//
// Closed pull request listings are never cached: the merge locator must see the
// platform's current state on every run.
type CachedClient struct {
	client   Client
	cache    cache.Cache
	kb       *cache.KeyBuilder
	log      logrus.FieldLogger
	assocTTL time.Duration
	observer CacheObserver
}

// NewCachedClient creates a caching decorator. namespace scopes keys, usually the API host.
func NewCachedClient(client Client, c cache.Cache, namespace string, assocTTL time.Duration, log logrus.FieldLogger) *CachedClient {
	return &CachedClient{
		client:   client,
		cache:    c,
		kb:       cache.NewKeyBuilder(namespace),
		log:      log,
		assocTTL: assocTTL,
	}
}

// WithObserver sets a CacheObserver and returns c.
func (c *CachedClient) WithObserver(o CacheObserver) *CachedClient {
	c.observer = o
	return c
}

func (c *CachedClient) ListClosedPullRequests(ctx context.Context, repo Repository, baseBranch string) ([]PullRequest, error) {
	return c.client.ListClosedPullRequests(ctx, repo, baseBranch)
}

func (c *CachedClient) ListPullRequestCommits(ctx context.Context, repo Repository, number int) ([]Commit, error) {
	cacheKey := c.kb.PullRequestCommitsKey(repo.String(), number)
	var cached []Commit
	if c.lookup("list_commits", cacheKey, &cached) {
		return cached, nil
	}

	commits, err := c.client.ListPullRequestCommits(ctx, repo, number)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(cacheKey, commits, MergedCommitsTTL); err != nil {
		c.log.Warnf("Failed to cache commits of #%d: %v", number, err)
	}
	return commits, nil
}

func (c *CachedClient) ListPullRequestsWithCommit(ctx context.Context, repo Repository, sha string) ([]PullRequest, error) {
	cacheKey := c.kb.CommitPullRequestsKey(repo.String(), sha)
	var cached []PullRequest
	if c.lookup("list_commit_pulls", cacheKey, &cached) {
		return cached, nil
	}

	prs, err := c.client.ListPullRequestsWithCommit(ctx, repo, sha)
	if err != nil {
		return nil, err
	}

	// An empty association list is usually the platform still indexing; don't pin it.
	if len(prs) > 0 {
		if err := c.cache.Set(cacheKey, prs, c.assocTTL); err != nil {
			c.log.Warnf("Failed to cache pull requests of commit %s: %v", sha, err)
		}
	}
	return prs, nil
}

func (c *CachedClient) CurrentUser(ctx context.Context) (string, error) {
	return c.client.CurrentUser(ctx)
}

// Close releases the underlying cache.
func (c *CachedClient) Close() error {
	return c.cache.Close()
}

func (c *CachedClient) lookup(operation, key string, value any) bool {
	err := c.cache.Get(key, value)
	switch {
	case err == nil:
		c.observe(operation, "hit")
		c.log.Debugf("Cache hit for %s", key)
		return true
	case errors.Is(err, cache.ErrCacheMiss):
		c.observe(operation, "miss")
	default:
		c.observe(operation, "error")
		c.log.Warnf("Cache error for %s: %v", key, err)
	}
	return false
}

func (c *CachedClient) observe(operation, outcome string) {
	if c.observer != nil {
		c.observer.ObserveCacheLookup(operation, outcome)
	}
}
