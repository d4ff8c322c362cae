package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v39/github"
	"github.com/reillywatson/changelogger/internal/platform"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const perPage = 100

func init() {
	platform.RegisterFactory("github", &Factory{})
}

// Factory implements platform.ClientFactory for GitHub.
type Factory struct{}

func (f *Factory) CreateClient(logger logrus.FieldLogger, opts platform.Options) (platform.Client, error) {
	return NewGitHubClient(logger, opts)
}

// GitHubClient implements platform.Client on top of go-github.
type GitHubClient struct {
	client   *github.Client
	log      logrus.FieldLogger
	maxPages int
}

func NewGitHubClient(logger logrus.FieldLogger, opts platform.Options) (*GitHubClient, error) {
	ctx := context.Background()
	if opts.HTTPClient != nil {
		// oauth2 layers the token on top of the client found in the context
		ctx = context.WithValue(ctx, oauth2.HTTPClient, opts.HTTPClient)
	}
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: opts.Token},
	)
	tc := oauth2.NewClient(ctx, ts)

	client := github.NewClient(tc)
	if opts.BaseURL != "" && opts.BaseURL != "https://api.github.com" && opts.BaseURL != "https://api.github.com/" {
		var err error
		client, err = github.NewEnterpriseClient(opts.BaseURL, opts.BaseURL, tc)
		if err != nil {
			return nil, fmt.Errorf("failed to set GitHub enterprise URL: %w", err)
		}
	}
	if opts.UserAgent != "" {
		client.UserAgent = opts.UserAgent
	}

	return &GitHubClient{
		client:   client,
		log:      logger,
		maxPages: opts.MaxPages,
	}, nil
}

// ListClosedPullRequests pages through closed pull requests against baseBranch in
// the API's default order, stopping after maxPages pages.
func (c *GitHubClient) ListClosedPullRequests(ctx context.Context, repo platform.Repository, baseBranch string) ([]platform.PullRequest, error) {
	var all []platform.PullRequest
	opts := &github.PullRequestListOptions{
		State:       "closed",
		Base:        baseBranch,
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	for page := 1; ; page++ {
		prs, resp, err := c.client.PullRequests.List(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return nil, platform.WrapError("list closed pull requests", err)
		}
		for _, pr := range prs {
			all = append(all, toPullRequest(pr))
		}

		if resp.NextPage == 0 {
			break
		}
		if c.maxPages > 0 && page >= c.maxPages {
			c.log.Debugf("Stopping after %d pages of closed pull requests", page)
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

func (c *GitHubClient) ListPullRequestCommits(ctx context.Context, repo platform.Repository, number int) ([]platform.Commit, error) {
	var all []platform.Commit
	opts := &github.ListOptions{PerPage: perPage}

	for {
		commits, resp, err := c.client.PullRequests.ListCommits(ctx, repo.Owner, repo.Name, number, opts)
		if err != nil {
			return nil, platform.WrapError(fmt.Sprintf("list commits of #%d", number), err)
		}
		for _, commit := range commits {
			all = append(all, toCommit(commit))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

func (c *GitHubClient) ListPullRequestsWithCommit(ctx context.Context, repo platform.Repository, sha string) ([]platform.PullRequest, error) {
	var all []platform.PullRequest
	opts := &github.PullRequestListOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	for {
		prs, resp, err := c.client.PullRequests.ListPullRequestsWithCommit(ctx, repo.Owner, repo.Name, sha, opts)
		if err != nil {
			return nil, platform.WrapError(fmt.Sprintf("list pull requests of commit %s", sha), err)
		}
		for _, pr := range prs {
			all = append(all, toPullRequest(pr))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// CurrentUser returns the login of the token owner.
func (c *GitHubClient) CurrentUser(ctx context.Context) (string, error) {
	user, _, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return "", platform.WrapError("get authenticated user", err)
	}
	return user.GetLogin(), nil
}
