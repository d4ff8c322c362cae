// Package gitlab implements platform.Client for GitLab merge requests.
package gitlab

import (
	"context"
	"fmt"

	"github.com/reillywatson/changelogger/internal/platform"
	"github.com/sirupsen/logrus"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

const perPage = 100

// GitLab merge request states.
const (
	stateMerged = "merged"
	stateClosed = "closed"
)

func init() {
	platform.RegisterFactory("gitlab", &Factory{})
}

// Factory implements platform.ClientFactory for GitLab.
type Factory struct{}

func (f *Factory) CreateClient(logger logrus.FieldLogger, opts platform.Options) (platform.Client, error) {
	return NewGitLabClient(logger, opts)
}

// GitLabClient maps merge requests onto platform pull request records.
type GitLabClient struct {
	client   *gitlab.Client
	log      logrus.FieldLogger
	maxPages int
}

func NewGitLabClient(logger logrus.FieldLogger, opts platform.Options) (*GitLabClient, error) {
	var clientOpts []gitlab.ClientOptionFunc
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, gitlab.WithBaseURL(opts.BaseURL))
	}
	if opts.HTTPClient != nil {
		clientOpts = append(clientOpts, gitlab.WithHTTPClient(opts.HTTPClient))
	}

	client, err := gitlab.NewClient(opts.Token, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitLab client: %w", err)
	}
	if opts.UserAgent != "" {
		client.UserAgent = opts.UserAgent
	}

	return &GitLabClient{client: client, log: logger, maxPages: opts.MaxPages}, nil
}

// ListClosedPullRequests lists merged and closed merge requests targeting baseBranch,
// most recently updated first. GitLab has no single "closed or merged" filter, so
// all states are requested and open ones dropped.
func (c *GitLabClient) ListClosedPullRequests(ctx context.Context, repo platform.Repository, baseBranch string) ([]platform.PullRequest, error) {
	var all []platform.PullRequest
	opts := &gitlab.ListProjectMergeRequestsOptions{
		State:        gitlab.Ptr("all"),
		TargetBranch: gitlab.Ptr(baseBranch),
		OrderBy:      gitlab.Ptr("updated_at"),
		Sort:         gitlab.Ptr("desc"),
		ListOptions:  gitlab.ListOptions{PerPage: perPage},
	}

	for page := 1; ; page++ {
		mrs, resp, err := c.client.MergeRequests.ListProjectMergeRequests(repo.String(), opts, gitlab.WithContext(ctx))
		if err != nil {
			return nil, platform.WrapError("list closed merge requests", err)
		}
		for _, mr := range mrs {
			if mr.State != stateMerged && mr.State != stateClosed {
				continue
			}
			all = append(all, toPullRequest(mr.IID, mr.State, mr.MergeCommitSHA, mr.SHA, mr.WebURL, mr.TargetBranch))
		}

		if resp.NextPage == 0 {
			break
		}
		if c.maxPages > 0 && page >= c.maxPages {
			c.log.Debugf("Stopping after %d pages of merge requests", page)
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// ListPullRequestCommits keeps GitLab's native order, which is newest first.
func (c *GitLabClient) ListPullRequestCommits(ctx context.Context, repo platform.Repository, number int) ([]platform.Commit, error) {
	var all []platform.Commit
	opts := &gitlab.GetMergeRequestCommitsOptions{PerPage: perPage}

	for {
		commits, resp, err := c.client.MergeRequests.GetMergeRequestCommits(repo.String(), number, opts, gitlab.WithContext(ctx))
		if err != nil {
			return nil, platform.WrapError(fmt.Sprintf("list commits of !%d", number), err)
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

func (c *GitLabClient) ListPullRequestsWithCommit(ctx context.Context, repo platform.Repository, sha string) ([]platform.PullRequest, error) {
	mrs, _, err := c.client.Commits.ListMergeRequestsByCommit(repo.String(), sha, gitlab.WithContext(ctx))
	if err != nil {
		return nil, platform.WrapError(fmt.Sprintf("list merge requests of commit %s", sha), err)
	}

	out := make([]platform.PullRequest, 0, len(mrs))
	for _, mr := range mrs {
		out = append(out, toPullRequest(mr.IID, mr.State, mr.MergeCommitSHA, mr.SHA, mr.WebURL, mr.TargetBranch))
	}
	return out, nil
}

func (c *GitLabClient) CurrentUser(ctx context.Context) (string, error) {
	user, _, err := c.client.Users.CurrentUser(gitlab.WithContext(ctx))
	if err != nil {
		return "", platform.WrapError("get current user", err)
	}
	return user.Username, nil
}
