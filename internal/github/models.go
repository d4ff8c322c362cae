package github

import (
	"github.com/google/go-github/v39/github"
	"github.com/reillywatson/changelogger/internal/platform"
)

// toPullRequest converts a go-github pull request.
//
// GitHub keeps a test-merge merge_commit_sha on requests that were closed without
// merging, so the merge identifier is only carried over when merged_at is set.
func toPullRequest(pr *github.PullRequest) platform.PullRequest {
	out := platform.PullRequest{
		Number:       pr.GetNumber(),
		State:        platform.State(pr.GetState()),
		URL:          pr.GetHTMLURL(),
		TargetBranch: pr.GetBase().GetRef(),
	}
	if pr.MergedAt != nil {
		out.MergeCommitID = pr.GetMergeCommitSHA()
	}
	return out
}

// toCommit converts a go-github commit. Commits whose author email is not linked to
// an account have no author user; the git author name is used instead.
func toCommit(rc *github.RepositoryCommit) platform.Commit {
	out := platform.Commit{
		ID:      rc.GetSHA(),
		Message: rc.GetCommit().GetMessage(),
	}
	if rc.Author != nil {
		out.AuthorLogin = rc.GetAuthor().GetLogin()
		out.AuthorURL = rc.GetAuthor().GetHTMLURL()
	} else {
		out.AuthorLogin = rc.GetCommit().GetAuthor().GetName()
	}
	return out
}
