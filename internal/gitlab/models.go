package gitlab

import (
	"github.com/reillywatson/changelogger/internal/platform"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

// toPullRequest maps merge request fields onto a pull request record. Fast-forward
// merges record no merge commit, so the head SHA stands in as the merge identifier.
func toPullRequest(iid int, state, mergeCommitSHA, headSHA, webURL, targetBranch string) platform.PullRequest {
	out := platform.PullRequest{
		Number:       iid,
		State:        platform.StateOpen,
		URL:          webURL,
		TargetBranch: targetBranch,
	}
	switch state {
	case stateMerged:
		out.State = platform.StateClosed
		out.MergeCommitID = mergeCommitSHA
		if out.MergeCommitID == "" {
			out.MergeCommitID = headSHA
		}
	case stateClosed:
		out.State = platform.StateClosed
	}
	return out
}

// toCommit maps a GitLab commit. GitLab commits carry no account login, only the
// git author, so the author name and a mailto link are used.
func toCommit(c *gitlab.Commit) platform.Commit {
	out := platform.Commit{
		ID:          c.ID,
		Message:     c.Message,
		AuthorLogin: c.AuthorName,
	}
	if c.AuthorEmail != "" {
		out.AuthorURL = "mailto:" + c.AuthorEmail
	}
	return out
}
