package platform

import (
	"fmt"
	"strings"
)

// State is the lifecycle state of a pull request as seen by the changelog.
type State string

const (
	StateOpen   State = "open"
	StateClosed State = "closed"
)

// Repository identifies a repository on a hosting platform.
type Repository struct {
	Owner string `json:"owner" yaml:"owner"`
	Name  string `json:"name" yaml:"name"`
}

func (r Repository) String() string {
	return r.Owner + "/" + r.Name
}

// ParseRepository parses an "owner/name" pair. GitLab subgroups are kept in Owner.
func ParseRepository(s string) (Repository, error) {
	s = strings.Trim(strings.TrimSpace(s), "/")
	i := strings.LastIndex(s, "/")
	if i <= 0 || i == len(s)-1 {
		return Repository{}, fmt.Errorf("invalid repository %q: use owner/name", s)
	}
	return Repository{Owner: s[:i], Name: s[i+1:]}, nil
}

// PullRequest is a platform-neutral pull (merge) request record.
// MergeCommitID is only set when the request was merged.
type PullRequest struct {
	Number        int    `json:"number" yaml:"number"`
	State         State  `json:"state" yaml:"state"`
	MergeCommitID string `json:"merge_commit_id,omitempty" yaml:"merge_commit_id,omitempty"`
	URL           string `json:"url" yaml:"url"`
	TargetBranch  string `json:"target_branch" yaml:"target_branch"`
}

// Merged reports whether the platform recorded a merge for the request.
func (p PullRequest) Merged() bool {
	return p.MergeCommitID != ""
}

// Commit is a commit record as returned for a pull request.
type Commit struct {
	ID          string `json:"id" yaml:"id"`
	Message     string `json:"message" yaml:"message"`
	AuthorLogin string `json:"author_login" yaml:"author_login"`
	AuthorURL   string `json:"author_url" yaml:"author_url"`
}

// Subject returns the first line of the commit message.
func (c Commit) Subject() string {
	subject, _, _ := strings.Cut(c.Message, "\n")
	return strings.TrimSpace(subject)
}
