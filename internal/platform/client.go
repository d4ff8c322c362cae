package platform

import (
	"context"
	"errors"
	"fmt"
)

//go:generate mockgen -destination=../../testing/mock/platform/mock_platform.go -package=mock_platform github.com/reillywatson/changelogger/internal/platform Client,ClientFactory

// Client is the query surface of a hosting platform used to build a changelog.
//
// Implementations return records in the platform's native order and never
// retry on their own; failures are reported as *TransportError.
type Client interface {
	// ListClosedPullRequests lists closed pull requests targeting baseBranch, newest first.
	ListClosedPullRequests(ctx context.Context, repo Repository, baseBranch string) ([]PullRequest, error)
	// ListPullRequestCommits lists the commits of a pull request in platform order.
	ListPullRequestCommits(ctx context.Context, repo Repository, number int) ([]Commit, error)
	// ListPullRequestsWithCommit lists every pull request the commit is associated with.
	ListPullRequestsWithCommit(ctx context.Context, repo Repository, sha string) ([]PullRequest, error)
	// CurrentUser returns the login the client is authenticated as.
	CurrentUser(ctx context.Context) (string, error)
}

// ErrUnsupportedPlatform is returned by NewClient for unknown platform names.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// TransportError wraps a failed platform query.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// WrapError returns nil for a nil err, and err unchanged if it already is a *TransportError.
func WrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var te *TransportError
	if errors.As(err, &te) {
		return err
	}
	return &TransportError{Op: op, Err: err}
}
