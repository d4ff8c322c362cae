package changelog

import (
	"context"

	"github.com/reillywatson/changelogger/internal/platform"
	"github.com/sirupsen/logrus"
)

// Attribution describes how a commit's source pull request was chosen.
type Attribution string

const (
	// AttributionDistinct: a pull request other than the integration request was found.
	AttributionDistinct Attribution = "distinct"
	// AttributionFallback: the commit is only associated with the integration request.
	AttributionFallback Attribution = "fallback"
	// AttributionUnassociated: the platform reported no pull request for the commit.
	AttributionUnassociated Attribution = "unassociated"
)

// Degraded reports whether no distinct source pull request was found.
func (a Attribution) Degraded() bool {
	return a != AttributionDistinct
}

// AssociationLister lists every pull request a commit belongs to.
type AssociationLister interface {
	ListPullRequestsWithCommit(ctx context.Context, repo platform.Repository, sha string) ([]platform.PullRequest, error)
}

// SelectSource picks the first association whose number differs from excluded.
// If every association is the excluded request the first one is returned with
// AttributionFallback. The platform does not order associations by relevance, so
// with three or more associations the pick is a heuristic.
func SelectSource(assocs []platform.PullRequest, excluded int) (platform.PullRequest, Attribution) {
	for _, pr := range assocs {
		if pr.Number != excluded {
			return pr, AttributionDistinct
		}
	}
	if len(assocs) > 0 {
		return assocs[0], AttributionFallback
	}
	return platform.PullRequest{}, AttributionUnassociated
}

// Attributor resolves the pull request that originally introduced a commit.
type Attributor struct {
	client AssociationLister
	repo   platform.Repository
	log    logrus.FieldLogger
}

func NewAttributor(client AssociationLister, repo platform.Repository, log logrus.FieldLogger) *Attributor {
	return &Attributor{client: client, repo: repo, log: log}
}

// ResolveSourcePullRequest implements SourceResolver.
func (a *Attributor) ResolveSourcePullRequest(ctx context.Context, commit platform.Commit, excluded int) (platform.PullRequest, Attribution, error) {
	assocs, err := a.client.ListPullRequestsWithCommit(ctx, a.repo, commit.ID)
	if err != nil {
		return platform.PullRequest{}, "", err
	}

	pr, attribution := SelectSource(assocs, excluded)
	if attribution.Degraded() {
		a.log.WithFields(logrus.Fields{
			"commit":       commit.ID,
			"associations": len(assocs),
		}).Warnf("No source pull request other than #%d for commit", excluded)
	}
	return pr, attribution, nil
}
