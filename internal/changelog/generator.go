package changelog

import (
	"context"
	"errors"
	"time"

	"github.com/reillywatson/changelogger/internal/metrics"
	"github.com/reillywatson/changelogger/internal/platform"
	"github.com/sirupsen/logrus"
)

// Platform is the part of platform.Client a run needs.
type Platform interface {
	PullRequestLister
	CommitLister
	AssociationLister
}

// RunObserver is notified about produced entries and finished runs.
// *metrics.Collector satisfies it.
type RunObserver interface {
	ObserveEntry(attribution string)
	ObserveRun(result string, finished time.Time)
}

// Changelog is the result of a successful run.
type Changelog struct {
	Repository  platform.Repository  `json:"repository" yaml:"repository"`
	BaseBranch  string               `json:"base_branch" yaml:"base_branch"`
	Integration platform.PullRequest `json:"integration" yaml:"integration"`
	Entries     []Entry              `json:"entries" yaml:"entries"`
}

// Degraded counts entries without a distinct source pull request.
func (c *Changelog) Degraded() int {
	n := 0
	for _, e := range c.Entries {
		if e.Degraded() {
			n++
		}
	}
	return n
}

// Options configures a Generator. Repository and BaseBranch are required.
type Options struct {
	Repository platform.Repository
	BaseBranch string
	Logger     logrus.FieldLogger
	Observer   RunObserver
}

// Generator runs Locator, Enumerator, Attributor and Assemble in sequence.
// Queries are issued one at a time and nothing is retried.
type Generator struct {
	locator    *Locator
	enumerator *Enumerator
	attributor *Attributor
	opts       Options
	log        logrus.FieldLogger
	now        func() time.Time
}

func NewGenerator(client Platform, opts Options) *Generator {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithFields(logrus.Fields{
		"repo": opts.Repository.String(),
		"base": opts.BaseBranch,
	})

	return &Generator{
		locator:    NewLocator(client, opts.Repository, opts.BaseBranch),
		enumerator: NewEnumerator(client, opts.Repository),
		attributor: NewAttributor(client, opts.Repository, log),
		opts:       opts,
		log:        log,
		now:        time.Now,
	}
}

// Run builds the changelog. On failure the error is a *RunError wrapping
// ErrNoMergedPullRequest or the platform error, and no partial changelog is returned.
func (g *Generator) Run(ctx context.Context) (*Changelog, error) {
	run := &runState{log: g.log, stage: StageStart}

	run.enter(StageLocatingMerge)
	integration, err := g.locator.FindLatestMergedPullRequest(ctx)
	if err != nil {
		return nil, g.abort(run, err)
	}
	run.log = run.log.WithField("pr", integration.Number)
	run.log.Infof("Latest merged pull request is #%d (%s)", integration.Number, integration.URL)

	run.enter(StageEnumeratingCommits)
	commits, err := g.enumerator.ListCommits(ctx, integration.Number)
	if err != nil {
		return nil, g.abort(run, err)
	}
	run.log.Debugf("Pull request #%d has %d commits", integration.Number, len(commits))

	run.enter(StageAttributing)
	sources := make(resolvedSources, len(commits))
	for _, commit := range commits {
		if _, ok := sources[commit.ID]; ok {
			continue
		}
		pr, attribution, err := g.attributor.ResolveSourcePullRequest(ctx, commit, integration.Number)
		if err != nil {
			return nil, g.abort(run, err)
		}
		sources[commit.ID] = resolvedSource{pr: pr, attribution: attribution}
	}

	run.enter(StageAssembling)
	entries, err := Assemble(ctx, integration, commits, sources)
	if err != nil {
		return nil, g.abort(run, err)
	}

	cl := &Changelog{
		Repository:  g.opts.Repository,
		BaseBranch:  g.opts.BaseBranch,
		Integration: integration,
		Entries:     entries,
	}

	run.enter(StageDone)
	if g.opts.Observer != nil {
		for _, e := range entries {
			g.opts.Observer.ObserveEntry(string(e.Attribution))
		}
		g.opts.Observer.ObserveRun(metrics.ResultSuccess, g.now())
	}
	run.log.Infof("Generated %d changelog entries (%d without a distinct source)", len(entries), cl.Degraded())
	return cl, nil
}

func (g *Generator) abort(run *runState, err error) error {
	failed := run.stage
	run.enter(StageAborted)
	if g.opts.Observer != nil {
		result := metrics.ResultError
		if errors.Is(err, ErrNoMergedPullRequest) {
			result = metrics.ResultNotFound
		}
		g.opts.Observer.ObserveRun(result, g.now())
	}
	return &RunError{Stage: failed, Err: err}
}

type runState struct {
	log   logrus.FieldLogger
	stage Stage
}

func (r *runState) enter(stage Stage) {
	r.log.WithField("from", r.stage).Debugf("Entering stage %s", stage)
	r.stage = stage
}

type resolvedSource struct {
	pr          platform.PullRequest
	attribution Attribution
}

// resolvedSources replays attributions made earlier in the run.
type resolvedSources map[string]resolvedSource

func (r resolvedSources) ResolveSourcePullRequest(_ context.Context, commit platform.Commit, _ int) (platform.PullRequest, Attribution, error) {
	s, ok := r[commit.ID]
	if !ok {
		return platform.PullRequest{}, "", errors.New("commit was not attributed")
	}
	return s.pr, s.attribution, nil
}
