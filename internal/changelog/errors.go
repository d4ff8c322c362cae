package changelog

import (
	"errors"
	"fmt"
)

// ErrNoMergedPullRequest means no closed pull request against the base branch was merged.
var ErrNoMergedPullRequest = errors.New("no merged pull request found")

// Stage is a step of a changelog run.
type Stage string

const (
	StageStart              Stage = "start"
	StageLocatingMerge      Stage = "locating_merge"
	StageEnumeratingCommits Stage = "enumerating_commits"
	StageAttributing        Stage = "attributing"
	StageAssembling         Stage = "assembling"
	StageDone               Stage = "done"
	StageAborted            Stage = "aborted"
)

// RunError reports the stage a run was in when it aborted.
type RunError struct {
	Stage Stage
	Err   error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("changelog aborted while %s: %v", e.Stage, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}
