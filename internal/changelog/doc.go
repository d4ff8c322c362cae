// Package changelog builds a changelog for the latest integration pull request merged
// into a base branch.
//
// A run locates the newest merged pull request targeting the base branch, lists the
// commits it introduced and credits each commit to the pull request that originally
// carried it. Every commit is attributed on its own; a commit that is only known to
// the integration request is still listed, pointing back at the integration request.
package changelog
