package changelog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reillywatson/changelogger/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResolver answers from a table keyed by commit ID and records call order.
type fakeResolver struct {
	sources map[string][]platform.PullRequest
	failOn  string
	calls   []string
}

func (f *fakeResolver) ResolveSourcePullRequest(_ context.Context, commit platform.Commit, excluded int) (platform.PullRequest, Attribution, error) {
	f.calls = append(f.calls, commit.ID)
	if commit.ID == f.failOn {
		return platform.PullRequest{}, "", errors.New("boom")
	}
	pr, attribution := SelectSource(f.sources[commit.ID], excluded)
	return pr, attribution, nil
}

func TestAssemble_OnePerCommitInOrder(t *testing.T) {
	integration := closedPR(9, "m9")
	commits := []platform.Commit{
		{ID: "c1", Message: "fix: one", AuthorLogin: "alice", AuthorURL: "https://github.com/alice"},
		{ID: "c2", Message: "feat: two\n\nbody", AuthorLogin: "bob", AuthorURL: "https://github.com/bob"},
		{ID: "c3", Message: "chore: direct", AuthorLogin: "carol", AuthorURL: "https://github.com/carol"},
		{ID: "c4", Message: "docs: unindexed", AuthorLogin: "dave", AuthorURL: "https://github.com/dave"},
	}
	resolver := &fakeResolver{sources: map[string][]platform.PullRequest{
		"c1": {integration, closedPR(7, "m7")},
		"c2": {closedPR(8, "m8"), integration},
		"c3": {integration},
	}}

	entries, err := Assemble(context.Background(), integration, commits, resolver)
	require.NoError(t, err)

	want := []Entry{
		{CommitID: "c1", AuthorLogin: "alice", AuthorURL: "https://github.com/alice", Message: "fix: one",
			SourcePullRequestNumber: 7, SourcePullRequestURL: "https://github.com/koel/koel/pull/7", Attribution: AttributionDistinct},
		{CommitID: "c2", AuthorLogin: "bob", AuthorURL: "https://github.com/bob", Message: "feat: two\n\nbody",
			SourcePullRequestNumber: 8, SourcePullRequestURL: "https://github.com/koel/koel/pull/8", Attribution: AttributionDistinct},
		{CommitID: "c3", AuthorLogin: "carol", AuthorURL: "https://github.com/carol", Message: "chore: direct",
			SourcePullRequestNumber: 9, SourcePullRequestURL: "https://github.com/koel/koel/pull/9", Attribution: AttributionFallback},
		{CommitID: "c4", AuthorLogin: "dave", AuthorURL: "https://github.com/dave", Message: "docs: unindexed",
			SourcePullRequestNumber: 9, SourcePullRequestURL: "https://github.com/koel/koel/pull/9", Attribution: AttributionUnassociated},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("Assemble() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"c1", "c2", "c3", "c4"}, resolver.calls, "resolver is called once per commit, in order")
}

func TestAssemble_EmptyCommits(t *testing.T) {
	entries, err := Assemble(context.Background(), closedPR(9, "m9"), nil, &fakeResolver{})
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestAssemble_ResolverErrorLeavesNoPartialResult(t *testing.T) {
	commits := []platform.Commit{{ID: "c1"}, {ID: "c2"}, {ID: "c3"}}
	resolver := &fakeResolver{failOn: "c2"}

	entries, err := Assemble(context.Background(), closedPR(9, "m9"), commits, resolver)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "c2")
	assert.Nil(t, entries)
	assert.Equal(t, []string{"c1", "c2"}, resolver.calls)
}

func TestEntry_String(t *testing.T) {
	e := Entry{
		AuthorLogin:          "alice",
		AuthorURL:            "https://github.com/alice",
		Message:              "fix: sort by disc/track (#1854)\n\nSigned-off-by: alice",
		SourcePullRequestURL: "https://github.com/koel/koel/pull/1854",
	}
	assert.Equal(t, "alice(https://github.com/alice) commits fix: sort by disc/track (#1854) in https://github.com/koel/koel/pull/1854", e.String())
}
