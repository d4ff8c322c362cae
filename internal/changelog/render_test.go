package changelog

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/reillywatson/changelogger/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleChangelog() *Changelog {
	integration := closedPR(9, "m9")
	return &Changelog{
		Repository:  testRepo,
		BaseBranch:  "master",
		Integration: integration,
		Entries: []Entry{
			{
				CommitID: "c1", AuthorLogin: "alice", AuthorURL: "https://github.com/alice",
				Message:                 "fix: sort by disc/track (#1854)\n\nbody",
				SourcePullRequestNumber: 7, SourcePullRequestURL: "https://github.com/koel/koel/pull/7",
				Attribution: AttributionDistinct,
			},
			{
				CommitID: "c2", AuthorLogin: "Bob Unlinked",
				Message:                 "chore: bump",
				SourcePullRequestNumber: 9, SourcePullRequestURL: integration.URL,
				Attribution: AttributionFallback,
			},
		},
	}
}

func TestRender_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleChangelog(), FormatMarkdown))

	want := "## Changes in [#9](https://github.com/koel/koel/pull/9)\n\n" +
		"- [alice](https://github.com/alice) commits fix: sort by disc/track (#1854) in https://github.com/koel/koel/pull/7\n" +
		"- Bob Unlinked commits chore: bump in https://github.com/koel/koel/pull/9 (no distinct source)\n"
	assert.Equal(t, want, buf.String())
}

func TestRender_MarkdownEmpty(t *testing.T) {
	cl := &Changelog{Integration: closedPR(9, "m9")}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, cl, FormatMarkdown))
	assert.Contains(t, buf.String(), "No commits.")
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleChangelog(), FormatText))

	want := "alice(https://github.com/alice) commits fix: sort by disc/track (#1854) in https://github.com/koel/koel/pull/7\n" +
		"Bob Unlinked() commits chore: bump in https://github.com/koel/koel/pull/9 (no distinct source)\n"
	assert.Equal(t, want, buf.String())
}

func TestRender_JSONKeepsFullMessage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleChangelog(), FormatJSON))

	var got Changelog
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "fix: sort by disc/track (#1854)\n\nbody", got.Entries[0].Message)
	assert.Equal(t, AttributionFallback, got.Entries[1].Attribution)
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleChangelog(), FormatYAML))

	var got struct {
		BaseBranch  string               `yaml:"base_branch"`
		Integration platform.PullRequest `yaml:"integration"`
		Entries     []Entry              `yaml:"entries"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "master", got.BaseBranch)
	assert.Equal(t, "m9", got.Integration.MergeCommitID)
	assert.Len(t, got.Entries, 2)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("html")
	assert.Error(t, err)
}
