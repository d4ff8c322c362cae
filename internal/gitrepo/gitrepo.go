// Package gitrepo detects the hosting platform repository of a local checkout.
package gitrepo

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/reillywatson/changelogger/internal/platform"
)

// DefaultRemote is the remote consulted when none is named.
const DefaultRemote = "origin"

// Remote is a parsed git remote URL.
type Remote struct {
	Host       string
	Repository platform.Repository
}

// Platform guesses the hosting platform from the host name.
func (r Remote) Platform() string {
	if strings.Contains(r.Host, "gitlab") {
		return "gitlab"
	}
	return "github"
}

// Detect opens the repository containing path and parses the URL of remoteName.
func Detect(path, remoteName string) (Remote, error) {
	if remoteName == "" {
		remoteName = DefaultRemote
	}

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Remote{}, fmt.Errorf("failed to open git repository at %s: %w", path, err)
	}

	remote, err := repo.Remote(remoteName)
	if err != nil {
		return Remote{}, fmt.Errorf("failed to read remote %q: %w", remoteName, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return Remote{}, fmt.Errorf("remote %q has no URL", remoteName)
	}
	return ParseRemoteURL(urls[0])
}

// ParseRemoteURL extracts host, owner and name from a remote URL. It supports:
//   - https://github.com/koel/koel.git
//   - ssh://git@github.com/koel/koel.git
//   - git@gitlab.com:group/subgroup/project.git
func ParseRemoteURL(raw string) (Remote, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Remote{}, errors.New("empty remote URL")
	}

	var host, path string
	if !strings.Contains(raw, "://") {
		// scp-like syntax: [user@]host:path
		at := strings.LastIndex(raw, "@")
		colon := strings.Index(raw, ":")
		if colon < 0 || colon < at {
			return Remote{}, fmt.Errorf("invalid remote URL %q", raw)
		}
		host, path = raw[at+1:colon], raw[colon+1:]
	} else {
		u, err := url.Parse(raw)
		if err != nil {
			return Remote{}, fmt.Errorf("invalid remote URL %q: %w", raw, err)
		}
		host, path = u.Hostname(), u.Path
	}

	repo, err := platform.ParseRepository(strings.TrimSuffix(strings.Trim(path, "/"), ".git"))
	if err != nil {
		return Remote{}, fmt.Errorf("invalid remote URL %q: %w", raw, err)
	}
	return Remote{Host: host, Repository: repo}, nil
}
