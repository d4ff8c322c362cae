package config

import "errors"

var (
	ErrMissingPlatform   = errors.New("platform is required")
	ErrMissingToken      = errors.New("token is required (--token, CHANGELOG_TOKEN, GITHUB_TOKEN, GITHUB_ACCESS_TOKEN or GITLAB_TOKEN)")
	ErrMissingOwner      = errors.New("repository owner is required")
	ErrMissingRepo       = errors.New("repository name is required")
	ErrMissingBaseBranch = errors.New("base branch is required")
	ErrInvalidOutput     = errors.New("output must be one of markdown, text, json, yaml")
	ErrInvalidMaxPages   = errors.New("max pages must not be negative")
	ErrInvalidRateLimit  = errors.New("rate limit must not be negative")
)
