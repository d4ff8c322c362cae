package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// Cache stores JSON-encodable values by key.
type Cache interface {
	// Get decodes the value stored under key into value.
	Get(key string, value any) error

	// Set stores value under key. A zero ttl never expires.
	Set(key string, value any, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error

	Close() error
}

// Entry is the on-disk envelope of a cached value.
type Entry struct {
	Data      json.RawMessage `json:"data"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// IsExpired checks if the cache entry has expired
func (e *Entry) IsExpired(now time.Time) bool {
	if e.ExpiresAt == nil {
		return false
	}
	return now.After(*e.ExpiresAt)
}

// KeyBuilder builds cache keys scoped to a platform host.
type KeyBuilder struct {
	prefix string
}

func NewKeyBuilder(prefix string) *KeyBuilder {
	return &KeyBuilder{prefix: prefix}
}

func (b *KeyBuilder) PullRequestCommitsKey(repo string, number int) string {
	return b.buildKey("pr_commits", repo, number)
}

func (b *KeyBuilder) CommitPullRequestsKey(repo, sha string) string {
	return b.buildKey("commit_prs", repo, sha)
}

func (b *KeyBuilder) buildKey(parts ...any) string {
	key := b.prefix
	for _, part := range parts {
		key += ":" + fmt.Sprint(part)
	}
	return key
}

// NewDefaultCache returns a file cache under the user cache directory.
func NewDefaultCache() (Cache, error) {
	return NewFileCache("changelogger")
}
