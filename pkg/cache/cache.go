// Package cache stores rendered graph images keyed by their content.
//
// The CLI renders the same community description many times while a user
// edits it interactively; identical DOT input always produces the same image,
// so renders are looked up by a hash of the input and render options before
// the renderer is invoked.
//
// Two implementations are provided: [FileCache], which keeps entries as files
// under a directory (by default the user cache directory), and [NullCache],
// which never stores anything and is used when caching is disabled.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key. A miss is reported as hit == false with a
	// nil error.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
