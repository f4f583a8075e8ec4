// Package cache provides caching for rendered page artifacts.
//
// # Overview
//
// Rendering a page is deterministic: the same source document and the
// same options always produce the same output. That makes rendered
// artifacts ideal cache entries, keyed by a hash of the page source
// plus the render options.
//
// The package defines a backend-agnostic Cache interface with three
// implementations:
//   - NullCache: no-op, for tests and --no-cache runs
//   - FileCache: directory-backed, for CLI usage
//   - RedisCache: Redis-backed, for the preview server
//
// Key generation is factored into the Keyer interface so deployments
// can namespace keys (see ScopedKeyer).
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry type. Trees are cheap to recompute, so they
// expire sooner than final artifacts.
const (
	TTLTree     = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the interface all cache backends implement.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL (0 means no expiration).
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// TreeKeyOpts affect the shape of the presentation tree.
type TreeKeyOpts struct {
	// Keys controls whether stable child keys are emitted as attributes.
	Keys bool
}

// ArtifactKeyOpts affect the rendered artifact bytes.
type ArtifactKeyOpts struct {
	// Format is the output format (html, json, dot, svg, png).
	Format string
	// Keys controls whether stable child keys are emitted as attributes.
	Keys bool
}

// Keyer generates cache keys for the render pipeline.
type Keyer interface {
	// TreeKey generates a key for a cached presentation tree,
	// derived from the hash of the page source.
	TreeKey(pageHash string, opts TreeKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(pageHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generation strategy.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// TreeKey generates a key for a cached presentation tree.
func (k *DefaultKeyer) TreeKey(pageHash string, opts TreeKeyOpts) string {
	return hashKey("tree", pageHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(pageHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", pageHash, opts)
}
