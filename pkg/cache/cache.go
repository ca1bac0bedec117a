// Package cache stores rendered artifacts keyed by their input and options.
//
// Rendering a test specification is deterministic: the same YAML bytes and
// the same render options always give the same artifact. The pipeline
// runner uses that to skip rendering when an identical request was served
// before.
//
// # Backends
//
//   - [FileCache]: JSON envelopes under a directory, used by the CLI
//   - [RedisCache]: a shared redis instance, used by the HTTP service
//   - [NullCache]: stores nothing, used with --no-cache and in tests
//
// # Keys
//
// Keys come from a [Keyer]. [DefaultKeyer] hashes the spec hash together with
// every option that changes the output. [ScopedKeyer] adds a prefix so that
// several consumers can share one backend.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long a rendered artifact stays cached.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
//
// Get reports a miss as (nil, false, nil); errors are reserved for backend
// failures. A ttl of zero means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ArtifactKeyOpts lists every render option that affects an artifact.
type ArtifactKeyOpts struct {
	Format  string    `json:"format"`
	Headers []string  `json:"headers,omitempty"`
	Widths  []float64 `json:"widths,omitempty"`
	Font    string    `json:"font,omitempty"`
	Colors  []string  `json:"colors,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key for the artifact rendered from the spec
	// whose content hash is specHash.
	ArtifactKey(specHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "artifact:<format>:<sha256>".
func (DefaultKeyer) ArtifactKey(specHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, specHash, opts)
}
