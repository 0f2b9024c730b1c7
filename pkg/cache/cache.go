// Package cache stores rendered chart artifacts keyed by content.
//
// A key is derived from the raw chart bytes and everything that changes the
// rendered output (format, title, background, scale). Identical requests
// therefore map to the same entry regardless of who sends them.
//
// Two backends are provided: [FileCache] for a shared directory on disk and
// [NullCache] when caching is disabled. Keys are produced by a [Keyer];
// wrap one in [NewScopedKeyer] to namespace entries, for example by release
// version.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long rendered artifacts are kept.
const DefaultTTL = 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the entry for key. A miss is reported as (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKeyOpts are the render settings that affect an artifact's bytes.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	Title       string  `json:"title,omitempty"`
	Interactive bool    `json:"interactive,omitempty"`
	Background  string  `json:"background,omitempty"`
	Scale       float64 `json:"scale,omitempty"`
	Paths       bool    `json:"paths,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey identifies the layout of a chart file.
	LayoutKey(chartData []byte, chartFormat string) string

	// ArtifactKey identifies one rendered artifact of a chart file.
	ArtifactKey(chartData []byte, chartFormat string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the chart bytes together with the given options.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

func (DefaultKeyer) LayoutKey(chartData []byte, chartFormat string) string {
	return hashKey("layout", chartFormat, Hash(chartData))
}

func (DefaultKeyer) ArtifactKey(chartData []byte, chartFormat string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, chartFormat, Hash(chartData), opts)
}

var _ Keyer = DefaultKeyer{}
