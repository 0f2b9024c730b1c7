package cache

// ScopedKeyer prefixes every key of an inner Keyer. The server scopes keys
// by release so that a new layout engine never serves stale artifacts:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.4.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer means
// [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) LayoutKey(chartData []byte, chartFormat string) string {
	return k.prefix + k.inner.LayoutKey(chartData, chartFormat)
}

func (k *ScopedKeyer) ArtifactKey(chartData []byte, chartFormat string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(chartData, chartFormat, opts)
}
