package cache

// ScopedKeyer prefixes every key of an inner Keyer. The HTTP service uses it
// to keep its entries apart from CLI entries in a shared redis instance.
//
//	apiKeyer := NewScopedKeyer(NewDefaultKeyer(), "api:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer uses
// [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(specHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(specHash, opts)
}
