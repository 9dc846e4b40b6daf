package cache

// ScopedKeyer wraps a Keyer with a prefix so several deployments, or several
// dictionary versions, can share one backend without colliding.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "wordgrid:v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ResultKey generates a prefixed key for a search result.
func (k *ScopedKeyer) ResultKey(boardHash, dictHash string, opts ResultKeyOpts) string {
	return k.prefix + k.inner.ResultKey(boardHash, dictHash, opts)
}
