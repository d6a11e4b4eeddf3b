package cache

// ScopedKeyer wraps a Keyer with a prefix so that several deployments can
// share one backend without colliding:
//
//	staging := NewScopedKeyer(NewDefaultKeyer(), "staging:")
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

func (k *ScopedKeyer) DifferentialKey(graphHash string, opts WindowKeyOpts) string {
	return k.prefix + k.inner.DifferentialKey(graphHash, opts)
}

func (k *ScopedKeyer) AnalysisKey(graphHash string, opts WindowKeyOpts) string {
	return k.prefix + k.inner.AnalysisKey(graphHash, opts)
}

func (k *ScopedKeyer) ExpansionKey(graphHash string) string {
	return k.prefix + k.inner.ExpansionKey(graphHash)
}
