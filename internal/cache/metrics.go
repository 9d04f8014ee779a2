package cache

import "context"

// LookupRecorder counts cache lookups.
type LookupRecorder interface {
	CacheLookup(hit bool)
}

type instrumented struct {
	Cache
	recorder LookupRecorder
}

// WithRecorder wraps c so every Get reports a hit or a miss.
func WithRecorder(c Cache, recorder LookupRecorder) Cache {
	return &instrumented{Cache: c, recorder: recorder}
}

func (i *instrumented) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	found, err := i.Cache.Get(ctx, key, dest)
	i.recorder.CacheLookup(err == nil && found)
	return found, err
}
