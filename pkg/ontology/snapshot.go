package ontology

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// BuildFunc produces a fully independent Ontology, typically by
// re-fetching and re-parsing the configured record sources.
type BuildFunc func(ctx context.Context) (*Ontology, error)

// Holder publishes one immutable Ontology snapshot to any number of
// concurrent readers. Reload builds a replacement off to the side and
// swaps the pointer atomically, so in-flight reads always observe a
// single consistent graph end-to-end.
type Holder struct {
	current atomic.Pointer[Ontology]
	build   BuildFunc
	group   singleflight.Group
}

// NewHolder creates a Holder seeded with the given snapshot.
func NewHolder(initial *Ontology, build BuildFunc) *Holder {
	h := &Holder{build: build}
	h.current.Store(initial)
	return h
}

// Snapshot returns the current ontology. The returned graph is immutable
// and stays valid even if a reload swaps in a successor.
func (h *Holder) Snapshot() *Ontology {
	return h.current.Load()
}

// Reload rebuilds the ontology and swaps it in. Concurrent reload
// triggers are coalesced into a single build; every caller observes the
// same outcome. A failed build leaves the current snapshot untouched.
func (h *Holder) Reload(ctx context.Context) (*Ontology, error) {
	next, err, _ := h.group.Do("reload", func() (any, error) {
		o, err := h.build(ctx)
		if err != nil {
			return nil, err
		}
		h.current.Store(o)
		return o, nil
	})
	if err != nil {
		return nil, err
	}
	return next.(*Ontology), nil
}
