package ontology

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestHolderReloadSwapsSnapshot(t *testing.T) {
	v1 := New([]Record{{ID: "a", Label: "A"}})
	v2 := New([]Record{{ID: "a", Label: "A"}, {ID: "b", Label: "B"}})

	h := NewHolder(v1, func(ctx context.Context) (*Ontology, error) {
		return v2, nil
	})

	if got := h.Snapshot(); got != v1 {
		t.Fatal("Snapshot() should return the initial ontology before reload")
	}

	got, err := h.Reload(context.Background())
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if got != v2 || h.Snapshot() != v2 {
		t.Error("Reload should swap in the rebuilt ontology")
	}

	// The old snapshot stays usable for readers that picked it up
	// before the swap.
	if v1.LabelOf("a") != "A" {
		t.Error("previous snapshot must remain valid after swap")
	}
}

func TestHolderReloadFailureKeepsSnapshot(t *testing.T) {
	v1 := New([]Record{{ID: "a", Label: "A"}})
	buildErr := errors.New("source unavailable")

	h := NewHolder(v1, func(ctx context.Context) (*Ontology, error) {
		return nil, buildErr
	})

	if _, err := h.Reload(context.Background()); !errors.Is(err, buildErr) {
		t.Fatalf("Reload error = %v, want %v", err, buildErr)
	}
	if h.Snapshot() != v1 {
		t.Error("failed reload must leave the current snapshot in place")
	}
}

func TestHolderConcurrentReads(t *testing.T) {
	records := []Record{
		{ID: "a", Label: "A"},
		{ID: "b", Label: "B", ParentIDs: []string{"a"}},
		{ID: "c", Label: "C", ParentIDs: []string{"a", "b"}},
	}
	h := NewHolder(New(records), func(ctx context.Context) (*Ontology, error) {
		return New(records), nil
	})

	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() {
			o := h.Snapshot()
			for range 100 {
				if _, err := o.Resolve("c"); err != nil {
					t.Error("Resolve failed during concurrent reads")
					return
				}
				got := o.AncestorsWithDepth("c")
				if got["A"] != 1 || got["B"] != 1 {
					t.Errorf("AncestorsWithDepth(c) = %v during concurrent reads", got)
					return
				}
			}
		})
		wg.Go(func() {
			if _, err := h.Reload(context.Background()); err != nil {
				t.Errorf("Reload failed: %v", err)
			}
		})
	}
	wg.Wait()
}
