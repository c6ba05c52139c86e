package ontology

import (
	"reflect"
	"testing"
)

func TestParentsOf(t *testing.T) {
	o := New([]Record{
		{ID: "a", Label: "A"},
		{ID: "b", Label: "B", ParentIDs: []string{"a", "ghost"}},
	})

	tests := []struct {
		name string
		id   string
		want []string
	}{
		{name: "entity with parents", id: "b", want: []string{"a", "ghost"}},
		{name: "root entity", id: "a", want: nil},
		{name: "unknown id", id: "nope", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := o.ParentsOf(tt.id); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParentsOf(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestLabelOf(t *testing.T) {
	o := New([]Record{{ID: "a", Label: "A"}})

	if got := o.LabelOf("a"); got != "A" {
		t.Errorf("LabelOf(a) = %q, want A", got)
	}
	if got := o.LabelOf("ghost"); got != "ghost" {
		t.Errorf("LabelOf(ghost) = %q, want the id itself", got)
	}
}

func TestDuplicateIDLastWriteWins(t *testing.T) {
	o := New([]Record{
		{ID: "a", Label: "OLD", ParentIDs: []string{"x"}},
		{ID: "b", Label: "B"},
		{ID: "a", Label: "NEW", ParentIDs: []string{"y"}},
	})

	if got := o.LabelOf("a"); got != "NEW" {
		t.Errorf("LabelOf(a) = %q, want NEW", got)
	}
	if got := o.ParentsOf("a"); !reflect.DeepEqual(got, []string{"y"}) {
		t.Errorf("ParentsOf(a) = %v, want [y]", got)
	}

	// The replacing label resolves; the stale label index entry is
	// retained from the single-pass build and still maps to the id.
	id, err := o.Resolve("new")
	if err != nil || id != "a" {
		t.Errorf("Resolve(new) = (%q, %v), want (a, nil)", id, err)
	}
	id, err = o.Resolve("old")
	if err != nil || id != "a" {
		t.Errorf("Resolve(old) = (%q, %v), want (a, nil)", id, err)
	}

	// First-seen position is kept, with the replacing label.
	want := []string{"NEW", "B"}
	if got := o.Labels(); !reflect.DeepEqual(got, want) {
		t.Errorf("Labels() = %v, want %v", got, want)
	}
	if got := o.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestDuplicateLabelLastWriteWins(t *testing.T) {
	o := New([]Record{
		{ID: "a", Label: "SHARED"},
		{ID: "b", Label: "SHARED"},
	})

	id, err := o.Resolve("shared")
	if err != nil {
		t.Fatalf("Resolve(shared) failed: %v", err)
	}
	if id != "b" {
		t.Errorf("Resolve(shared) = %q, want b (last loaded wins)", id)
	}
}
