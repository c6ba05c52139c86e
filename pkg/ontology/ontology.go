package ontology

import (
	"strings"
)

// Record is one normalized ontology row: an entity id, its preferred
// label, and the ids of its direct parents in declaration order.
type Record struct {
	ID        string
	Label     string
	ParentIDs []string
}

// Ontology is the immutable in-memory hierarchy built from a record set.
// It owns the parent adjacency and the id/label indices. All methods are
// read-only and safe for unlimited concurrent use once built.
type Ontology struct {
	parents    map[string][]string
	labels     map[string]string
	labelIndex map[string]string
	order      []string
	excluded   map[string]struct{}
}

// Option configures graph construction.
type Option func(*Ontology)

// WithExcludedRoots marks ids that are skipped entirely during ancestor
// traversal. They are never reported and never traversed through. The
// OWL top concept is the typical candidate.
func WithExcludedRoots(ids ...string) Option {
	return func(o *Ontology) {
		for _, id := range ids {
			if id != "" {
				o.excluded[id] = struct{}{}
			}
		}
	}
}

// New builds an Ontology from records in a single pass. On duplicate ids
// the later record's label and parent list replace the earlier ones, and
// the label index keeps the last-loaded mapping. Parent ids that never
// appear as records ("dangling parents") are kept as-is; they participate
// in traversal by raw id.
func New(records []Record, opts ...Option) *Ontology {
	o := &Ontology{
		parents:    make(map[string][]string, len(records)),
		labels:     make(map[string]string, len(records)),
		labelIndex: make(map[string]string, len(records)),
		order:      make([]string, 0, len(records)),
		excluded:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(o)
	}

	for _, r := range records {
		if _, seen := o.labels[r.ID]; !seen {
			o.order = append(o.order, r.ID)
		}
		o.labels[r.ID] = r.Label
		o.labelIndex[strings.ToLower(r.Label)] = r.ID
		o.parents[r.ID] = r.ParentIDs
	}

	return o
}

// ParentsOf returns the direct parent ids of id, or nil when the id is
// unknown. Unknown ids are not an error so dangling references traverse
// without special-casing.
func (o *Ontology) ParentsOf(id string) []string {
	return o.parents[id]
}

// LabelOf returns the preferred label for id, falling back to the id
// itself when no record defined one.
func (o *Ontology) LabelOf(id string) string {
	if label, ok := o.labels[id]; ok {
		return label
	}
	return id
}

// Len returns the number of loaded entities.
func (o *Ontology) Len() int {
	return len(o.order)
}

// Labels returns every loaded entity label in first-seen record order.
// Duplicate ids keep their original position with the replacing label.
func (o *Ontology) Labels() []string {
	labels := make([]string, 0, len(o.order))
	for _, id := range o.order {
		labels = append(labels, o.labels[id])
	}
	return labels
}
