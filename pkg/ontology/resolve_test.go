package ontology

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	o := New([]Record{
		{ID: "http://entity/CST/CERVIX%20DIS", Label: "CERVIX DISORDER"},
		{ID: "plain-id", Label: "Plain Label"},
	})

	tests := []struct {
		name    string
		query   string
		want    string
		wantErr error
	}{
		{
			name:  "exact id match",
			query: "http://entity/CST/CERVIX%20DIS",
			want:  "http://entity/CST/CERVIX%20DIS",
		},
		{
			name:  "label exact case",
			query: "CERVIX DISORDER",
			want:  "http://entity/CST/CERVIX%20DIS",
		},
		{
			name:  "label lowercase",
			query: "cervix disorder",
			want:  "http://entity/CST/CERVIX%20DIS",
		},
		{
			name:  "label mixed case",
			query: "Cervix Disorder",
			want:  "http://entity/CST/CERVIX%20DIS",
		},
		{
			name:    "unknown query",
			query:   "nonexistent",
			wantErr: ErrNotFound,
		},
		{
			name:    "id is case sensitive",
			query:   "PLAIN-ID",
			wantErr: ErrNotFound,
		},
		{
			name:    "query is not trimmed",
			query:   " plain label ",
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := o.Resolve(tt.query)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve(%q) error = %v, want %v", tt.query, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tt.query, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestResolveIDPrecedenceOverLabel(t *testing.T) {
	// An id that coincidentally equals another entity's label must
	// resolve as an id.
	o := New([]Record{
		{ID: "apple", Label: "Fruit"},
		{ID: "x", Label: "apple"},
	})

	id, err := o.Resolve("apple")
	if err != nil {
		t.Fatalf("Resolve(apple) failed: %v", err)
	}
	if id != "apple" {
		t.Errorf("Resolve(apple) = %q, want the id match apple", id)
	}
}
