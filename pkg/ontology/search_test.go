package ontology

import (
	"errors"
	"reflect"
	"testing"
)

func TestSuggest(t *testing.T) {
	o := New([]Record{
		{ID: "1", Label: "CERVIX DISORDER"},
		{ID: "2", Label: "CERVIX CARCINOMA"},
		{ID: "3", Label: "SKIN DISORDER"},
		{ID: "4", Label: "CARCINOMA"},
	})

	tests := []struct {
		name  string
		query string
		limit int
		want  []string
	}{
		{
			name:  "substring matches in load order",
			query: "disorder",
			limit: 10,
			want:  []string{"CERVIX DISORDER", "SKIN DISORDER"},
		},
		{
			name:  "case insensitive",
			query: "CeRvIx",
			limit: 10,
			want:  []string{"CERVIX DISORDER", "CERVIX CARCINOMA"},
		},
		{
			name:  "limit caps results",
			query: "c",
			limit: 2,
			want:  []string{"CERVIX DISORDER", "CERVIX CARCINOMA"},
		},
		{
			name:  "no matches",
			query: "zzz",
			limit: 10,
			want:  []string{},
		},
		{
			name:  "empty query matches nothing",
			query: "",
			limit: 10,
			want:  []string{},
		},
		{
			name:  "full label match",
			query: "carcinoma",
			limit: 10,
			want:  []string{"CERVIX CARCINOMA", "CARCINOMA"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := o.Suggest(tt.query, tt.limit)
			if err != nil {
				t.Fatalf("Suggest(%q, %d) failed: %v", tt.query, tt.limit, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Suggest(%q, %d) = %v, want %v", tt.query, tt.limit, got, tt.want)
			}
		})
	}
}

func TestSuggestInvalidLimit(t *testing.T) {
	o := New([]Record{{ID: "1", Label: "A"}})

	for _, limit := range []int{0, -1} {
		if _, err := o.Suggest("a", limit); !errors.Is(err, ErrInvalidLimit) {
			t.Errorf("Suggest(a, %d) error = %v, want ErrInvalidLimit", limit, err)
		}
	}
}
