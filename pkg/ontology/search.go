package ontology

import "strings"

// DefaultSuggestLimit caps suggestion lists when the caller does not
// pick a limit of its own.
const DefaultSuggestLimit = 10

// Suggest returns up to limit labels containing query, compared
// case-insensitively. Results keep the record load order, so ties are
// stable across calls. An empty query matches nothing and returns an
// empty, error-free result; a non-positive limit is rejected.
func (o *Ontology) Suggest(query string, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	matches := make([]string, 0)
	if query == "" {
		return matches, nil
	}

	needle := strings.ToLower(query)
	for _, id := range o.order {
		label := o.labels[id]
		if strings.Contains(strings.ToLower(label), needle) {
			matches = append(matches, label)
			if len(matches) == limit {
				break
			}
		}
	}

	return matches, nil
}
