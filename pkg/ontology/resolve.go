package ontology

import "strings"

// Resolve maps a user query to a canonical entity id. Ids are matched
// exactly first so an id-shaped token is never misread as a label, then
// the query is lowercased and matched against the label index. The query
// is not trimmed; normalization is the caller's job.
func (o *Ontology) Resolve(query string) (string, error) {
	if _, ok := o.labels[query]; ok {
		return query, nil
	}
	if id, ok := o.labelIndex[strings.ToLower(query)]; ok {
		return id, nil
	}
	return "", ErrNotFound
}
