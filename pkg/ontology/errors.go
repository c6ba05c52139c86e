package ontology

import "errors"

var (
	// ErrNotFound is returned when a query matches neither a known
	// entity id nor a known label.
	ErrNotFound = errors.New("entity not found in ontology")

	// ErrInvalidLimit is returned by Suggest for a non-positive limit.
	ErrInvalidLimit = errors.New("suggestion limit must be positive")
)
