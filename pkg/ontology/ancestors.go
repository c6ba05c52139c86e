package ontology

// AncestorsWithDepth returns every transitive ancestor of startID mapped
// to the minimal number of parent edges needed to reach it. Direct
// parents are depth 1. Ancestors with a known label are keyed by label,
// dangling parents by raw id. The start entity is never part of the
// result. A root entity yields an empty, non-nil map.
//
// The traversal is a breadth-first walk over the parent relation with a
// visited set keyed by id. The first visit to any id is necessarily along
// a shortest path, so already-visited parents are skipped; that same
// check bounds the walk on malformed cyclic input. When two distinct ids
// share a label the later-visited id overwrites the label's depth.
func (o *Ontology) AncestorsWithDepth(startID string) map[string]int {
	result := make(map[string]int)

	type frame struct {
		id    string
		depth int
	}
	queue := []frame{{id: startID}}
	visited := map[string]struct{}{startID: {}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, parent := range o.ParentsOf(current.id) {
			if _, skip := o.excluded[parent]; skip {
				continue
			}
			if _, seen := visited[parent]; seen {
				continue
			}
			visited[parent] = struct{}{}
			result[o.LabelOf(parent)] = current.depth + 1
			queue = append(queue, frame{id: parent, depth: current.depth + 1})
		}
	}

	return result
}
