package ecs

// IntersectIDs returns slot ids present in both sets, ordered as in the
// smaller set.
func IntersectIDs(a, b *SparseSet) []int {
	if a == nil || b == nil {
		return nil
	}
	if len(a.denseIDs) > len(b.denseIDs) {
		a, b = b, a
	}
	out := make([]int, 0, len(a.denseIDs))
	for _, id := range a.denseIDs {
		if b.Has(id) {
			out = append(out, id)
		}
	}
	return out
}
