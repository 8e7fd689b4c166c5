package shapelet

// EncodeLabels maps arbitrary comparable class labels to dense integer
// class ids, assigned in order of first appearance. The generator only
// compares labels for equality, so any encoding that preserves equality is
// valid.
func EncodeLabels[T comparable](labels []T) []int {
	ids := make(map[T]int)
	out := make([]int, len(labels))
	for i, label := range labels {
		id, ok := ids[label]
		if !ok {
			id = len(ids)
			ids[label] = id
		}
		out[i] = id
	}
	return out
}
