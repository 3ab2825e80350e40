package dataset

// LabelEncode encodes categories as integers in first-occurrence order and
// returns the distinct categories in that same order. The index map is what
// ties a sample's label to its plot color.
func LabelEncode(labels []string) ([]int, []string) {
	index := map[string]int{}
	classes := []string{}
	out := make([]int, len(labels))
	for i, v := range labels {
		if _, ok := index[v]; !ok {
			index[v] = len(classes)
			classes = append(classes, v)
		}
		out[i] = index[v]
	}
	return out, classes
}
