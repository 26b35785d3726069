package engine

// MinRankDesc assigns competition ("1224") ranks to values, descending:
// the highest value gets rank 1, tied values share the lowest rank among
// them, and the next distinct value's rank skips by the tie count.
func MinRankDesc(values []float64) []int {
	ranks := make([]int, len(values))
	for i, v := range values {
		rank := 1
		for _, other := range values {
			if other > v {
				rank++
			}
		}
		ranks[i] = rank
	}
	return ranks
}
