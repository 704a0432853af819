package shuffle

// randomSort draws indexes of arr uniformly at random, rejecting any index
// drawn before, and appends the element at each accepted index to a result
// buffer until every index has been drawn once. The rejection loop has no
// upper bound; termination is probabilistic (coupon collector).
func randomSort(src Source, arr []int) {
	if len(arr) == 0 {
		return
	}
	result := make([]int, 0, len(arr))
	used := make(map[int]struct{}, len(arr))
	for len(result) < len(arr) {
		idx := src.Intn(len(arr))
		if _, ok := used[idx]; ok {
			continue
		}
		used[idx] = struct{}{}
		result = append(result, arr[idx])
	}
	copy(arr, result)
}

// naiveSwap swaps every position with an index drawn from the whole range,
// not the shrinking suffix. The resulting distribution over permutations is
// non-uniform.
func naiveSwap(src Source, arr []int) {
	for i := range arr {
		j := src.Intn(len(arr))
		arr[i], arr[j] = arr[j], arr[i]
	}
}

// fisherYates swaps position i with an index drawn from [0, i], for i from
// the last position down to 1. Every permutation is equally likely.
func fisherYates(src Source, arr []int) {
	for i := len(arr) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		arr[i], arr[j] = arr[j], arr[i]
	}
}
