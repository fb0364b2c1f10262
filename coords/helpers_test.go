// SPDX-License-Identifier: MIT
package coords_test

import "gonum.org/v1/gonum/stat/combin"

// orderedSelections returns every ordered selection of k distinct axes out
// of n. The empty selection is handled here rather than in combin.
func orderedSelections(n, k int) [][]int {
	if k == 0 {
		return [][]int{{}}
	}

	return combin.Permutations(n, k)
}

// subsets returns every ascending selection of k axes out of n.
func subsets(n, k int) [][]int {
	if k == 0 {
		return [][]int{{}}
	}

	return combin.Combinations(n, k)
}
