package morph

import "math"

// hungarian solves minimum-cost perfect matching via the potentials-based
// successive-shortest-augmenting-path formulation of Kuhn-Munkres, O(size^3)
// where size = max(n,m). The cost matrix is padded to square with zeros
// internally, since the algorithm requires a square bipartite graph.
//
// Returns, for each of the n rows, the matched column index or -1 if the row
// was only matched to a padding column (can only happen when n > m).
func hungarian(cost [][]float32, n, m int) []int {
	size := n
	if m > size {
		size = m
	}

	c := make([][]float32, size)
	for i := range c {
		c[i] = make([]float32, size)
		if i < n {
			copy(c[i], cost[i])
		}
	}

	u := make([]float32, size+1)
	v := make([]float32, size+1)
	assignment := make([]int, size+1) // assignment[j] = row matched to column j (1-indexed), 0 = unmatched
	way := make([]int, size+1)

	const inf = float32(math.MaxFloat32)

	for i := 1; i <= size; i++ {
		assignment[0] = i
		j0 := 0
		minV := make([]float32, size+1)
		used := make([]bool, size+1)
		for j := range minV {
			minV[j] = inf
		}

		for {
			used[j0] = true
			i0 := assignment[j0]
			delta := inf
			j1 := 0

			for j := 1; j <= size; j++ {
				if used[j] {
					continue
				}
				cur := c[i0-1][j-1] - u[i0] - v[j]
				if cur < minV[j] {
					minV[j] = cur
					way[j] = j0
				}
				if minV[j] < delta {
					delta = minV[j]
					j1 = j
				}
			}

			for j := 0; j <= size; j++ {
				if used[j] {
					u[assignment[j]] += delta
					v[j] -= delta
				} else {
					minV[j] -= delta
				}
			}

			j0 = j1
			if assignment[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			prev := way[j0]
			assignment[j0] = assignment[prev]
			j0 = prev
		}
	}

	result := make([]int, n)
	for i := range result {
		result[i] = -1
	}
	for j := 1; j <= size; j++ {
		i := assignment[j]
		if i >= 1 && i <= n && j >= 1 && j <= m {
			result[i-1] = j - 1
		}
	}
	return result
}
