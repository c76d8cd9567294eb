// core/tree/upgma.go
package tree

import "errors"

// ErrNoSequences is returned when Build is called with zero sequences.
var ErrNoSequences = errors.New("tree: no sequences to cluster")

// Build runs UPGMA over the n×n distance matrix and returns the guide tree
// for n sequences. The active pair with the smallest average-linkage
// distance merges first; ties go to the first pair in ascending nested-loop
// order over the active list, so the result is deterministic for a fixed
// input order (but not invariant under reordering).
func Build(n int, dist [][]float64) (*Tree, error) {
	if n == 0 {
		return nil, ErrNoSequences
	}

	nodes := make([]Node, 0, 2*n-1)
	active := make([]int, 0, n)
	for i := 0; i < n; i++ {
		nodes = append(nodes, Node{
			SeqIndex: i,
			Left:     -1,
			Right:    -1,
			Members:  []int{i},
		})
		active = append(active, i)
	}

	for len(active) > 1 {
		minI, minJ := 0, 1
		minDist := avgLinkage(dist, nodes[active[0]].Members, nodes[active[1]].Members)
		for i := 0; i < len(active); i++ {
			for j := i + 1; j < len(active); j++ {
				if i == 0 && j == 1 {
					continue
				}
				d := avgLinkage(dist, nodes[active[i]].Members, nodes[active[j]].Members)
				if d < minDist {
					minDist = d
					minI, minJ = i, j
				}
			}
		}

		left, right := active[minI], active[minJ]
		members := make([]int, 0, len(nodes[left].Members)+len(nodes[right].Members))
		members = append(members, nodes[left].Members...)
		members = append(members, nodes[right].Members...)
		nodes = append(nodes, Node{
			SeqIndex: -1,
			Left:     left,
			Right:    right,
			Dist:     minDist / 2.0,
			Members:  members,
		})

		// drop the higher slot first so the lower index stays valid
		active = append(active[:minJ], active[minJ+1:]...)
		active = append(active[:minI], active[minI+1:]...)
		active = append(active, len(nodes)-1)
	}

	return &Tree{nodes: nodes, root: active[0]}, nil
}

// avgLinkage is the mean pairwise distance over the cross product of two
// member sets.
func avgLinkage(dist [][]float64, a, b []int) float64 {
	sum := 0.0
	for _, p := range a {
		for _, q := range b {
			sum += dist[p][q]
		}
	}
	return sum / float64(len(a)*len(b))
}
