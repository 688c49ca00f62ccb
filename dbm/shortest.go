// Package: dbm
//
// Purpose:
//   - All-pairs shortest-path closure via Floyd–Warshall over ℤ ∪ {+∞},
//     the canonical form of a satisfiable difference-bound system.
//
// Contract:
//   - Works on a clone; the receiver is never modified.
//   - +∞ means "no constraint": absorbing under Add, identity under Min.
//   - Loop order is fixed (k → i → j) over node insertion order for
//     deterministic accumulation.
//   - Self-loop weights are forced to 0 after the closure.
//
// Complexity: O(V^3) weight relaxations; each WeightOf/SetWeight scans an
// adjacency list, which stays short at DBM sizes (one node per variable
// reference point).

package dbm

// ShortestPaths returns a fresh graph whose edge weights are the all-pairs
// shortest path distances of g, with every self-loop normalized to 0.
func (g *Graph) ShortestPaths() *Graph {
	sp := g.Clone()

	for _, k := range g.nodes { // intermediate node
		for _, i := range g.nodes { // source
			ik := sp.WeightOf(i, k)
			if ik.IsInf() {
				continue // no path via k can improve anything from i
			}
			for _, j := range g.nodes { // destination
				via := ik.Add(sp.WeightOf(k, j))
				if via.Less(sp.WeightOf(i, j)) {
					sp.SetWeight(i, via, j)
				}
			}
		}
	}

	// The trivial constraint x - x <= 0 holds everywhere.
	for _, node := range g.nodes {
		sp.SetWeight(node, Finite(0), node)
	}

	return sp
}
