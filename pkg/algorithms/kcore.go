package algorithms

import (
	"sort"

	"github.com/dmelton/costar/pkg/graph"
)

// KCore peels the projected graph down to the maximal subgraph in
// which every surviving actor keeps at least k connections to other
// survivors, and returns the survivors' names sorted lexicographically.
//
// Peeling is batched: each full pass removes every live vertex whose
// degree sits in [0, k), tombstones it with a degree of -n (below any
// threshold the loop can ever test), and decrements its still-live
// neighbours. Passes repeat until one removes nothing. k-core
// decomposition is confluent, so the peeling order only affects pass
// count, never the surviving set.
func KCore(adj *graph.Adjacency, reg *graph.Registry, k int) []string {
	n := adj.Len()
	degree := make([]int, n)
	for i := range degree {
		degree[i] = adj.Degree(i)
	}

	for changed := true; changed; {
		changed = false
		for i := 0; i < n; i++ {
			if degree[i] >= k || degree[i] <= -n {
				continue // survives this pass, or already tombstoned
			}
			changed = true
			for j, connected := range adj.Row(i) {
				if connected {
					degree[j]--
				}
			}
			degree[i] = -n
		}
	}

	var names []string
	for i := 0; i < n; i++ {
		if degree[i] >= k {
			names = append(names, reg.Name(i))
		}
	}
	sort.Strings(names)
	return names
}
