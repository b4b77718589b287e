package algorithms

import (
	"sort"

	"github.com/dmelton/costar/pkg/graph"
)

// ScoreMode selects which candidates the link scorer ranks.
type ScoreMode int

const (
	// Predict ranks existing co-stars: the strongest current ties.
	Predict ScoreMode = iota
	// Recommend ranks actors never worked with: the best new ties.
	Recommend
)

// TopMatches is the ranked-candidate cut per target actor.
const TopMatches = 4

// MutualCounts computes, for every actor v, the number of actors
// connected to both u and v. mutual(u) is forced to zero so the query
// actor never ranks itself.
//
// Full-row dot products keep the original O(n²)-per-query shape.
// TODO: intersect the smaller adjacency list instead, dropping each
// candidate to O(deg(u)+deg(v)) when n grows large.
func MutualCounts(adj *graph.Adjacency, u int) []int {
	n := adj.Len()
	row := adj.Row(u)
	counts := make([]int, n)
	for v := 0; v < n; v++ {
		other := adj.Row(v)
		c := 0
		for k := 0; k < n; k++ {
			if other[k] && row[k] {
				c++
			}
		}
		counts[v] = c
	}
	counts[u] = 0
	return counts
}

// RankMatches returns up to TopMatches candidate names for the target
// actor. Predict restricts candidates to existing connections,
// Recommend to non-connections. Zero-mutual candidates carry no signal
// and are excluded entirely, so fewer than TopMatches names — or none —
// may come back. Ordering: mutual count descending, name ascending.
func RankMatches(adj *graph.Adjacency, reg *graph.Registry, actor string, mode ScoreMode) ([]string, error) {
	u, err := reg.ID(actor)
	if err != nil {
		return nil, err
	}

	counts := MutualCounts(adj, u)
	row := adj.Row(u)

	type candidate struct {
		count int
		name  string
	}
	var cands []candidate
	for v := 0; v < adj.Len(); v++ {
		if row[v] != (mode == Predict) {
			continue
		}
		if counts[v] == 0 {
			continue
		}
		cands = append(cands, candidate{count: counts[v], name: reg.Name(v)})
	}

	sort.Slice(cands, func(i, j int) bool {
		if cands[i].count != cands[j].count {
			return cands[i].count > cands[j].count
		}
		return cands[i].name < cands[j].name
	})
	if len(cands) > TopMatches {
		cands = cands[:TopMatches]
	}

	names := make([]string, len(cands))
	for i, c := range cands {
		names[i] = c.name
	}
	return names, nil
}
