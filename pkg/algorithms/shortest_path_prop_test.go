package algorithms

import (
	"fmt"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dmelton/costar/pkg/dataset"
	"github.com/dmelton/costar/pkg/graph"
)

// bruteForceDistances collapses the multigraph to min-weight edges and
// runs Floyd-Warshall. Parallel movies never help a shortest path
// beyond the cheapest of them, so the collapsed distances are exact.
func bruteForceDistances(records []dataset.Record, reg *graph.Registry, w graph.Weighting) [][]int {
	n := reg.Len()
	dist := make([][]int, n)
	for i := range dist {
		dist[i] = make([]int, n)
		for j := range dist[i] {
			if i != j {
				dist[i][j] = math.MaxInt / 2
			}
		}
	}

	cast := make(map[string][]int)
	weight := make(map[string]int)
	for _, rec := range records {
		key := graph.MovieKey(rec.Title, rec.Year)
		id, _ := reg.ID(rec.Actor)
		cast[key] = append(cast[key], id)
		if _, ok := weight[key]; !ok {
			wt := 1
			if w == graph.Weighted {
				wt = 2018 - rec.Year + 1
			}
			weight[key] = wt
		}
	}
	for key, members := range cast {
		for _, i := range members {
			for _, j := range members {
				if i != j && weight[key] < dist[i][j] {
					dist[i][j] = weight[key]
				}
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d := dist[i][k] + dist[k][j]; d < dist[i][j] {
					dist[i][j] = d
				}
			}
		}
	}
	return dist
}

// genRecords produces small random relations over up to 6 actors and
// 5 movies, years tied to the movie so a movie key is unambiguous.
func genRecords() gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, 29)).Map(func(codes []int) []dataset.Record {
		records := make([]dataset.Record, 0, len(codes))
		for _, c := range codes {
			actor := c % 6
			movie := c / 6
			records = append(records, dataset.Record{
				Actor: fmt.Sprintf("actor-%d", actor),
				Title: fmt.Sprintf("movie-%d", movie),
				Year:  2000 + movie,
			})
		}
		return records
	})
}

func TestShortestPathOptimality(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	check := func(w graph.Weighting) func([]dataset.Record) bool {
		return func(records []dataset.Record) bool {
			reg, g := graph.BuildMultigraph(records, w)
			want := bruteForceDistances(records, reg, w)
			for i := 0; i < reg.Len(); i++ {
				for j := 0; j < reg.Len(); j++ {
					res, err := ShortestPath(g, reg.Name(i), reg.Name(j))
					if err != nil {
						return false
					}
					reachable := want[i][j] < math.MaxInt/2
					if res.Found != reachable {
						return false
					}
					if reachable && res.Distance != want[i][j] {
						return false
					}
				}
			}
			return true
		}
	}

	properties.Property("weighted distances are minimal", prop.ForAll(
		check(graph.Weighted), genRecords(),
	))
	properties.Property("unweighted distances are minimal", prop.ForAll(
		check(graph.Unweighted), genRecords(),
	))

	properties.TestingRun(t)
}
