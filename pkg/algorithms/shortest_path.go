// Package algorithms implements the three query engines that run
// against the immutable actor graph: weighted shortest path, link
// scoring by common neighbours, and k-core decomposition. Engines
// never mutate the graph; per-query state is freshly scoped so queries
// stay independent and repeatable regardless of order.
package algorithms

import (
	"container/heap"
	"math"
	"strings"

	"github.com/dmelton/costar/pkg/graph"
)

// PathHop is one step of a reconstructed path: the movie traversed and
// the actor reached through it.
type PathHop struct {
	MovieKey string
	Actor    string
}

// PathResult is the outcome of one shortest-path query.
type PathResult struct {
	Start    string
	End      string
	Found    bool
	Distance int       // sum of movie weights along the path; valid when Found
	Hops     []PathHop // start-to-end order; empty when Start == End
}

// ChainString renders the literal output contract,
// (A)--[M#@Y]-->(B)--[M2#@Y2]-->(C). When no path exists the line
// collapses to the bare start node with no arrows.
func (r *PathResult) ChainString() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(r.Start)
	b.WriteByte(')')
	if !r.Found {
		return b.String()
	}
	for _, hop := range r.Hops {
		b.WriteString("--[")
		b.WriteString(hop.MovieKey)
		b.WriteString("]-->(")
		b.WriteString(hop.Actor)
		b.WriteByte(')')
	}
	return b.String()
}

// vertexState is the per-query working arena, indexed by actor id.
// Allocated fresh for every query so no state leaks between queries;
// the shared multigraph is never written.
type vertexState struct {
	dist      []int
	done      []bool
	prevActor []int
	prevMovie []*graph.Movie
}

func newVertexState(n int) *vertexState {
	s := &vertexState{
		dist:      make([]int, n),
		done:      make([]bool, n),
		prevActor: make([]int, n),
		prevMovie: make([]*graph.Movie, n),
	}
	for i := range s.dist {
		s.dist[i] = math.MaxInt
		s.prevActor[i] = -1
	}
	return s
}

// frontierEntry snapshots its ordering key at insertion time. Distance
// ties break on the predecessor name recorded when the entry was
// pushed, then on the actor's own name, so equal-distance pops are
// stable across runs. This replaces the legacy comparator that read
// the candidate's current predecessor at pop time.
type frontierEntry struct {
	actor int
	dist  int
	prev  string // predecessor actor name when pushed; "" for the start
	name  string
}

type frontier []*frontierEntry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}
	if f[i].prev != f[j].prev {
		return f[i].prev < f[j].prev
	}
	return f[i].name < f[j].name
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*frontierEntry)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// ShortestPath runs Dijkstra over the weighted movie multigraph from
// start to end. The frontier uses lazy decrease-key: improved
// distances push duplicate entries and stale ones are skipped once a
// vertex settles. Unknown endpoints fail with graph.ErrUnknownActor
// before any search state is built.
func ShortestPath(g *graph.Multigraph, start, end string) (*PathResult, error) {
	reg := g.Registry()
	startID, err := reg.ID(start)
	if err != nil {
		return nil, err
	}
	endID, err := reg.ID(end)
	if err != nil {
		return nil, err
	}

	st := newVertexState(g.Len())
	st.dist[startID] = 0

	pq := make(frontier, 0, g.Len())
	heap.Push(&pq, &frontierEntry{actor: startID, name: start})

	reached := false
	for pq.Len() > 0 {
		entry := heap.Pop(&pq).(*frontierEntry)
		u := entry.actor

		// The first pop of the destination settles it.
		if u == endID {
			reached = true
			break
		}
		if st.done[u] {
			continue // stale entry from a superseded distance
		}
		st.done[u] = true

		for _, m := range g.Movies(u) {
			for _, v := range m.Cast {
				if v == u {
					continue
				}
				if cand := st.dist[u] + m.Weight; cand < st.dist[v] {
					st.dist[v] = cand
					st.prevActor[v] = u
					st.prevMovie[v] = m
					heap.Push(&pq, &frontierEntry{
						actor: v,
						dist:  cand,
						prev:  reg.Name(u),
						name:  reg.Name(v),
					})
				}
			}
		}
	}

	res := &PathResult{Start: start, End: end}
	if !reached {
		return res, nil
	}

	res.Found = true
	res.Distance = st.dist[endID]
	for v := endID; st.prevActor[v] != -1; v = st.prevActor[v] {
		res.Hops = append(res.Hops, PathHop{
			MovieKey: st.prevMovie[v].Key,
			Actor:    reg.Name(v),
		})
	}
	for i, j := 0, len(res.Hops)-1; i < j; i, j = i+1, j-1 {
		res.Hops[i], res.Hops[j] = res.Hops[j], res.Hops[i]
	}
	return res, nil
}
