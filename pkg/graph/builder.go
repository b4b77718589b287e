// Package graph builds and holds the actor-collaboration graph. The
// bipartite (actor, movie) relation is materialized either as a dense
// symmetric adjacency matrix (link scoring, k-core) or as a weighted
// movie multigraph (shortest paths). Both views share one registry and
// one grouping pass, so the three tools get identical ids and error
// semantics from identical inputs.
package graph

import (
	"strconv"

	"github.com/dmelton/costar/pkg/dataset"
)

// Weighting selects the movie edge weight model.
type Weighting int

const (
	// Unweighted assigns weight 1 to every movie.
	Unweighted Weighting = iota
	// Weighted assigns (2018 - year) + 1, preferring newer movies with
	// lower weights.
	Weighted
)

// referenceYear anchors the weighted edge model. The dataset predates
// it by design, keeping weights strictly positive.
const referenceYear = 2018

// MovieKey is the composite (title, year) identity of a movie.
func MovieKey(title string, year int) string {
	return title + "#@" + strconv.Itoa(year)
}

// movieGroup is the first build pass: records grouped by movie key,
// actor ids assigned on first occurrence.
type movieGroup struct {
	reg    *Registry
	order  []string // movie keys in first-seen order
	weight map[string]int
	cast   map[string][]int
}

func group(records []dataset.Record, w Weighting) *movieGroup {
	mg := &movieGroup{
		reg:    NewRegistry(),
		weight: make(map[string]int),
		cast:   make(map[string][]int),
	}
	for _, rec := range records {
		id := mg.reg.Register(rec.Actor)
		key := MovieKey(rec.Title, rec.Year)
		if _, ok := mg.weight[key]; !ok {
			mg.order = append(mg.order, key)
			wt := 1
			if w == Weighted {
				wt = referenceYear - rec.Year + 1
			}
			mg.weight[key] = wt
		}
		mg.cast[key] = append(mg.cast[key], id)
	}
	return mg
}

// Projection materializes the dense adjacency matrix: every unordered
// pair within a movie's cast is connected. Single-cast movies
// contribute no edges.
func Projection(records []dataset.Record) (*Registry, *Adjacency) {
	mg := group(records, Unweighted)
	adj := newAdjacency(mg.reg.Len())
	for _, key := range mg.order {
		cast := mg.cast[key]
		for i := 0; i < len(cast); i++ {
			for j := i + 1; j < len(cast); j++ {
				adj.connect(cast[i], cast[j])
			}
		}
	}
	return mg.reg, adj
}

// BuildMultigraph materializes the weighted multigraph: per-actor movie
// lists plus per-movie weight and cast. Weights are fixed here and
// never recomputed.
func BuildMultigraph(records []dataset.Record, w Weighting) (*Registry, *Multigraph) {
	mg := group(records, w)

	g := &Multigraph{
		reg:     mg.reg,
		movies:  make([]*Movie, 0, len(mg.order)),
		byActor: make([][]*Movie, mg.reg.Len()),
	}
	byKey := make(map[string]*Movie, len(mg.order))
	for _, key := range mg.order {
		m := &Movie{Key: key, Weight: mg.weight[key], Cast: mg.cast[key]}
		g.movies = append(g.movies, m)
		byKey[key] = m
	}

	// Appearances follow the records, not the deduplicated casts, so a
	// duplicate source row repeats the movie in the actor's list just
	// as it repeats the actor in the cast.
	for _, rec := range records {
		id, _ := mg.reg.ID(rec.Actor)
		g.byActor[id] = append(g.byActor[id], byKey[MovieKey(rec.Title, rec.Year)])
	}

	return mg.reg, g
}
