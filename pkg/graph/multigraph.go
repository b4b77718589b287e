package graph

// Movie is one edge bundle of the multigraph: every pair of cast
// members is connected through it at the same weight. Parallel movies
// between the same actor pair are kept distinct — each is an
// independent relaxation candidate for the shortest-path engine.
type Movie struct {
	Key    string // title#@year, also the printed form
	Weight int
	Cast   []int // actor ids in record order; not deduplicated
}

// Multigraph is the weighted actor-movie incidence used by the
// shortest-path engine. Read-only after construction.
type Multigraph struct {
	reg     *Registry
	movies  []*Movie
	byActor [][]*Movie // actor id -> movies they appear in, per record
}

// Registry returns the actor registry the graph was built against.
func (g *Multigraph) Registry() *Registry {
	return g.reg
}

// Movies returns the movie list of one actor. One entry per source
// record, so duplicate rows yield repeat entries.
func (g *Multigraph) Movies(actor int) []*Movie {
	return g.byActor[actor]
}

// Len returns the number of actor vertices.
func (g *Multigraph) Len() int {
	return g.reg.Len()
}

// MovieCount returns the number of distinct movies.
func (g *Multigraph) MovieCount() int {
	return len(g.movies)
}
