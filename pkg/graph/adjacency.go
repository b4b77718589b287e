package graph

// Adjacency is the dense symmetric boolean projection of the bipartite
// actor-movie relation: cell (i, j) is set iff actors i and j share at
// least one movie, multiplicity collapsed. The diagonal is always zero.
type Adjacency struct {
	n     int
	cells []bool
}

func newAdjacency(n int) *Adjacency {
	return &Adjacency{n: n, cells: make([]bool, n*n)}
}

// Len returns the number of vertices.
func (a *Adjacency) Len() int {
	return a.n
}

// Connected reports whether actors i and j share a movie.
func (a *Adjacency) Connected(i, j int) bool {
	return a.cells[i*a.n+j]
}

func (a *Adjacency) connect(i, j int) {
	if i == j {
		// Duplicate rows would otherwise create self-loops.
		return
	}
	a.cells[i*a.n+j] = true
	a.cells[j*a.n+i] = true
}

// Row returns actor i's adjacency row. Callers must treat it as
// read-only; it aliases the matrix.
func (a *Adjacency) Row(i int) []bool {
	return a.cells[i*a.n : (i+1)*a.n]
}

// Degree counts i's neighbours.
func (a *Adjacency) Degree(i int) int {
	d := 0
	for _, set := range a.Row(i) {
		if set {
			d++
		}
	}
	return d
}

// Edges counts the unordered connected pairs.
func (a *Adjacency) Edges() int {
	total := 0
	for i := 0; i < a.n; i++ {
		total += a.Degree(i)
	}
	return total / 2
}
