package graph

// Registry is a bijection between actor names and dense zero-based
// ids, assigned in first-seen order. It is read-only once the build
// finishes and is shared across all queries of a run.
type Registry struct {
	nameToID map[string]int
	idToName []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{nameToID: make(map[string]int)}
}

// Register returns the id for name, assigning the next dense id on
// first sight.
func (r *Registry) Register(name string) int {
	if id, ok := r.nameToID[name]; ok {
		return id
	}
	id := len(r.idToName)
	r.nameToID[name] = id
	r.idToName = append(r.idToName, name)
	return id
}

// ID resolves a name to its id. Names coming from query files are not
// guaranteed to be a subset of the build dataset, so callers at the
// algorithm boundary must handle ErrUnknownActor.
func (r *Registry) ID(name string) (int, error) {
	id, ok := r.nameToID[name]
	if !ok {
		return 0, &ActorError{Op: "lookup", Actor: name, Cause: ErrUnknownActor}
	}
	return id, nil
}

// Name returns the name registered under id.
func (r *Registry) Name(id int) string {
	return r.idToName[id]
}

// Len returns the number of registered actors.
func (r *Registry) Len() int {
	return len(r.idToName)
}
