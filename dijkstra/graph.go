package dijkstra

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Adjacency is a minimal in-memory Graph backed by adjacency lists.
// It is not safe for concurrent mutation.
type Adjacency struct {
	directed bool
	out      map[string][]Edge
}

// NewAdjacency returns an empty graph. When directed is false every AddEdge
// also records the reverse arc.
func NewAdjacency(directed bool) *Adjacency {
	return &Adjacency{directed: directed, out: make(map[string][]Edge)}
}

// Directed reports whether arcs are stored one-way only.
func (a *Adjacency) Directed() bool { return a.directed }

// AddVertex adds id if it is not present yet.
func (a *Adjacency) AddVertex(id string) {
	if _, ok := a.out[id]; !ok {
		a.out[id] = nil
	}
}

// AddEdge adds from → to with weight w, creating missing endpoints.
// Self-loops are recorded once.
func (a *Adjacency) AddEdge(from, to string, w int64) {
	a.AddVertex(from)
	a.AddVertex(to)
	a.out[from] = append(a.out[from], Edge{From: from, To: to, Weight: w})
	if !a.directed && from != to {
		a.out[to] = append(a.out[to], Edge{From: to, To: from, Weight: w})
	}
}

// Vertices returns all vertex IDs in ascending order.
func (a *Adjacency) Vertices() []string {
	ids := lo.Keys(a.out)
	slices.Sort(ids)

	return ids
}

// HasVertex reports whether id is present.
func (a *Adjacency) HasVertex(id string) bool {
	_, ok := a.out[id]

	return ok
}

// Neighbors returns the arcs leaving id.
func (a *Adjacency) Neighbors(id string) ([]Edge, error) {
	edges, ok := a.out[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return edges, nil
}

// Edges returns every stored arc, grouped by source vertex in ascending order.
func (a *Adjacency) Edges() []Edge {
	return lo.FlatMap(a.Vertices(), func(id string, _ int) []Edge {
		return a.out[id]
	})
}
