package prim

import (
	"fmt"

	"github.com/katalvlaran/fibheap/dijkstra"
	"github.com/katalvlaran/fibheap/fibheap"
)

// Prim returns the edges of a Minimum Spanning Tree grown from root, in the
// order their far endpoints joined the tree, and the tree's total weight.
//
// Steps:
//  1. Validate the graph and root; a single-vertex graph yields an empty tree.
//  2. Queue root with key 0.
//  3. Extract the closest vertex u, add the edge that reached it, and for
//     every arc u→v with v outside the tree: queue v, or lower its key if
//     the arc is lighter than its current best edge.
//  4. Fail with ErrDisconnected if fewer than |V| vertices were reached.
//
// Complexity: O(E + V log V) time, O(V) memory.
func Prim(g dijkstra.Graph, root string) ([]dijkstra.Edge, int64, error) {
	// 1) Validate.
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}
	if d, ok := g.(directed); ok && d.Directed() {
		return nil, 0, ErrInvalidGraph
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !g.HasVertex(root) {
		return nil, 0, fmt.Errorf("%w: %q", dijkstra.ErrVertexNotFound, root)
	}
	n := len(vertices)
	if n == 1 {
		return []dijkstra.Edge{}, 0, nil
	}

	// 2) One heap entry per discovered vertex; its priority is the weight of
	// best[v], the lightest known edge from the tree.
	pq := fibheap.New[string]()
	handles := make(map[string]*fibheap.Node[string], n)
	best := make(map[string]dijkstra.Edge, n)
	inTree := make(map[string]bool, n)
	handles[root] = pq.Insert(root, 0)

	mst := make([]dijkstra.Edge, 0, n-1)
	var total int64

	// 3) Grow the tree.
	for {
		item, ok := pq.ExtractMin()
		if !ok {
			break
		}
		u := item.Value()
		inTree[u] = true
		if u != root {
			e := best[u]
			mst = append(mst, e)
			total += e.Weight
		}

		edges, err := g.Neighbors(u)
		if err != nil {
			return nil, 0, fmt.Errorf("prim: failed to get neighbors of %q: %w", u, err)
		}
		for _, e := range edges {
			v := e.To
			if inTree[v] {
				continue
			}
			h, queued := handles[v]
			if !queued {
				handles[v] = pq.Insert(v, e.Weight)
				best[v] = e

				continue
			}
			if e.Weight < h.Priority() {
				if err := pq.DecreaseKey(h, e.Weight); err != nil {
					return nil, 0, fmt.Errorf("prim: decrease-key of %q: %w", v, err)
				}
				best[v] = e
			}
		}
	}

	// 4) Every vertex must have joined.
	if len(inTree) < n {
		return nil, 0, fmt.Errorf("%w: reached %d of %d vertices from %q", ErrDisconnected, len(inTree), n, root)
	}

	return mst, total, nil
}
