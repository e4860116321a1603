// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// Vertices are settled in order of increasing distance using a Fibonacci
// heap with one entry per discovered vertex; a shorter path found later
// lowers that entry in place (decrease-key) instead of pushing a duplicate.
//
// Complexity:
//
//   - Time:  O(E + V log V)
//   - Each vertex is inserted and extracted at most once: V inserts, V extractions at O(log V).
//   - Each edge relaxation costs at most one decrease-key at O(1) amortized: up to E of them.
//   - Space: O(V)
//   - Distance, predecessor and handle maps plus at most V heap nodes.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
package dijkstra

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/fibheap/fibheap"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in the weighted graph g. It accepts functional options
// to customize behavior (ReturnPath, MaxDistance, InfEdgeThreshold, Logger).
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (math.MaxInt64 if unreachable).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For the source and unreachable v, prev[v] == "".
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
func Dijkstra(g Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// 3) Pre-scan all edges to detect negative weights. Fail fast with ErrNegativeWeight.
	vertices := g.Vertices()
	for _, v := range vertices {
		edges, err := g.Neighbors(v)
		if err != nil {
			return nil, nil, fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", v, err)
		}
		for _, e := range edges {
			if e.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	// 4) Prepare state.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, len(vertices)),
		handles: make(map[string]*fibheap.Node[string], len(vertices)),
		pq:      fibheap.New[string](),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(vertices))
	}
	r.init(vertices)

	// 5) Main loop.
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Graph
	options Options
	dist    map[string]int64                 // best-known distance from Source
	prev    map[string]string                // predecessor on the shortest path; nil unless ReturnPath
	handles map[string]*fibheap.Node[string] // heap entry of every discovered vertex
	pq      *fibheap.Heap[string]
}

// init sets dist[v] = +∞ for all vertices and queues the source at distance 0.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = math.MaxInt64
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[r.options.Source] = 0
	r.handles[r.options.Source] = r.pq.Insert(r.options.Source, 0)
}

// process repeatedly settles the closest queued vertex and relaxes its
// outgoing edges, until the heap is empty or the closest distance exceeds
// MaxDistance.
func (r *runner) process() error {
	log := r.options.Logger
	for {
		item, ok := r.pq.ExtractMin()
		if !ok {
			return nil
		}
		u, d := item.Value(), item.Priority()
		if d > r.options.MaxDistance {
			return nil
		}
		log.Trace().Str("vertex", u).Int64("dist", d).Msg("settle")

		if err := r.relax(u, d); err != nil {
			return err
		}
	}
}

// relax examines each arc leaving u and improves the distance of its head
// when a strictly shorter path through u is found. A newly reached vertex is
// inserted into the heap; an already queued one is lowered with DecreaseKey.
func (r *runner) relax(u string, du int64) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	log := r.options.Logger
	for _, e := range neighbors {
		v, w := e.To, e.Weight

		// Skip any edge that is marked as impassable by InfEdgeThreshold.
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		// Safety check: the pre-scan already rejected negative weights.
		if w < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, u, v, w)
		}

		// du <= MaxDistance, so the subtraction cannot wrap and du+w stays
		// within int64.
		if w > r.options.MaxDistance-du {
			continue
		}
		newDist := du + w
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}

		if h, queued := r.handles[v]; queued {
			if err := r.pq.DecreaseKey(h, newDist); err != nil {
				return fmt.Errorf("dijkstra: decrease-key of %q: %w", v, err)
			}
			log.Trace().Str("vertex", v).Int64("dist", newDist).Msg("decrease-key")

			continue
		}
		r.handles[v] = r.pq.Insert(v, newDist)
		log.Trace().Str("vertex", v).Int64("dist", newDist).Msg("discover")
	}

	return nil
}

// PathTo rebuilds the shortest path source → … → target from a predecessor
// map returned with WithReturnPath. It returns ErrVertexNotFound if target
// is not in prev and ErrNoPath if target was never reached.
func PathTo(prev map[string]string, source, target string) ([]string, error) {
	if _, ok := prev[target]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, target)
	}

	path := []string{target}
	for v := target; v != source; {
		p := prev[v]
		if p == "" {
			return nil, fmt.Errorf("%w: %q from %q", ErrNoPath, target, source)
		}
		path = append(path, p)
		v = p
		if len(path) > len(prev) {
			return nil, fmt.Errorf("%w: predecessor cycle at %q", ErrNoPath, v)
		}
	}

	slices.Reverse(path)

	return path, nil
}
