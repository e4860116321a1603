// Package dijkstra provides an implementation of Dijkstra's shortest-path
// algorithm on weighted graphs with non-negative edge weights, driven by a
// Fibonacci heap with true decrease-key.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O(E + V log V) time, where V = |vertices| and E = |edges|.
//   - Each discovered vertex owns exactly one heap entry. When a shorter path is
//     found, the entry is lowered in place with fibheap.DecreaseKey (O(1) amortized)
//     rather than pushing a duplicate and skipping stale entries later.
//   - Supports optional path reconstruction, distance caps, and “impassable” edge thresholds.
//
// When to use:
//
//   - Dense graphs, where E ≫ V and the O(1) decrease-key pays off.
//   - As a reference client for the fibheap package.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: if enabled, returns a “predecessor” map; PathTo rebuilds a path from it.
//   - MaxDistance: aborts exploration beyond a specified distance, saving work in large graphs.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable (infinite cost).
//   - Logger: a zerolog.Logger receiving trace events (settle, discover, decrease-key).
//
// Graph input:
//
//	Any value implementing Graph (Vertices, HasVertex, Neighbors) can be searched.
//	Adjacency is a small in-package implementation; NewAdjacency(false) mirrors
//	every edge so the graph behaves as undirected.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     the Source string is empty.
//   - ErrNilGraph:        a nil Graph was passed.
//   - ErrVertexNotFound:  the source (or a PathTo target) does not exist.
//   - ErrNegativeWeight:  some edge has a negative weight (detected by a fast O(E) pre-scan).
//   - ErrBadMaxDistance:  raised (via panic) if MaxDistance is negative.
//   - ErrBadInfThreshold: raised (via panic) if InfEdgeThreshold is zero or negative.
//   - ErrNoPath:          PathTo target is unreachable.
//
// API reference:
//
//	func Dijkstra(
//	    g Graph,
//	    opts ...Option,
//	) (dist map[string]int64, prev map[string]string, err error)
//
//	  - dist:    map[v] = minimal distance from Source to v, or math.MaxInt64 if unreachable.
//	  - prev:    map[v] = immediate predecessor of v on one shortest path from Source,
//	              or "" if v is the Source or v is unreachable. Nil if ReturnPath=false.
//
// Thread safety:
//
//   - Dijkstra allocates all of its state per call; concurrent calls are safe as long
//     as the Graph is not mutated meanwhile.
package dijkstra
