// Package prim computes a Minimum Spanning Tree (MST) of an undirected,
// weighted graph with Prim's algorithm on a Fibonacci heap.
//
// What & Why
//
//   - Given an undirected, connected, weighted graph G = (V, E), an MST is a
//     subset T ⊆ E that spans V with the smallest total weight.
//   - Prim grows one tree from a root. Every vertex outside the tree keeps a
//     single heap entry keyed by the lightest edge that reaches it from the
//     tree; a lighter edge found later lowers that entry with DecreaseKey
//     instead of pushing another candidate.
//
// Complexity:
//
//   - Time:  O(E + V log V) with the Fibonacci heap (V extractions, at most
//     E decrease-keys at O(1) amortized).
//   - Space: O(V) for handles, best edges and the heap.
//
// Graphs are read through dijkstra.Graph, so dijkstra.Adjacency built with
// NewAdjacency(false) can be passed directly. Negative weights are allowed.
//
// Errors:
//
//	– ErrInvalidGraph  nil graph, or a graph reporting Directed() == true.
//	– ErrEmptyRoot     root is "".
//	– ErrDisconnected  empty graph, or some vertex is unreachable from root.
//	– dijkstra.ErrVertexNotFound  root is not in the graph.
package prim
