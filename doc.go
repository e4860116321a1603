// Package fibheap is the root of a Fibonacci heap toolkit: a generic
// mergeable priority queue with amortized O(1) insert, merge and
// decrease-key, a shortest-path client built on it, and a small tool for
// driving a heap from operation scripts.
//
// Layout:
//
//	fibheap/        — Heap[T] and Node[T]: insert, extract-min, merge/union,
//	                  decrease/increase priority, delete, search, validate, dump
//	dijkstra/       — single-source shortest paths using fibheap handles for
//	                  decrease-key
//	prim/           — minimum spanning trees on the same handles
//	internal/script — line-oriented operation scripts and their runner
//	internal/config — TOML configuration of the tool
//	cmd/fibheap     — the command-line tool
//	examples/       — runnable scenarios (go run ./examples)
//
// Quick example:
//
//	h := fibheap.New[string]()
//	h.Insert("a", 5)
//	b := h.Insert("b", 9)
//	_ = h.DecreaseKey(b, 1)
//	n, _ := h.ExtractMin() // n.Value() == "b"
//
//	go get github.com/katalvlaran/fibheap/fibheap
package fibheap
