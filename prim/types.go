package prim

import "errors"

var (
	// ErrInvalidGraph indicates that the graph is nil or directed.
	ErrInvalidGraph = errors.New("prim: MST requires an undirected graph")

	// ErrEmptyRoot indicates that no start vertex was given.
	ErrEmptyRoot = errors.New("prim: empty root vertex")

	// ErrDisconnected indicates that no spanning tree covers every vertex.
	ErrDisconnected = errors.New("prim: graph is disconnected")
)

// directed is implemented by graphs that know their orientation, such as
// dijkstra.Adjacency.
type directed interface {
	Directed() bool
}
