package fibheap

import "errors"

// Sentinel errors returned by the fibheap implementation.
var (
	// ErrKeyNotFound indicates that no node holds the requested (value, priority) pair.
	ErrKeyNotFound = errors.New("fibheap: key not found")

	// ErrNilNode indicates that a nil node handle was passed to a handle-based operation.
	ErrNilNode = errors.New("fibheap: node is nil")

	// ErrNodeRemoved indicates that the node handle was already extracted or deleted
	// and no longer belongs to any heap.
	ErrNodeRemoved = errors.New("fibheap: node was removed from the heap")

	// ErrForeignNode indicates that a live handle was passed to an empty heap,
	// typically the source of a Merge, whose elements now belong to the receiver.
	ErrForeignNode = errors.New("fibheap: node does not belong to this heap")

	// ErrPriorityIncrease indicates that DecreaseKey was asked to raise a priority.
	ErrPriorityIncrease = errors.New("fibheap: new priority is greater than current priority")

	// ErrHeapOrder is reported by Validate when a child is smaller than its parent.
	ErrHeapOrder = errors.New("fibheap: heap order violated")

	// ErrDegree is reported by Validate when a node's degree differs from its child count.
	ErrDegree = errors.New("fibheap: degree does not match child count")

	// ErrLinkage is reported by Validate when sibling or parent pointers are inconsistent.
	ErrLinkage = errors.New("fibheap: inconsistent node linkage")

	// ErrSize is reported by Validate when the node count differs from Len().
	ErrSize = errors.New("fibheap: size does not match node count")

	// ErrMin is reported by Validate when the minimum pointer is not a smallest root.
	ErrMin = errors.New("fibheap: min does not reference a smallest root")
)

// Node is one element of the heap and the root of the subtree below it.
//
// Siblings form a circular doubly linked list (left/right); child points at
// any one node of the child list. parent is a back-reference only: the
// subtree is reachable from its parent's child list, never the other way round.
type Node[T comparable] struct {
	value    T
	priority int64

	degree int  // number of direct children
	mark   bool // lost a child since it last became a child

	parent *Node[T]
	child  *Node[T]
	left   *Node[T]
	right  *Node[T]

	removed bool // extracted or deleted; the handle is dead
}

// Value returns the payload stored in the node.
func (n *Node[T]) Value() T { return n.value }

// Priority returns the node's current key. Smaller is more minimal.
func (n *Node[T]) Priority() int64 { return n.priority }

// Degree returns the number of direct children.
func (n *Node[T]) Degree() int { return n.degree }

// Marked reports whether the node lost a child since it last became a child.
func (n *Node[T]) Marked() bool { return n.mark }

// Parent returns the node's parent, or nil for a root.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// IsRoot reports whether the node sits in the root list.
func (n *Node[T]) IsRoot() bool { return n.parent == nil }

// Children returns the node's direct children in list order.
// The slice is freshly allocated; mutating it does not affect the heap.
func (n *Node[T]) Children() []*Node[T] {
	return siblings(n.child)
}

// Heap is a Fibonacci heap: a forest of heap-ordered trees with lazy
// insertion and merging, and consolidation deferred to extraction.
//
// The zero value is an empty heap ready to use. A Heap is not safe for
// concurrent use.
type Heap[T comparable] struct {
	root *Node[T] // any node of the circular root list; nil iff empty
	min  *Node[T] // a root of minimum priority; nil iff empty
	size int

	// rank is the consolidation table, indexed by degree. It is reused
	// between passes and cleared at the end of each one.
	rank []*Node[T]
}

// New returns an empty heap.
func New[T comparable]() *Heap[T] {
	return &Heap[T]{}
}
