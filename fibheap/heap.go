package fibheap

// Insert adds value with the given priority as a new singleton tree and
// returns its node handle. The handle can be passed to Update, DecreaseKey
// and Delete to address this exact element, which matters when several
// elements share the same (value, priority) pair.
//
// Complexity: O(1).
func (h *Heap[T]) Insert(value T, priority int64) *Node[T] {
	n := &Node[T]{value: value, priority: priority}
	n.left, n.right = n, n

	h.root = pushBack(h.root, n)
	if h.min == nil || priority < h.min.priority {
		h.min = n
	}
	h.size++

	return n
}

// Min returns the node with the smallest priority without removing it.
// ok is false when the heap is empty.
//
// Complexity: O(1).
func (h *Heap[T]) Min() (n *Node[T], ok bool) {
	return h.min, h.min != nil
}

// Len returns the number of elements across the whole forest.
func (h *Heap[T]) Len() int { return h.size }

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool { return h.size == 0 }

// Roots returns the current root list in order.
func (h *Heap[T]) Roots() []*Node[T] { return siblings(h.root) }

// ExtractMin removes and returns the node with the smallest priority.
// On an empty heap it returns (nil, false) and changes nothing.
//
// Steps:
//  1. Promote every child of the minimum into the root list.
//  2. Remove the minimum from the root list.
//  3. Consolidate until every root has a distinct degree, recomputing min.
//
// The returned node is detached: its handle is dead and later handle-based
// calls with it return ErrNodeRemoved.
//
// Complexity: O(log n) amortized.
func (h *Heap[T]) ExtractMin() (*Node[T], bool) {
	z := h.min
	if z == nil {
		return nil, false
	}

	// 1) Children become roots; roots are never marked.
	if z.child != nil {
		c := z.child
		for {
			c.parent = nil
			c.mark = false
			c = c.right
			if c == z.child {
				break
			}
		}
		h.root = concat(h.root, z.child)
		z.child = nil
		z.degree = 0
	}

	// 2) Drop z from the root list.
	next := unlink(z)
	if h.root == z {
		h.root = next
	}
	h.size--
	z.removed = true

	// 3) Restore distinct root degrees; this also picks the new min.
	h.min = nil
	if h.root != nil {
		h.consolidate()
	}

	return z, true
}

// DeleteMin removes the minimum and discards it. It reports whether an
// element was removed.
func (h *Heap[T]) DeleteMin() bool {
	_, ok := h.ExtractMin()

	return ok
}

// Merge moves every element of other into h in O(1). other is left empty,
// so the two heaps never share subtrees. Node handles obtained from other
// move with their elements: pass them to h from now on, never to other.
//
// Merging a heap with itself or with nil is a no-op.
func (h *Heap[T]) Merge(other *Heap[T]) {
	if other == nil || other == h || other.root == nil {
		return
	}

	h.root = concat(h.root, other.root)
	if h.min == nil || other.min.priority < h.min.priority {
		h.min = other.min
	}
	h.size += other.size

	other.root, other.min, other.size = nil, nil, 0
}

// Union returns a new heap holding the elements of a and b, consuming both.
// Either argument may be nil. Use Clone first to keep an input usable.
//
// Complexity: O(1).
func Union[T comparable](a, b *Heap[T]) *Heap[T] {
	h := New[T]()
	h.Merge(a)
	h.Merge(b)

	return h
}

// Clone returns a deep copy of h with the same forest shape, marks and
// minimum. Node handles of h do not address elements of the copy.
//
// Complexity: O(n).
func (h *Heap[T]) Clone() *Heap[T] {
	c := &Heap[T]{size: h.size}
	if h.root == nil {
		return c
	}

	type frame struct {
		src    *Node[T]
		parent *Node[T] // copy of src's parent; nil for roots
	}

	// Push in reverse so that pops visit nodes in list order (pre-order).
	var stack []frame
	roots := siblings(h.root)
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{src: roots[i]})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &Node[T]{
			value:    f.src.value,
			priority: f.src.priority,
			degree:   f.src.degree,
			mark:     f.src.mark,
			parent:   f.parent,
		}
		n.left, n.right = n, n
		if f.parent == nil {
			c.root = pushBack(c.root, n)
		} else {
			f.parent.child = pushBack(f.parent.child, n)
		}
		if f.src == h.min {
			c.min = n
		}

		kids := siblings(f.src.child)
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, frame{src: kids[i], parent: n})
		}
	}

	return c
}

// scanMin returns the first root of smallest priority, or nil if the root
// list is empty.
func (h *Heap[T]) scanMin() *Node[T] {
	if h.root == nil {
		return nil
	}
	best := h.root
	for n := h.root.right; n != h.root; n = n.right {
		if n.priority < best.priority {
			best = n
		}
	}

	return best
}
