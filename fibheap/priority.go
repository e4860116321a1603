package fibheap

import "fmt"

// ChangePriority locates a node holding (value, oldPriority) and moves it to
// newPriority. It returns ErrKeyNotFound (wrapped with the key) when no
// such node exists. With duplicate pairs an unspecified match is changed;
// see Find.
//
// Lowering a priority costs O(1) amortized plus the search. Raising one is
// not covered by the Fibonacci heap amortized bound: every child that now
// violates heap order is cut, so the cost is O(degree) of the node, not
// O(log n). See Update.
func (h *Heap[T]) ChangePriority(value T, oldPriority, newPriority int64) error {
	n, ok := h.Find(value, oldPriority)
	if !ok {
		return fmt.Errorf("%w: value %v with priority %d", ErrKeyNotFound, value, oldPriority)
	}
	h.setPriority(n, newPriority)

	return nil
}

// Update sets the priority of the element behind handle n, in either
// direction.
//
// Decrease: if n now beats its parent, n is cut into the root list and the
// cascading cut climbs from the former parent: marked ancestors are cut in
// turn, the first unmarked non-root ancestor is marked, and the climb stops
// at a root.
//
// Increase: every child of n whose priority is now below n is cut into the
// root list; each such loss runs the cascading cut starting at n itself.
// This path is O(degree(n)) and has no amortized guarantee.
//
// n must belong to h. A handle passed to an empty heap is rejected with
// ErrForeignNode; a handle of another non-empty heap is not detected and
// corrupts both heaps.
func (h *Heap[T]) Update(n *Node[T], priority int64) error {
	if err := h.checkHandle(n); err != nil {
		return err
	}
	h.setPriority(n, priority)

	return nil
}

// DecreaseKey lowers the priority of the element behind handle n. It
// returns ErrPriorityIncrease if priority is above the current one.
// n must belong to h, as for Update.
//
// Complexity: O(1) amortized.
func (h *Heap[T]) DecreaseKey(n *Node[T], priority int64) error {
	if err := h.checkHandle(n); err != nil {
		return err
	}
	if priority > n.priority {
		return fmt.Errorf("%w: %d > %d", ErrPriorityIncrease, priority, n.priority)
	}
	h.setPriority(n, priority)

	return nil
}

// Delete removes the element behind handle n from h, as if its priority
// were lowered below every other and the minimum then extracted. The
// node's priority is left untouched. n must belong to h, as for Update.
//
// Complexity: O(log n) amortized.
func (h *Heap[T]) Delete(n *Node[T]) error {
	if err := h.checkHandle(n); err != nil {
		return err
	}
	if p := n.parent; p != nil {
		h.cut(n)
		h.cascadingCut(p)
	}
	h.min = n
	h.ExtractMin()

	return nil
}

// setPriority overwrites n's key and repairs heap order and min.
func (h *Heap[T]) setPriority(n *Node[T], priority int64) {
	old := n.priority
	n.priority = priority

	switch {
	case priority < old:
		if p := n.parent; p != nil && p.priority > priority {
			h.cut(n)
			h.cascadingCut(p)
		}
		// A node that stayed a child is >= its parent >= min.
		if h.min == nil || priority < h.min.priority {
			h.min = n
		}

	case priority > old:
		if n.child != nil {
			for _, c := range siblings(n.child) {
				if c.priority < priority {
					h.cut(c)
					h.cascadingCut(n)
				}
			}
		}
		// Cut children and ancestors are all >= old >= min, so only a
		// raised minimum can move min.
		if h.min == n {
			h.min = h.scanMin()
		}
	}
}

// cut detaches n from its parent and appends it to the root list unmarked.
// The parent's degree drops by one; no other ancestor's child count changes.
func (h *Heap[T]) cut(n *Node[T]) {
	p := n.parent
	next := unlink(n)
	if p.child == n {
		p.child = next
	}
	p.degree--

	n.parent = nil
	n.mark = false
	h.root = pushBack(h.root, n)
}

// cascadingCut climbs from n after n lost a child: a marked non-root is cut
// and the climb continues at its parent; an unmarked non-root is marked and
// the climb stops; a root stops the climb.
func (h *Heap[T]) cascadingCut(n *Node[T]) {
	for n.parent != nil {
		if !n.mark {
			n.mark = true
			return
		}
		p := n.parent
		h.cut(n)
		n = p
	}
}

// checkHandle rejects nil and dead handles. Ownership is only checked in
// O(1) form: a live handle can never belong to an empty heap.
func (h *Heap[T]) checkHandle(n *Node[T]) error {
	if n == nil {
		return ErrNilNode
	}
	if n.removed {
		return fmt.Errorf("%w: value %v", ErrNodeRemoved, n.value)
	}
	if h.size == 0 {
		return fmt.Errorf("%w: value %v", ErrForeignNode, n.value)
	}

	return nil
}
