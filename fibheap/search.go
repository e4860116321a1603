package fibheap

// Find returns a node holding (value, priority), or (nil, false) if none
// exists.
//
// Trees are searched depth-first in root-list order. A subtree whose root
// priority already exceeds the target is skipped: heap order puts every
// descendant above the target too. The pruning keeps typical lookups short
// but the worst case is still O(n).
//
// With duplicate pairs the first match in traversal order is returned.
// Keep the handle from Insert when a specific element must be addressed.
func (h *Heap[T]) Find(value T, priority int64) (*Node[T], bool) {
	if h.root == nil {
		return nil, false
	}

	var stack []*Node[T]
	r := h.root
	for {
		stack = append(stack[:0], r)
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if n.priority == priority && n.value == value {
				return n, true
			}
			if n.priority > priority || n.child == nil {
				continue
			}
			// Reverse push so children pop in list order.
			c := n.child.left
			for {
				stack = append(stack, c)
				if c == n.child {
					break
				}
				c = c.left
			}
		}

		r = r.right
		if r == h.root {
			return nil, false
		}
	}
}

// Contains reports whether some node holds (value, priority).
func (h *Heap[T]) Contains(value T, priority int64) bool {
	_, ok := h.Find(value, priority)

	return ok
}
