package fibheap

// consolidate links roots of equal degree until every root degree is
// unique, then rebuilds the root list from the rank table and selects the
// new minimum.
//
// Each root is examined in list order. When rank[d] is already claimed, the
// two trees are linked and the survivor, now of degree d+1, is examined
// again in place. On equal priority the tree already in the table wins.
func (h *Heap[T]) consolidate() {
	roots := siblings(h.root)
	h.root = nil

	for _, x := range roots {
		x.left, x.right = x, x
		d := x.degree
		for {
			h.growRank(d)
			y := h.rank[d]
			if y == nil {
				break
			}
			h.rank[d] = nil
			if y.priority <= x.priority {
				x, y = y, x
			}
			link(y, x)
			d = x.degree
		}
		h.rank[d] = x
	}

	h.min = nil
	for i, x := range h.rank {
		if x == nil {
			continue
		}
		h.rank[i] = nil
		h.root = pushBack(h.root, x)
		if h.min == nil || x.priority < h.min.priority {
			h.min = x
		}
	}
}

// growRank extends the rank table so that index d is addressable.
func (h *Heap[T]) growRank(d int) {
	for len(h.rank) <= d {
		h.rank = append(h.rank, nil)
	}
}

// link makes the detached root child a child of parent.
func link[T comparable](child, parent *Node[T]) {
	child.parent = parent
	child.mark = false
	parent.child = pushBack(parent.child, child)
	parent.degree++
}
