package fibheap

// Circular doubly linked sibling lists. A list is identified by any one of
// its nodes; nil is the empty list. A detached node points at itself.

// pushBack inserts the detached node n at the tail of the list headed by
// head and returns the (possibly new) head.
func pushBack[T comparable](head, n *Node[T]) *Node[T] {
	if head == nil {
		return n
	}
	n.right = head
	n.left = head.left
	head.left.right = n
	head.left = n

	return head
}

// concat splices list b onto the tail of list a in O(1).
func concat[T comparable](a, b *Node[T]) *Node[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	aLast, bLast := a.left, b.left
	aLast.right = b
	b.left = aLast
	bLast.right = a
	a.left = bLast

	return a
}

// unlink removes n from its list, leaves it detached, and returns a node of
// the remaining list (nil if n was alone).
func unlink[T comparable](n *Node[T]) *Node[T] {
	if n.right == n {
		return nil
	}
	next := n.right
	n.left.right = n.right
	n.right.left = n.left
	n.left, n.right = n, n

	return next
}

// siblings snapshots the list starting at head, in list order.
func siblings[T comparable](head *Node[T]) []*Node[T] {
	if head == nil {
		return nil
	}
	out := []*Node[T]{head}
	for n := head.right; n != head; n = n.right {
		out = append(out, n)
	}

	return out
}
