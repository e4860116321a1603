package fibheap

import "fmt"

// Validate walks the whole forest and checks the structural invariants:
//
//   - every child's priority is >= its parent's (ErrHeapOrder);
//   - every degree equals the node's child count (ErrDegree);
//   - sibling lists are consistent, children point back at their parent,
//     roots have no parent and are unmarked (ErrLinkage);
//   - the node count equals Len() (ErrSize);
//   - min is a root and no root is smaller (ErrMin).
//
// It returns the first violation found, wrapped with node context.
//
// Complexity: O(n).
func (h *Heap[T]) Validate() error {
	if h.root == nil {
		if h.size != 0 {
			return fmt.Errorf("%w: empty forest with size %d", ErrSize, h.size)
		}
		if h.min != nil {
			return fmt.Errorf("%w: empty forest with min %v", ErrMin, h.min.value)
		}

		return nil
	}
	if h.min == nil {
		return fmt.Errorf("%w: non-empty forest without min", ErrMin)
	}
	if h.min.parent != nil {
		return fmt.Errorf("%w: min %v is not a root", ErrMin, h.min.value)
	}

	count := 0
	var stack []*Node[T]

	// Roots.
	n := h.root
	for {
		if err := checkSiblings(n); err != nil {
			return err
		}
		if n.parent != nil {
			return fmt.Errorf("%w: root %v has a parent", ErrLinkage, n.value)
		}
		if n.mark {
			return fmt.Errorf("%w: root %v is marked", ErrLinkage, n.value)
		}
		if n.priority < h.min.priority {
			return fmt.Errorf("%w: root %v(%d) below min %v(%d)",
				ErrMin, n.value, n.priority, h.min.value, h.min.priority)
		}
		stack = append(stack, n)
		count++
		if count > h.size {
			return fmt.Errorf("%w: more than %d nodes", ErrSize, h.size)
		}
		n = n.right
		if n == h.root {
			break
		}
	}

	// Subtrees.
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.removed {
			return fmt.Errorf("%w: removed node %v still linked", ErrLinkage, p.value)
		}

		kids := 0
		if c := p.child; c != nil {
			for {
				if err := checkSiblings(c); err != nil {
					return err
				}
				if c.parent != p {
					return fmt.Errorf("%w: child %v does not point at parent %v", ErrLinkage, c.value, p.value)
				}
				if c.priority < p.priority {
					return fmt.Errorf("%w: child %v(%d) below parent %v(%d)",
						ErrHeapOrder, c.value, c.priority, p.value, p.priority)
				}
				stack = append(stack, c)
				kids++
				count++
				if count > h.size {
					return fmt.Errorf("%w: more than %d nodes", ErrSize, h.size)
				}
				c = c.right
				if c == p.child {
					break
				}
			}
		}
		if kids != p.degree {
			return fmt.Errorf("%w: node %v has degree %d but %d children", ErrDegree, p.value, p.degree, kids)
		}
	}

	if count != h.size {
		return fmt.Errorf("%w: counted %d nodes, size %d", ErrSize, count, h.size)
	}

	return nil
}

func checkSiblings[T comparable](n *Node[T]) error {
	if n.left == nil || n.right == nil || n.left.right != n || n.right.left != n {
		return fmt.Errorf("%w: broken sibling links at %v", ErrLinkage, n.value)
	}

	return nil
}
