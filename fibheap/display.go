package fibheap

import (
	"fmt"
	"io"
	"strings"
)

// LabelFunc renders one node for Fprint.
type LabelFunc[T comparable] func(n *Node[T]) string

// DefaultLabel renders "value [p=priority d=degree]" with a trailing "*"
// for marked nodes.
func DefaultLabel[T comparable](n *Node[T]) string {
	mark := ""
	if n.mark {
		mark = "*"
	}

	return fmt.Sprintf("%v [p=%d d=%d]%s", n.value, n.priority, n.degree, mark)
}

// String dumps the forest in the Fprint format.
func (h *Heap[T]) String() string {
	var sb strings.Builder
	_ = h.Fprint(&sb, nil)

	return sb.String()
}

// Fprint writes a human-readable dump of the forest to w: a header line with
// the size and minimum, then every tree drawn with box connectors, roots in
// list order. A nil label uses DefaultLabel.
//
// Example output:
//
//	size=4 min=d(1)
//	d [p=1 d=1]
//	└── b [p=3 d=0]
//	a [p=5 d=0]
func (h *Heap[T]) Fprint(w io.Writer, label LabelFunc[T]) error {
	if label == nil {
		label = DefaultLabel[T]
	}

	if h.min == nil {
		_, err := fmt.Fprintf(w, "size=%d min=<none>\n", h.size)

		return err
	}
	if _, err := fmt.Fprintf(w, "size=%d min=%v(%d)\n", h.size, h.min.value, h.min.priority); err != nil {
		return err
	}

	type frame struct {
		n      *Node[T]
		prefix string // indentation inherited from ancestors
		branch string // connector drawn before the label
		last   bool
	}

	var stack []frame
	roots := siblings(h.root)
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{n: roots[i]})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, err := fmt.Fprintf(w, "%s%s%s\n", f.prefix, f.branch, label(f.n)); err != nil {
			return err
		}

		childPrefix := f.prefix
		switch {
		case f.branch == "":
			// roots add no indentation
		case f.last:
			childPrefix += "    "
		default:
			childPrefix += "│   "
		}

		kids := siblings(f.n.child)
		for i := len(kids) - 1; i >= 0; i-- {
			last := i == len(kids)-1
			branch := "├── "
			if last {
				branch = "└── "
			}
			stack = append(stack, frame{n: kids[i], prefix: childPrefix, branch: branch, last: last})
		}
	}

	return nil
}
