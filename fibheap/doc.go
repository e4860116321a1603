// Package fibheap implements a mergeable min-priority queue as a Fibonacci
// heap (Fredman & Tarjan, 1986).
//
// Overview:
//
//   - The heap is a forest of heap-ordered multi-way trees. Insertion and
//     merging are lazy: they only splice new trees into the root list.
//   - ExtractMin promotes the children of the minimum to roots and then
//     consolidates: trees of equal degree are linked until every root has a
//     distinct degree, which keeps the root list at O(log n) length.
//   - Priority changes use the cut / cascading-cut protocol. A node that has
//     lost one child since becoming a child is marked; losing a second one
//     cuts it too. This bounds every degree by log_phi(n).
//
// Complexity (amortized, n = Len()):
//
//	– Insert:          O(1)
//	– Min:             O(1)
//	– Merge, Union:    O(1)
//	– ExtractMin:      O(log n)
//	– DeleteMin:       O(log n)
//	– DecreaseKey:     O(1)
//	– Delete:          O(log n)
//	– Update (raise):  O(degree) – NOT covered by the amortized argument
//	– Find:            O(n) worst case, pruned by heap order
//	– ChangePriority:  Find + Update
//	– Clone:           O(n)
//
// Priority increases:
//
//	Classic Fibonacci heaps only support decrease-key. Update and
//	ChangePriority also accept a larger priority: every child that now
//	violates heap order is cut into the root list, and each such loss runs
//	the cascading cut from the changed node. The cost is proportional to the
//	node's degree and is not bounded by the heap's potential function, so do
//	not assume O(log n) for raises.
//
// Handles vs. search:
//
//	Insert returns a *Node handle. Handle-based calls (Update, DecreaseKey,
//	Delete) address exactly that element. Value-based calls (Find,
//	ChangePriority) locate some node holding the (value, priority) pair;
//	with duplicates the one reached first by the pruned depth-first search
//	is used.
//
// Errors (sentinel):
//
//	– ErrKeyNotFound       ChangePriority found no node with the pair.
//	– ErrNilNode           nil handle.
//	– ErrNodeRemoved       handle was already extracted or deleted.
//	– ErrForeignNode       live handle passed to an empty heap (e.g. the
//	                       source of a Merge; its handles now belong to the receiver).
//	– ErrPriorityIncrease  DecreaseKey asked to raise a priority.
//	– ErrHeapOrder, ErrDegree, ErrLinkage, ErrSize, ErrMin
//	                       invariant violations reported by Validate.
//
// Empty-heap operations are not errors: Min and ExtractMin return ok=false
// and DeleteMin returns false.
//
// A Heap is not safe for concurrent use.
//
// Example usage:
//
//	h := fibheap.New[string]()
//	h.Insert("a", 5)
//	h.Insert("b", 3)
//	c := h.Insert("c", 8)
//	_ = h.DecreaseKey(c, 0)
//	for !h.IsEmpty() {
//	    n, _ := h.ExtractMin()
//	    fmt.Println(n.Value(), n.Priority())
//	}
package fibheap
