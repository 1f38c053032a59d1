package queue

// Sort reorders the elements into non-descending lexicographic byte
// order using a merge sort over the existing nodes: the chain is split
// at its midpoint with a slow/fast cursor pair, the halves are sorted,
// then merged by repeatedly taking the smaller head. Equal values may
// end up in either relative order. No node or value is allocated or
// released; O(n log n) time. No-op if q is nil, empty, or holds a single
// element.
func (q *Queue) Sort() {
	if q == nil || q.head == q.tail {
		return
	}
	q.head = mergeSort(q.head)
	// re-derive the tail from the sorted chain
	var n = q.head
	for n.next != nil {
		n = n.next
	}
	q.tail = n
}

// mergeSort sorts the chain starting at head and returns its new first
// node. Each level halves the chain, so the recursion depth is O(log n).
func mergeSort(head *node) *node {
	if head == nil || head.next == nil {
		return head
	}
	left, right := split(head)
	return merge(mergeSort(left), mergeSort(right))
}

// split bisects the chain into two halves differing in length by at most
// one. The slow cursor advances one step per two steps of the fast
// cursor; the link after slow is cut.
func split(head *node) (*node, *node) {
	slow := head
	fast := head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	second := slow.next
	slow.next = nil
	return head, second
}

// merge interleaves two sorted chains into one sorted chain. Iterative
// so that the call stack stays at the O(log n) of mergeSort regardless
// of chain length; when one chain is exhausted the remainder of the
// other is relinked wholesale.
func merge(a *node, b *node) *node {
	var head *node
	var last *node
	for a != nil && b != nil {
		var take *node
		if valueLE(a.value, b.value) {
			take = a
			a = a.next
		} else {
			take = b
			b = b.next
		}
		if last == nil {
			head = take
		} else {
			last.next = take
		}
		last = take
	}
	rest := a
	if rest == nil {
		rest = b
	}
	if last == nil {
		return rest
	}
	last.next = rest
	return head
}

// valueLE reports whether a <= b in lexicographic byte order.
func valueLE(a []byte, b []byte) bool {
	l := uint64(len(a))
	if uint64(len(b)) < l {
		l = uint64(len(b))
	}
	for i := uint64(0); i < l; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return uint64(len(a)) <= uint64(len(b))
}
