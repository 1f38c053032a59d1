package queue

// Reverse flips the order of the elements in place by rewiring the links
// between the existing nodes; no node or value is allocated or released.
// O(n) time, O(1) extra space. No-op if q is nil, empty, or holds a
// single element.
func (q *Queue) Reverse() {
	if q == nil || q.head == nil || q.head.next == nil {
		return
	}
	var prev *node
	var cur = q.head
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	q.tail = q.head
	q.head = prev
}
