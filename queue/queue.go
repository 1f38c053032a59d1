// Package queue implements a FIFO/LIFO-capable sequence of text values
// backed by a singly linked list. Pushes at either end and pops from the
// front run in O(1); the list can also be reversed in place and sorted.
//
// A Queue owns independent copies of every value it holds, and all
// operations accept a nil *Queue, degrading to a failure result or a
// no-op rather than faulting. The queue performs no locking; callers
// must serialize access themselves.
package queue

import (
	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

type node struct {
	value []byte
	next  *node
}

// Queue is a singly linked chain of nodes with head and tail anchors and
// an element count. The zero value is not meaningful; use New.
type Queue struct {
	head *node
	tail *node
	size uint64
}

// New returns an empty queue. No nodes are allocated until the first
// push.
func New() *Queue {
	return &Queue{head: nil, tail: nil, size: 0}
}

// Free releases every node and empties q. Safe to call on a nil or empty
// queue. Free is a single-owner teardown, not a reference-counted
// release; using q afterward beyond what the nil checks permit is the
// caller's bug.
func (q *Queue) Free() {
	if q == nil {
		return
	}
	var n = q.head
	for n != nil {
		next := n.next
		n.value = nil
		n.next = nil
		n = next
	}
	q.head = nil
	q.tail = nil
	q.size = 0
}

// PushFront inserts a copy of s at the front of q. Returns false if q is
// nil, leaving nothing modified.
func (q *Queue) PushFront(s []byte) bool {
	if q == nil {
		return false
	}
	n := &node{value: std.BytesClone(s), next: q.head}
	q.head = n
	// first insertion: both anchors land on the new node
	if q.tail == nil {
		q.tail = n
	}
	q.size = std.SumAssumeNoOverflow(q.size, 1)
	return true
}

// PushBack inserts a copy of s at the back of q. Returns false if q is
// nil, leaving nothing modified.
func (q *Queue) PushBack(s []byte) bool {
	if q == nil {
		return false
	}
	n := &node{value: std.BytesClone(s), next: nil}
	if q.tail == nil {
		q.head = n
		q.tail = n
	} else {
		q.tail.next = n
		q.tail = n
	}
	q.size = std.SumAssumeNoOverflow(q.size, 1)
	return true
}

// PopFront removes the front node. Returns false if q is nil or empty.
//
// If dst is non-empty, at most len(dst)-1 bytes of the removed value are
// copied into it followed by a terminating zero byte; a value longer
// than the buffer is silently truncated. A nil or empty dst skips the
// copy. The removed node is fully unlinked before it is dropped.
func (q *Queue) PopFront(dst []byte) bool {
	if q == nil || q.head == nil {
		return false
	}
	n := q.head
	if uint64(len(dst)) > 0 {
		m := uint64(len(dst)) - 1
		if uint64(len(n.value)) < m {
			m = uint64(len(n.value))
		}
		for i := uint64(0); i < m; i++ {
			dst[i] = n.value[i]
		}
		dst[m] = 0
	}
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	n.next = nil
	n.value = nil
	q.size = q.size - 1
	primitive.Assert((q.size == 0) == (q.head == nil))
	return true
}

// Len returns the number of elements in q, 0 for a nil queue.
func (q *Queue) Len() uint64 {
	if q == nil {
		return 0
	}
	return q.size
}

// IsEmpty reports whether q holds no elements.
func (q *Queue) IsEmpty() bool {
	return q.Len() == 0
}

// Front returns a copy of the front value without removing it. The
// boolean is false if q is nil or empty.
func (q *Queue) Front() (string, bool) {
	if q == nil || q.head == nil {
		return "", false
	}
	return string(q.head.value), true
}

// Back returns a copy of the back value without removing it. The boolean
// is false if q is nil or empty.
func (q *Queue) Back() (string, bool) {
	if q == nil || q.tail == nil {
		return "", false
	}
	return string(q.tail.value), true
}

// Elements returns the values front to back. The result is a snapshot;
// it shares no storage with the queue.
func (q *Queue) Elements() []string {
	var out = []string{}
	if q == nil {
		return out
	}
	for n := q.head; n != nil; n = n.next {
		out = append(out, string(n.value))
	}
	return out
}
