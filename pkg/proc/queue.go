package proc

// Queue is a FIFO of process control blocks, implemented as a circular
// doubly-linked list threaded through the blocks' own queue links and
// identified solely by its tail handle. tail.next is the head, so both
// ends are reachable in O(1). The zero Queue is an empty queue ready to
// use; any number of queues may exist over the same pool, but a block
// belongs to at most one of them at a time.
type Queue struct {
	tail Handle
}

// Empty reports whether q holds no blocks.
func (q *Queue) Empty() bool {
	return q.tail == None
}

// Enqueue appends h at the tail of q. Enqueue with an invalid handle is a
// no-op. h must not currently be a member of any queue.
func (p *Pool) Enqueue(q *Queue, h Handle) {
	if q == nil || !p.valid(h) {
		return
	}
	b := &p.slots[h]
	if q.tail == None {
		b.next = h
		b.prev = h
	} else {
		head := p.slots[q.tail].next
		b.next = head
		b.prev = q.tail
		p.slots[head].prev = h
		p.slots[q.tail].next = h
	}
	q.tail = h
}

// Dequeue removes and returns the head of q, or None when q is empty.
func (p *Pool) Dequeue(q *Queue) Handle {
	if q == nil || q.tail == None {
		return None
	}
	return p.Unlink(q, p.slots[q.tail].next)
}

// Unlink removes h from q regardless of its position, in O(1) through h's
// own links. When h is the tail, the tail is retargeted to its
// predecessor; when h is the sole member, q becomes empty.
//
// The caller is trusted to pass a block that is genuinely a member of q.
// Unlink does not scan to verify membership; it returns None when the
// cheap invariants fail (invalid handle, empty queue, or a block whose
// links show it is on no queue at all).
func (p *Pool) Unlink(q *Queue, h Handle) Handle {
	if q == nil || q.tail == None || !p.valid(h) {
		return None
	}
	b := &p.slots[h]
	if b.next == None || b.prev == None {
		return None
	}
	if b.next == h {
		// sole member
		if q.tail != h {
			return None
		}
		q.tail = None
	} else {
		p.slots[b.prev].next = b.next
		p.slots[b.next].prev = b.prev
		if q.tail == h {
			q.tail = b.prev
		}
	}
	b.next = None
	b.prev = None
	return h
}

// Head returns the head of q without removing it, or None when q is empty.
func (p *Pool) Head(q *Queue) Handle {
	if q == nil || q.tail == None {
		return None
	}
	return p.slots[q.tail].next
}
