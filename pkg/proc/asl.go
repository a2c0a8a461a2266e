package proc

import "errors"

// Blocking errors.
var (
	// ErrNoFreeSemDesc reports that no semaphore descriptor is available
	// for a key that is not yet active.
	ErrNoFreeSemDesc = errors.New("semaphore descriptor table full")
	// ErrBadSemKey reports a key that does not order strictly between the
	// table's sentinel keys.
	ErrBadSemKey = errors.New("semaphore key out of range")
	// ErrBadHandle reports an invalid process handle.
	ErrBadHandle = errors.New("invalid process handle")
)

// dnone is the "no descriptor" index. descs[0] stays permanently unused so
// that zero can carry this meaning, mirroring Handle's None.
const dnone int32 = 0

// semd is one semaphore descriptor: a key paired with the FIFO queue of
// processes blocked on it. Active descriptors are singly linked in strictly
// ascending key order; free descriptors reuse next as the free-list link.
type semd struct {
	key   SemKey
	next  int32
	queue Queue
}

// SemTable is the active semaphore list (ASL): the set of semaphores that
// currently block at least one process, kept sorted by ascending key.
//
// The sorted list is bounded by two permanent sentinel descriptors holding
// the minimum and maximum possible keys, so insertion and lookup never
// special-case the ends of the list. A descriptor is in the list iff its
// queue is non-empty; the moment a queue empties, its descriptor goes back
// to the free list. Like the PCB pool, all descriptors are carved out at
// construction and only recirculate.
type SemTable struct {
	pool  *Pool
	descs []semd
	free  int32 // descriptor free-list head
	head  int32 // head sentinel, permanent
	last  int32 // tail sentinel, permanent

	minKey SemKey
	maxKey SemKey
}

// NewSemTable builds a semaphore table over pool with as many descriptors
// as the pool has process control blocks. minKey and maxKey become the
// sentinel keys; every real key must compare strictly between them.
func NewSemTable(pool *Pool, minKey, maxKey SemKey) *SemTable {
	n := pool.Capacity()
	t := &SemTable{
		pool:   pool,
		descs:  make([]semd, n+3),
		free:   dnone,
		minKey: minKey,
		maxKey: maxKey,
	}
	for i := int32(n); i >= 1; i-- {
		t.descs[i].next = t.free
		t.free = i
	}
	t.head = int32(n + 1)
	t.last = int32(n + 2)
	t.descs[t.head] = semd{key: minKey, next: t.last}
	t.descs[t.last] = semd{key: maxKey, next: dnone}
	return t
}

// findPrev returns the descriptor immediately preceding where key belongs:
// its successor either already holds key or holds the first larger key
// (possibly the tail sentinel). O(number of active semaphores), which is
// bounded by the pool capacity.
func (t *SemTable) findPrev(key SemKey) int32 {
	cur := t.head
	for {
		next := t.descs[cur].next
		if next == dnone || t.descs[next].key >= key {
			return cur
		}
		cur = next
	}
}

// reclaim returns the descriptor after prev to the free list if its queue
// has emptied. Sentinels are never reclaimed.
func (t *SemTable) reclaim(prev int32) {
	d := t.descs[prev].next
	if d == dnone || d == t.head || d == t.last {
		return
	}
	if !t.descs[d].queue.Empty() {
		return
	}
	t.descs[prev].next = t.descs[d].next
	t.descs[d] = semd{next: t.free}
	t.free = d
}

// InsertBlocked blocks process h on the semaphore identified by key. When
// the key is already active, h joins the tail of its queue; otherwise a
// descriptor is claimed from the free list and spliced into the sorted
// list. It returns ErrBadHandle or ErrBadSemKey for rejected input and
// ErrNoFreeSemDesc when a new descriptor is needed but none remain.
func (t *SemTable) InsertBlocked(key SemKey, h Handle) error {
	if !t.pool.valid(h) {
		return ErrBadHandle
	}
	if key <= t.minKey || key >= t.maxKey {
		return ErrBadSemKey
	}
	b := &t.pool.slots[h]
	b.semKey = key
	b.blocked = true

	prev := t.findPrev(key)
	next := t.descs[prev].next
	if t.descs[next].key == key {
		t.pool.Enqueue(&t.descs[next].queue, h)
		return nil
	}

	if t.free == dnone {
		b.semKey = 0
		b.blocked = false
		return ErrNoFreeSemDesc
	}
	d := t.free
	t.free = t.descs[d].next
	t.descs[d] = semd{key: key, next: next}
	t.descs[prev].next = d
	t.pool.Enqueue(&t.descs[d].queue, h)
	return nil
}

// RemoveBlocked unblocks and returns the process at the head of key's
// queue, or None when key has no active descriptor. When the queue empties,
// the descriptor is reclaimed.
func (t *SemTable) RemoveBlocked(key SemKey) Handle {
	prev := t.findPrev(key)
	d := t.descs[prev].next
	if t.descs[d].key != key || t.descs[d].queue.Empty() {
		return None
	}
	h := t.pool.Dequeue(&t.descs[d].queue)
	if h == None {
		return None
	}
	b := &t.pool.slots[h]
	b.semKey = 0
	b.blocked = false
	t.reclaim(prev)
	return h
}

// OutBlocked removes a specific process from whichever semaphore queue it
// is blocked in, located directly through the key recorded on the block.
// It returns None when h is invalid, not blocked, or its recorded key has
// no matching active descriptor. When the queue empties, the descriptor is
// reclaimed.
func (t *SemTable) OutBlocked(h Handle) Handle {
	if !t.pool.valid(h) {
		return None
	}
	b := &t.pool.slots[h]
	if !b.blocked {
		return None
	}
	prev := t.findPrev(b.semKey)
	d := t.descs[prev].next
	if t.descs[d].key != b.semKey || t.descs[d].queue.Empty() {
		return None
	}
	if t.pool.Unlink(&t.descs[d].queue, h) == None {
		return None
	}
	b.semKey = 0
	b.blocked = false
	t.reclaim(prev)
	return h
}

// HeadBlocked returns, without removing it, the process at the head of
// key's queue, or None when key has no active descriptor. The head's
// block-state is re-asserted before it is returned.
func (t *SemTable) HeadBlocked(key SemKey) Handle {
	prev := t.findPrev(key)
	d := t.descs[prev].next
	if t.descs[d].key != key || t.descs[d].queue.Empty() {
		return None
	}
	h := t.pool.Head(&t.descs[d].queue)
	if h != None {
		blk := &t.pool.slots[h]
		blk.semKey = key
		blk.blocked = true
	}
	return h
}

// ActiveKeys returns the keys of all active semaphores in ascending order.
func (t *SemTable) ActiveKeys() []SemKey {
	var keys []SemKey
	for d := t.descs[t.head].next; d != dnone && d != t.last; d = t.descs[d].next {
		keys = append(keys, t.descs[d].key)
	}
	return keys
}

// ActiveCount returns the number of active semaphores.
func (t *SemTable) ActiveCount() int {
	n := 0
	for d := t.descs[t.head].next; d != dnone && d != t.last; d = t.descs[d].next {
		n++
	}
	return n
}
