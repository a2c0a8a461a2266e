package proc

import "errors"

// Allocation errors.
var (
	ErrNoFreePCB = errors.New("process table full")
)

// Handle addresses one PCB slot inside a Pool. Handles are opaque to
// callers; None marks the absence of a link or of a result.
type Handle int32

// None is the zero Handle, so zeroed link fields and the zero Queue are
// valid empty states.
const None Handle = 0

// SemKey identifies a semaphore. Keys are compared for equality and total
// order only; this layer never dereferences or otherwise interprets them.
type SemKey int64

// stateWords is the size of a saved processor snapshot in 64-bit words.
const stateWords = 35

// State is an opaque processor-state snapshot. It is copied in and out of
// a PCB whole and never interpreted by this package.
type State [stateWords]uint64

// pcb is one process control block. The queue links are owned by whichever
// queue currently holds the block (ready queue, a semaphore's blocked
// queue, or the pool free list); the tree links are meaningful
// independently of queue membership.
type pcb struct {
	// queue links (circular doubly-linked)
	next Handle
	prev Handle

	// tree links
	parent  Handle
	child   Handle // first (most recently inserted) child
	sibNext Handle
	sibPrev Handle

	// status
	state   State
	cpuTime uint64
	semKey  SemKey // key of the semaphore this process blocks on
	blocked bool   // true iff the block sits in some semaphore's queue

	// support is owned by a higher layer; stored and cleared only.
	support any
}

// reset returns every field to its allocation default.
func (b *pcb) reset() {
	*b = pcb{}
}

// Pool is a fixed-capacity arena of process control blocks with a LIFO free
// list threaded through the blocks' queue links. All capacity is carved out
// at construction; Alloc and Release only recirculate it.
type Pool struct {
	// slots[0] is a permanently unused dummy so that handle 0 can mean
	// "no link"; real blocks occupy slots[1..capacity].
	slots []pcb
	free  Handle // head of the free list
	avail int    // blocks currently on the free list
}

// NewPool builds a pool of maxProc process control blocks, all free.
func NewPool(maxProc int) *Pool {
	if maxProc < 1 {
		maxProc = 1
	}
	p := &Pool{
		slots: make([]pcb, maxProc+1),
		free:  None,
		avail: maxProc,
	}
	for i := maxProc; i >= 1; i-- {
		p.slots[i].next = p.free
		p.free = Handle(i)
	}
	return p
}

// Capacity returns the fixed number of process control blocks in the pool.
func (p *Pool) Capacity() int {
	return len(p.slots) - 1
}

// FreeCount returns the number of blocks currently available to Alloc.
func (p *Pool) FreeCount() int {
	return p.avail
}

// valid reports whether h addresses a real slot in this pool.
func (p *Pool) valid(h Handle) bool {
	return h > None && int(h) < len(p.slots)
}

// Alloc removes a block from the free list and returns its handle with
// every field reset: all links None, cpuTime zero, block-state cleared,
// state snapshot zeroed, support cleared. It returns ErrNoFreePCB when the
// pool is exhausted; that is the expected process-table-full condition, and
// the caller decides policy.
func (p *Pool) Alloc() (Handle, error) {
	if p.free == None {
		return None, ErrNoFreePCB
	}
	h := p.free
	p.free = p.slots[h].next
	p.slots[h].reset()
	p.avail--
	return h, nil
}

// Release pushes h back onto the free list. Release(None) is a no-op.
//
// The caller must already have removed h from every queue and detached it
// from the tree; releasing a still-linked block corrupts the structures it
// is linked into. This is a contract, not a runtime check.
func (p *Pool) Release(h Handle) {
	if !p.valid(h) {
		return
	}
	p.slots[h].next = p.free
	p.free = h
	p.avail++
}

// State returns a copy of h's saved processor state.
func (p *Pool) State(h Handle) State {
	if !p.valid(h) {
		return State{}
	}
	return p.slots[h].state
}

// SetState stores a processor-state snapshot into h.
func (p *Pool) SetState(h Handle, s State) {
	if !p.valid(h) {
		return
	}
	p.slots[h].state = s
}

// CPUTime returns the accumulated CPU time charged to h.
func (p *Pool) CPUTime(h Handle) uint64 {
	if !p.valid(h) {
		return 0
	}
	return p.slots[h].cpuTime
}

// ChargeCPUTime adds n to h's accumulated CPU time.
func (p *Pool) ChargeCPUTime(h Handle, n uint64) {
	if !p.valid(h) {
		return
	}
	p.slots[h].cpuTime += n
}

// BlockedOn returns the key of the semaphore h is blocked on, if any.
func (p *Pool) BlockedOn(h Handle) (SemKey, bool) {
	if !p.valid(h) || !p.slots[h].blocked {
		return 0, false
	}
	return p.slots[h].semKey, true
}

// Support returns the opaque support reference stored in h.
func (p *Pool) Support(h Handle) any {
	if !p.valid(h) {
		return nil
	}
	return p.slots[h].support
}

// SetSupport stores an opaque support reference into h. The reference is
// owned by a higher layer; this package never dereferences it.
func (p *Pool) SetSupport(h Handle, v any) {
	if !p.valid(h) {
		return
	}
	p.slots[h].support = v
}

// Parent returns the handle of h's parent in the process tree, or None.
func (p *Pool) Parent(h Handle) Handle {
	if !p.valid(h) {
		return None
	}
	return p.slots[h].parent
}
