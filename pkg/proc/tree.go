package proc

// The process tree is a rooted forest over the pool, independent of queue
// membership. parent.child always names the most recently inserted child;
// siblings form a doubly-linked list so that any child can be detached in
// O(1) from its own links.

// NoChildren reports whether h has no children.
func (p *Pool) NoChildren(h Handle) bool {
	return !p.valid(h) || p.slots[h].child == None
}

// InsertChild makes child a child of parent, at the front of parent's
// sibling list. Children are LIFO among siblings: the most recently added
// child is found first, unlike the FIFO process queues.
// A no-op when either handle is invalid.
func (p *Pool) InsertChild(parent, child Handle) {
	if !p.valid(parent) || !p.valid(child) || parent == child {
		return
	}
	c := &p.slots[child]
	c.parent = parent
	c.sibPrev = None
	first := p.slots[parent].child
	c.sibNext = first
	if first != None {
		p.slots[first].sibPrev = child
	}
	p.slots[parent].child = child
}

// RemoveFirstChild detaches and returns parent's first child, or None when
// parent is invalid or childless.
func (p *Pool) RemoveFirstChild(parent Handle) Handle {
	if !p.valid(parent) {
		return None
	}
	return p.Detach(p.slots[parent].child)
}

// Detach removes h from the tree wherever it sits among its siblings and
// returns it, or None when h is invalid or has no parent. The splice is
// O(1) through h's own sibling links; parent.child advances when h was the
// first child. h's own children are left attached to h; reparenting a
// detached subtree is the caller's responsibility.
func (p *Pool) Detach(h Handle) Handle {
	if !p.valid(h) {
		return None
	}
	b := &p.slots[h]
	if b.parent == None {
		return None
	}
	par := &p.slots[b.parent]
	if par.child == h {
		par.child = b.sibNext
	}
	if b.sibPrev != None {
		p.slots[b.sibPrev].sibNext = b.sibNext
	}
	if b.sibNext != None {
		p.slots[b.sibNext].sibPrev = b.sibPrev
	}
	b.parent = None
	b.sibNext = None
	b.sibPrev = None
	return h
}
