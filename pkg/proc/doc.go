/*
Package proc implements the process-management substrate of the kernos kernel:
process control blocks (PCBs), the queues that organize them, the
parent/child tree that relates them, and the active semaphore list (ASL)
that tracks processes blocked on semaphores.

The package is the mechanism layer only. Scheduling policy, dispatching,
and exception handling live above it and drive it through the operations
described below.

# Arena addressing

PCBs and semaphore descriptors are never heap-allocated individually. Each
lives in a fixed-capacity arena owned by a Pool or SemTable, and is referred
to by an integer Handle rather than a pointer. Every link field (queue,
tree, free list) is a handle; None marks the absence of a link. Capacity is
fixed at construction: exhausting a pool is an expected, reported condition,
never a trigger for growth.

# Pools and queues

A Pool hands out PCBs from a LIFO free list:

	pool := proc.NewPool(cfg.MaxProc)
	h, err := pool.Alloc()
	if err != nil {
		// process table full
	}

Queues are circular doubly-linked FIFO lists identified by their tail
handle. The zero Queue is an empty queue ready to use. Because the links
live inside the PCBs themselves, a PCB belongs to at most one queue at a
time, and removal from any position is O(1):

	var ready proc.Queue
	pool.Enqueue(&ready, h)
	next := pool.Dequeue(&ready)

# Process tree

Independently of queue membership, every PCB may have a parent and a
doubly-linked list of siblings. Children are inserted at the front (most
recently added child is found first); detaching a child from any position
is O(1) through its own sibling links.

# Active semaphore list

A SemTable tracks which semaphores currently block at least one process.
Descriptors are kept sorted by ascending key in a singly-linked list bounded
by two permanent sentinels, so insertion never special-cases the ends. Each
descriptor owns one FIFO queue of blocked PCBs and is reclaimed the moment
that queue empties.

# Concurrency

The package performs no locking. It is designed for a single logical thread
of control: the caller (normally the interrupt/exception layer) must
serialize entry into every operation. The linkage invariants span several
fields that have to change as a unit, so a host embedding this package in a
concurrent setting should wrap it in one coarse mutual-exclusion boundary
rather than attempt locking inside it.
*/
package proc
