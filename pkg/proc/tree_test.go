package proc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTreeLIFOSiblings checks children come back most-recent-first.
func TestTreeLIFOSiblings(t *testing.T) {
	pool := NewPool(8)
	hs := allocN(t, pool, 4)
	parent, x, y, z := hs[0], hs[1], hs[2], hs[3]

	assert.True(t, pool.NoChildren(parent))

	pool.InsertChild(parent, x)
	pool.InsertChild(parent, y)
	pool.InsertChild(parent, z)
	assert.False(t, pool.NoChildren(parent))

	assert.Equal(t, z, pool.RemoveFirstChild(parent))
	assert.Equal(t, y, pool.RemoveFirstChild(parent))
	assert.Equal(t, x, pool.RemoveFirstChild(parent))
	assert.True(t, pool.NoChildren(parent))
	assert.Equal(t, None, pool.RemoveFirstChild(parent))
}

// TestTreeDetachMiddle checks detaching a middle sibling keeps the sibling
// order and leaves the parent's first child alone.
func TestTreeDetachMiddle(t *testing.T) {
	pool := NewPool(8)
	hs := allocN(t, pool, 4)
	parent, x, y, z := hs[0], hs[1], hs[2], hs[3]

	pool.InsertChild(parent, x)
	pool.InsertChild(parent, y)
	pool.InsertChild(parent, z)

	// sibling list is z, y, x; y is in the middle
	assert.Equal(t, y, pool.Detach(y))
	assert.Equal(t, None, pool.Parent(y))

	assert.Equal(t, z, pool.RemoveFirstChild(parent))
	assert.Equal(t, x, pool.RemoveFirstChild(parent))
	assert.True(t, pool.NoChildren(parent))
}

// TestTreeDetachLast checks detaching the last sibling.
func TestTreeDetachLast(t *testing.T) {
	pool := NewPool(8)
	hs := allocN(t, pool, 3)
	parent, x, y := hs[0], hs[1], hs[2]

	pool.InsertChild(parent, x)
	pool.InsertChild(parent, y)

	// sibling list is y, x; x is last
	assert.Equal(t, x, pool.Detach(x))
	assert.Equal(t, y, pool.RemoveFirstChild(parent))
	assert.True(t, pool.NoChildren(parent))
}

// TestTreeDetachFirstAdvancesChild checks parent.child moves to the next
// sibling when the first child is detached directly.
func TestTreeDetachFirstAdvancesChild(t *testing.T) {
	pool := NewPool(8)
	hs := allocN(t, pool, 3)
	parent, x, y := hs[0], hs[1], hs[2]

	pool.InsertChild(parent, x)
	pool.InsertChild(parent, y)

	// sibling list is y, x; y is first
	assert.Equal(t, y, pool.Detach(y))
	assert.Equal(t, x, pool.RemoveFirstChild(parent))
}

// TestTreeDetachOrphan checks a block with no parent cannot be detached.
func TestTreeDetachOrphan(t *testing.T) {
	pool := NewPool(2)
	hs := allocN(t, pool, 1)

	assert.Equal(t, None, pool.Detach(hs[0]))
	assert.Equal(t, None, pool.Detach(None))
	assert.Equal(t, None, pool.Detach(Handle(50)))
}

// TestTreeDetachKeepsSubtree checks detaching a node leaves its own
// children attached to it.
func TestTreeDetachKeepsSubtree(t *testing.T) {
	pool := NewPool(8)
	hs := allocN(t, pool, 3)
	grandparent, parent, child := hs[0], hs[1], hs[2]

	pool.InsertChild(grandparent, parent)
	pool.InsertChild(parent, child)

	assert.Equal(t, parent, pool.Detach(parent))
	assert.Equal(t, None, pool.Parent(parent))

	// child still hangs off parent
	assert.False(t, pool.NoChildren(parent))
	assert.Equal(t, parent, pool.Parent(child))
}

// TestTreeInsertChildInvalid checks invalid insertions are no-ops.
func TestTreeInsertChildInvalid(t *testing.T) {
	pool := NewPool(4)
	hs := allocN(t, pool, 2)

	pool.InsertChild(None, hs[0])
	pool.InsertChild(hs[0], None)
	pool.InsertChild(hs[0], hs[0])
	assert.True(t, pool.NoChildren(hs[0]))
	assert.Equal(t, None, pool.Parent(hs[0]))

	pool.InsertChild(hs[0], hs[1])
	assert.Equal(t, hs[0], pool.Parent(hs[1]))
}

// TestTreeIndependentOfQueues checks tree links survive queue traffic on
// the same blocks.
func TestTreeIndependentOfQueues(t *testing.T) {
	pool := NewPool(8)
	hs := allocN(t, pool, 2)
	parent, child := hs[0], hs[1]

	pool.InsertChild(parent, child)

	var ready Queue
	pool.Enqueue(&ready, child)
	assert.Equal(t, child, pool.Dequeue(&ready))

	assert.Equal(t, parent, pool.Parent(child))
	assert.Equal(t, child, pool.RemoveFirstChild(parent))
}
