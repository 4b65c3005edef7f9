package layout

import "github.com/grindlemire/flexui/internal/debug"

// Arena is a fixed-capacity slot array with free-list recycling (spec
// §4.1). Capacity is fixed at construction; there is no growth.
type Arena struct {
	nodes    []Node
	freeList []uint32 // stack of free slot indices
	inUse    int
	dirtyN   int
}

// newArena allocates an Arena with room for exactly maxNodes slots.
func newArena(maxNodes int) *Arena {
	a := &Arena{
		nodes:    make([]Node, maxNodes),
		freeList: make([]uint32, maxNodes),
	}
	for i := 0; i < maxNodes; i++ {
		// Push in descending order so index 0 is allocated first.
		a.freeList[i] = uint32(maxNodes - 1 - i)
	}
	return a
}

// Capacity returns the fixed slot count the arena was constructed with.
func (a *Arena) Capacity() int { return len(a.nodes) }

// NodeCount returns the number of currently in-use slots.
func (a *Arena) NodeCount() int { return a.inUse }

// DirtyCount returns the number of in-use nodes with Dirty set.
func (a *Arena) DirtyCount() int { return a.dirtyN }

// alloc pops a slot from the free list and initializes it to a blank,
// dirty node. Returns CapacityExceeded if the arena is full.
func (a *Arena) alloc() (Handle, *Error) {
	if len(a.freeList) == 0 {
		debug.Log("arena: capacity exceeded (cap=%d)", len(a.nodes))
		return NullHandle, newError(CapacityExceeded)
	}
	idx := a.freeList[len(a.freeList)-1]
	a.freeList = a.freeList[:len(a.freeList)-1]

	a.nodes[idx] = blankNode()
	a.inUse++
	a.dirtyN++ // new nodes start dirty
	return Handle(idx), nil
}

// free returns a slot to the free list. The caller must have already
// detached the node from the tree. A no-op if h is already free.
func (a *Arena) free(h Handle) {
	if !a.Validate(h) {
		return
	}
	n := &a.nodes[h]
	if n.Dirty {
		a.dirtyN--
	}
	*n = Node{} // InUse=false, all handles zero (not NullHandle, but unreachable)
	a.inUse--
	a.freeList = append(a.freeList, uint32(h))
}

// Validate reports whether h names a live, in-use slot.
func (a *Arena) Validate(h Handle) bool {
	if h == NullHandle {
		return false
	}
	i := uint32(h)
	if i >= uint32(len(a.nodes)) {
		return false
	}
	return a.nodes[i].InUse
}

// get returns a pointer to the node for h. Callers must validate first;
// get itself does not check bounds or occupancy.
func (a *Arena) get(h Handle) *Node {
	return &a.nodes[h]
}

// setDirty sets h's dirty bit to dirty, adjusting the dirty counter when
// the bit changes.
func (a *Arena) setDirty(h Handle, dirty bool) {
	n := a.get(h)
	if n.Dirty == dirty {
		return
	}
	n.Dirty = dirty
	if dirty {
		a.dirtyN++
	} else {
		a.dirtyN--
	}
}
