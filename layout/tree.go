package layout

import "github.com/grindlemire/flexui/internal/debug"

// Add creates a child of parent with the given style, or a new root if
// parent is NullHandle. The child is appended to the end of the parent's
// sibling chain (O(k) in existing child count — the chain is singly
// linked forward with no tail cache, per spec §4.2). The child and all of
// its ancestors are marked dirty.
func (e *Engine) Add(parent Handle, style Style) (Handle, error) {
	if parent.Valid() && !e.arena.Validate(parent) {
		return NullHandle, e.fail(InvalidNode)
	}

	h, aerr := e.arena.alloc()
	if aerr != nil {
		return NullHandle, e.fail(aerr.Code)
	}

	style.normalize()
	n := e.arena.get(h)
	n.Style = style
	n.Parent = parent

	if parent.Valid() {
		e.appendChild(parent, h)
		e.arena.markDirty(parent)
	} else {
		e.roots = append(e.roots, h)
	}
	e.arena.markDirty(h)

	e.ok()
	return h, nil
}

// appendChild links child onto the end of parent's sibling chain.
func (e *Engine) appendChild(parent, child Handle) {
	p := e.arena.get(parent)
	if !p.FirstChild.Valid() {
		p.FirstChild = child
		return
	}
	cur := p.FirstChild
	for {
		c := e.arena.get(cur)
		if !c.NextSibling.Valid() {
			c.NextSibling = child
			return
		}
		cur = c.NextSibling
	}
}

// detachChild removes child from parent's sibling chain without freeing it.
func (e *Engine) detachChild(parent, child Handle) {
	p := e.arena.get(parent)
	if p.FirstChild == child {
		p.FirstChild = e.arena.get(child).NextSibling
		return
	}
	cur := p.FirstChild
	for cur.Valid() {
		c := e.arena.get(cur)
		if c.NextSibling == child {
			c.NextSibling = e.arena.get(child).NextSibling
			return
		}
		cur = c.NextSibling
	}
}

func (e *Engine) removeRoot(h Handle) {
	for i, r := range e.roots {
		if r == h {
			e.roots = append(e.roots[:i], e.roots[i+1:]...)
			return
		}
	}
}

// Remove destroys the subtree rooted at n in post-order, returning all
// slots to the free list and marking the former parent dirty.
func (e *Engine) Remove(n Handle) error {
	if !e.arena.Validate(n) {
		return e.fail(InvalidNode)
	}

	parent := e.arena.get(n).Parent
	if parent.Valid() {
		e.detachChild(parent, n)
	} else {
		e.removeRoot(n)
	}

	e.removeSubtreePostOrder(n)

	if parent.Valid() {
		e.arena.markDirty(parent)
	}
	e.ok()
	return nil
}

func (e *Engine) removeSubtreePostOrder(n Handle) {
	child := e.arena.get(n).FirstChild
	for child.Valid() {
		next := e.arena.get(child).NextSibling
		e.removeSubtreePostOrder(child)
		child = next
	}
	e.arena.free(n)
}

// SetStyle overwrites n's style and marks it dirty.
func (e *Engine) SetStyle(n Handle, style Style) error {
	if !e.arena.Validate(n) {
		return e.fail(InvalidNode)
	}
	style.normalize()
	e.arena.get(n).Style = style
	e.arena.markDirty(n)
	e.ok()
	return nil
}

// GetStyle returns n's current style, or the zero Style if n is invalid.
func (e *Engine) GetStyle(n Handle) Style {
	if !e.arena.Validate(n) {
		e.fail(InvalidNode)
		return Style{}
	}
	e.ok()
	return e.arena.get(n).Style
}

// Reparent moves n to be the last child of newParent. Fails with
// CycleDetected if newParent is n itself or lies within n's subtree, and
// leaves the tree unchanged in that case. Marks the old parent, new
// parent, and n dirty.
func (e *Engine) Reparent(n, newParent Handle) error {
	if !e.arena.Validate(n) {
		return e.fail(InvalidNode)
	}
	if newParent.Valid() && !e.arena.Validate(newParent) {
		return e.fail(InvalidNode)
	}
	if newParent.Valid() && e.isInSubtree(n, newParent) {
		debug.Log("tree: reparent(%d, %d) rejected: cycle", n, newParent)
		return e.fail(CycleDetected)
	}

	oldParent := e.arena.get(n).Parent
	if oldParent.Valid() {
		e.detachChild(oldParent, n)
	} else {
		e.removeRoot(n)
	}

	e.arena.get(n).Parent = newParent
	e.arena.get(n).NextSibling = NullHandle
	if newParent.Valid() {
		e.appendChild(newParent, n)
		e.arena.markDirty(newParent)
	} else {
		e.roots = append(e.roots, n)
	}

	if oldParent.Valid() {
		e.arena.markDirty(oldParent)
	}
	e.arena.markDirty(n)

	e.ok()
	return nil
}

// isInSubtree reports whether candidate is root or lies within the
// subtree rooted at root.
func (e *Engine) isInSubtree(root, candidate Handle) bool {
	if root == candidate {
		return true
	}
	child := e.arena.get(root).FirstChild
	for child.Valid() {
		if e.isInSubtree(child, candidate) {
			return true
		}
		child = e.arena.get(child).NextSibling
	}
	return false
}

// GetParent returns n's parent, or NullHandle if n is a root or invalid.
func (e *Engine) GetParent(n Handle) Handle {
	if !e.arena.Validate(n) {
		e.fail(InvalidNode)
		return NullHandle
	}
	e.ok()
	return e.arena.get(n).Parent
}

// GetFirstChild returns n's first child, or NullHandle if it has none.
func (e *Engine) GetFirstChild(n Handle) Handle {
	if !e.arena.Validate(n) {
		e.fail(InvalidNode)
		return NullHandle
	}
	e.ok()
	return e.arena.get(n).FirstChild
}

// GetNextSibling returns the next node in n's parent's sibling chain.
func (e *Engine) GetNextSibling(n Handle) Handle {
	if !e.arena.Validate(n) {
		e.fail(InvalidNode)
		return NullHandle
	}
	e.ok()
	return e.arena.get(n).NextSibling
}

// GetRect returns n's last-computed rect, or the zero Rect if n is
// invalid.
func (e *Engine) GetRect(n Handle) Rect {
	if !e.arena.Validate(n) {
		e.fail(InvalidNode)
		return Rect{}
	}
	e.ok()
	return e.arena.get(n).Rect
}

// SetSeenFrame and SeenFrame/UserID accessors below are reconciler-only
// bookkeeping fields on the node record (spec §3); the engine itself never
// reads them.

// SetSeenFrame records the frame a reconciler last touched n.
func (e *Engine) SetSeenFrame(n Handle, frame uint64) {
	if !e.arena.Validate(n) {
		return
	}
	e.arena.get(n).SeenFrame = frame
}

// SeenFrame returns the frame a reconciler last touched n.
func (e *Engine) SeenFrame(n Handle) uint64 {
	if !e.arena.Validate(n) {
		return 0
	}
	return e.arena.get(n).SeenFrame
}

// SetUserID records the reconciliation identity that owns n.
func (e *Engine) SetUserID(n Handle, id uint32) {
	if !e.arena.Validate(n) {
		return
	}
	e.arena.get(n).UserID = id
}

// UserID returns the reconciliation identity that owns n.
func (e *Engine) UserID(n Handle) uint32 {
	if !e.arena.Validate(n) {
		return 0
	}
	return e.arena.get(n).UserID
}

// Roots returns a copy of the current root handle list, in insertion
// order.
func (e *Engine) Roots() []Handle {
	out := make([]Handle, len(e.roots))
	copy(out, e.roots)
	return out
}
