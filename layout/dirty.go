package layout

// markDirty marks h and every ancestor up to the root as dirty (spec
// §4.3). Stops as soon as it reaches a node that is already dirty, since
// that node's ancestors are guaranteed dirty already.
func (a *Arena) markDirty(h Handle) {
	for h.Valid() && a.Validate(h) {
		n := a.get(h)
		if n.Dirty {
			return
		}
		a.setDirty(h, true)
		h = n.Parent
	}
}

// clean marks h as clean (dirty=false) without touching ancestors or
// descendants; called by the solver once a node's rect has been computed.
func (a *Arena) clean(h Handle) {
	a.setDirty(h, false)
}
