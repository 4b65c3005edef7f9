package layout

import "github.com/grindlemire/flexui/internal/debug"

// Compute lays out every root in the forest against the given viewport
// (spec §4.4). Roots are processed in insertion order. A (0,0) viewport
// is valid input and produces all-zero rects without dividing by zero.
func (e *Engine) Compute(viewportW, viewportH float32) {
	for _, root := range e.roots {
		if !e.arena.Validate(root) {
			continue
		}
		e.computeNode(root, viewportW, viewportH, Row, 0, 0)
	}
	e.ok()
}

// computeNode resolves n's outer box from the main/cross constraint its
// parent handed it (or the viewport, for a root), lays out its children if
// any, and stores the result. originX/originY is the absolute position of
// n's border box.
//
// parentMain/parentCross/parentDirection together with n's own style form
// the cache fingerprint (spec §4.5): if n is clean and its fingerprint is
// unchanged, the stored rect is reused (translated to the new origin) and
// the subtree is not re-walked.
func (e *Engine) computeNode(n Handle, parentMain, parentCross float32, parentDirection Direction, originX, originY float32) {
	node := e.arena.get(n)
	style := node.Style

	fp := fingerprint(style, parentMain, parentCross, parentDirection)

	if !node.Dirty && node.Fingerprint == fp {
		e.cacheHits++
		dx := originX - node.Rect.X
		dy := originY - node.Rect.Y
		e.translateSubtree(n, dx, dy)
		return
	}

	e.cacheMisses++
	if fp != node.Fingerprint {
		debug.Log("layout: fingerprint miss for node %d (dirty=%v)", n, node.Dirty)
	}

	// parentMain/parentCross are relative to the parent's own direction;
	// map them back onto width/height before resolving this node's box.
	availW, availH := parentCross, parentMain
	if parentDirection == Row {
		availW, availH = parentMain, parentCross
	}
	outerW := resolveDimension(style.Width, availW, style.MinWidth, style.MaxWidth)
	outerH := resolveDimension(style.Height, availH, style.MinHeight, style.MaxHeight)
	if node.Parent.Valid() {
		// A child's main size was settled by its parent's grow/shrink pass
		// and its cross size by alignment, both already clamped there.
		outerW, outerH = availW, availH
	}

	border := Rect{X: originX, Y: originY, W: outerW, H: outerH}
	content := border.Inset(style.padding())

	node.Rect = border
	node.Fingerprint = fp

	if node.FirstChild.Valid() {
		e.layoutChildren(n, content)
	}

	e.arena.clean(n)
}

// resolveDimension implements spec §4.4's "resolved outer size of a node":
// AUTO falls back to the parent-provided size, otherwise the style's own
// value is used; either way the result is clamped by [min, max] and
// floored at zero. computeNode uses the result for roots only; a child
// takes the size its parent's flex pass assigned.
func resolveDimension(styleVal, parentProvided, min, max float32) float32 {
	v := styleVal
	if styleVal == Auto {
		v = parentProvided
	}
	v = clamp(v, min, max)
	if v < 0 {
		v = 0
	}
	return v
}

// translateSubtree shifts n and every descendant's stored rect by (dx,
// dy) without recomputing any sizing. Used when a clean, fingerprint-
// matched subtree only needs to follow its parent's new position.
func (e *Engine) translateSubtree(n Handle, dx, dy float32) {
	node := e.arena.get(n)
	node.Rect.X += dx
	node.Rect.Y += dy

	child := node.FirstChild
	for child.Valid() {
		e.translateSubtree(child, dx, dy)
		child = e.arena.get(child).NextSibling
	}
}
