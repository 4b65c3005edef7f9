package gui

import (
	"github.com/grindlemire/flexui/internal/debug"
	"github.com/grindlemire/flexui/layout"
)

// Config configures a GUI instance at construction.
type Config struct {
	// MaxNodes is the fixed node capacity of the underlying layout engine.
	MaxNodes int
}

// GUI is the immediate-mode reconciliation layer: it maps declared
// (scope, id) pairs onto persistent layout.Engine nodes, tracks which
// nodes were touched each frame, and prunes the rest at EndFrame (spec
// §4.7). Not safe for concurrent use; external synchronization is
// required to share an instance across goroutines (spec §5).
type GUI struct {
	engine *layout.Engine

	scope       scopeStack
	parentStack []layout.Handle
	nodes       map[ID]layout.Handle

	root      layout.Handle
	frame     uint64
	viewportW float32
	viewportH float32

	mouse      MouseState
	pressHover map[ID]bool
}

// Create constructs a GUI backed by a fresh layout.Engine with the given
// capacity, plus a reconciler-owned root container node.
func Create(cfg Config) *GUI {
	eng := layout.Create(cfg.MaxNodes)
	root, _ := eng.Add(layout.NullHandle, layout.DefaultStyle())

	return &GUI{
		engine:     eng,
		nodes:      make(map[ID]layout.Handle),
		pressHover: make(map[ID]bool),
		root:       root,
	}
}

// Destroy releases the GUI's resources, including its layout engine.
func (g *GUI) Destroy() {
	g.engine.Destroy()
	g.engine = nil
	g.nodes = nil
}

// GetLayout returns the layout engine backing this GUI, for callers that
// need direct access to rects, stats, or traversal.
func (g *GUI) GetLayout() *layout.Engine { return g.engine }

// LastError returns the error code of the most recent failing engine
// call made on this GUI's behalf.
func (g *GUI) LastError() layout.ErrorCode { return g.engine.LastError() }

// SetViewport resizes the reconciler-managed root container. Takes
// effect on the next EndFrame's compute.
func (g *GUI) SetViewport(w, h float32) {
	g.viewportW, g.viewportH = w, h
	style := layout.DefaultStyle()
	style.Width = w
	style.Height = h
	g.engine.SetStyle(g.root, style)
}

// BeginFrame increments the frame counter, resets the id scope and parent
// stack (pushing the root container), and captures prev_down from the
// current mouse down state (spec §§4.7-4.8).
func (g *GUI) BeginFrame() {
	g.frame++
	g.scope.reset()
	g.parentStack = g.parentStack[:0]
	g.parentStack = append(g.parentStack, g.root)
	g.mouse.PrevDown = g.mouse.Down
}

// EndFrame removes every reconciler-owned node not touched this frame,
// then computes layout against the current viewport.
func (g *GUI) EndFrame() {
	for eff, h := range g.nodes {
		if g.engine.SeenFrame(h) != g.frame {
			g.engine.Remove(h)
			delete(g.nodes, eff)
		}
	}
	g.engine.Compute(g.viewportW, g.viewportH)
}

// PushID pushes id onto the scope stack; subsequent Widget/Begin calls
// combine their declared id with the new current scope.
func (g *GUI) PushID(id ID) { g.scope.push(id) }

// PopID pops the most recently pushed scope id.
func (g *GUI) PopID() { g.scope.pop() }

func (g *GUI) effectiveID(id ID) ID {
	return Combine(g.scope.current(), id)
}

func (g *GUI) currentParent() layout.Handle {
	return g.parentStack[len(g.parentStack)-1]
}

// Widget declares a leaf (or as-yet-childless) node identified by id
// under the current parent and scope. On the first declaration in a
// given scope it creates a node; thereafter it reuses the same node,
// updating style and reparenting it only if either changed (spec §4.7).
func (g *GUI) Widget(id ID, style layout.Style) layout.Handle {
	eff := g.effectiveID(id)
	parent := g.currentParent()

	h, ok := g.nodes[eff]
	if !ok {
		newHandle, err := g.engine.Add(parent, style)
		if err != nil {
			debug.Log("gui: widget %d: add failed: %v", eff, err)
			return layout.NullHandle
		}
		h = newHandle
		g.nodes[eff] = h
		g.engine.SetUserID(h, uint32(eff))
	} else {
		if g.engine.GetStyle(h) != style {
			g.engine.SetStyle(h, style)
		}
		if g.engine.GetParent(h) != parent {
			g.engine.Reparent(h, parent)
		}
	}

	g.engine.SetSeenFrame(h, g.frame)
	g.latchPressEdge(eff, h)
	return h
}

// Begin declares a container widget and pushes it onto the parent stack
// so subsequently declared widgets become its children, until End.
func (g *GUI) Begin(id ID, style layout.Style) layout.Handle {
	h := g.Widget(id, style)
	g.parentStack = append(g.parentStack, h)
	return h
}

// End pops the parent stack pushed by the matching Begin. A no-op if
// only the root container remains, so unbalanced End calls cannot pop
// past the frame's root.
func (g *GUI) End() {
	if len(g.parentStack) <= 1 {
		return
	}
	g.parentStack = g.parentStack[:len(g.parentStack)-1]
}

// Resolve returns the live node handle currently bound to id in the
// active scope, or layout.NullHandle if id is not bound to a node (never
// declared, or pruned by an EndFrame whose frame did not declare it). A
// node declared in an earlier frame still resolves until that EndFrame
// prunes it. Lets callers that hold onto an id reach straight into
// the layout engine — e.g. to read a rect without threading style
// through Widget again.
func (g *GUI) Resolve(id ID) layout.Handle {
	h, ok := g.nodes[g.effectiveID(id)]
	if !ok {
		return layout.NullHandle
	}
	return h
}

// GetRect returns the last-computed rect for id, or the zero Rect if id
// is not currently bound to a node.
func (g *GUI) GetRect(id ID) layout.Rect {
	h := g.Resolve(id)
	if !h.Valid() {
		return layout.Rect{}
	}
	return g.engine.GetRect(h)
}
