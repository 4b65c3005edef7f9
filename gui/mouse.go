package gui

import "github.com/grindlemire/flexui/layout"

// MouseState is the tiny raw mouse record the reconciler tracks: current
// position, current button state, and the button state as of the start
// of this frame (spec §4.8).
type MouseState struct {
	X, Y     float32
	Down     bool
	PrevDown bool
}

// SetMouse updates the current mouse position and button state. PrevDown
// is unaffected; it is captured once per frame by BeginFrame.
func (g *GUI) SetMouse(x, y float32, down bool) {
	g.mouse.X = x
	g.mouse.Y = y
	g.mouse.Down = down
}

// Mouse returns a snapshot of the current mouse record.
func (g *GUI) Mouse() MouseState { return g.mouse }

// Hovered reports whether the current mouse position lies over id's rect.
func (g *GUI) Hovered(id ID) bool {
	return g.hitTestID(id, g.mouse.X, g.mouse.Y)
}

// Pressed reports whether the mouse button is currently down while over
// id's rect.
func (g *GUI) Pressed(id ID) bool {
	return g.mouse.Down && g.Hovered(id)
}

// Clicked reports whether the mouse button transitioned from down to up
// this frame while id was hovered at the moment of the most recent press
// (spec §4.8). The hovered-on-press state is latched every frame the
// widget is declared (see latchPressEdge), not only when Hovered/Pressed
// happen to be queried, so a press and its matching release can be
// several frames apart without losing the click.
func (g *GUI) Clicked(id ID) bool {
	eff := g.effectiveID(id)
	released := g.mouse.PrevDown && !g.mouse.Down
	return released && g.pressHover[eff]
}

// HitTest reports whether (x, y) lies within id's last-computed rect,
// independent of the live mouse cursor.
func (g *GUI) HitTest(id ID, x, y float32) bool {
	return g.hitTestID(id, x, y)
}

func (g *GUI) hitTestID(id ID, x, y float32) bool {
	return g.GetRect(id).Contains(x, y)
}

// latchPressEdge records, for the given effective id, whether its node's
// last-computed rect was under the cursor at the instant of a fresh
// press edge (down transitioning false->true). Called from Widget on
// every declaration, so it fires exactly once per press regardless of
// whether the caller queries Hovered/Pressed that frame.
func (g *GUI) latchPressEdge(eff ID, h layout.Handle) {
	if !(g.mouse.Down && !g.mouse.PrevDown) {
		return
	}
	hit := g.engine.GetRect(h).Contains(g.mouse.X, g.mouse.Y)
	g.pressHover[eff] = hit
}
