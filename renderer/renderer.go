// Package renderer defines the external collaborator interface that
// consumes the rects computed by the layout and gui packages. Nothing in
// this module calls
// into a Renderer; a companion rendering layer walks the node tree after
// gui.GUI.EndFrame and invokes these methods itself (spec §6, out of
// scope for the core).
package renderer

import "github.com/grindlemire/flexui/layout"

// Color is an opaque RGBA color understood by a Renderer implementation.
// Zero value is transparent black.
type Color struct {
	R, G, B, A uint8
}

// RGB constructs an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// RGBA constructs a color from 8-bit components with explicit alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Renderer is the vtable a companion rendering layer implements to turn
// computed rects into pixels, terminal cells, or any other output. The
// core never calls these methods; they exist here only so that code
// bridging the layout/gui packages to a concrete renderer has a common
// interface to target.
type Renderer interface {
	BeginFrame()
	EndFrame()
	Clear(c Color)

	DrawRect(r layout.Rect, c Color)
	DrawRoundedRect(r layout.Rect, radius float32, c Color)
	DrawText(r layout.Rect, text string, c Color)
	DrawImage(r layout.Rect, image []byte)

	ClipBegin(r layout.Rect)
	ClipEnd()
}
