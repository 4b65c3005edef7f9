package layout

// Rect is an axis-aligned rectangle in viewport coordinates: x, y, w, h as
// float32, 16 bytes total (spec §6). W and H are never negative.
type Rect struct {
	X, Y, W, H float32
}

// Edges groups the four padding values of a Style for axis-generic code
// in the solver. It is a convenience view, not part of the wire layout.
type Edges struct {
	Top, Right, Bottom, Left float32
}

func (s Style) padding() Edges {
	return Edges{Top: s.PadTop, Right: s.PadRight, Bottom: s.PadBottom, Left: s.PadLeft}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() float32 { return e.Left + e.Right }

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() float32 { return e.Top + e.Bottom }

// Inset returns the rect shrunk by e, floored at zero size.
func (r Rect) Inset(e Edges) Rect {
	w := r.W - e.Horizontal()
	h := r.H - e.Vertical()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X + e.Left, Y: r.Y + e.Top, W: w, H: h}
}

// Translate returns r moved by (dx, dy); width and height are unchanged.
func (r Rect) Translate(dx, dy float32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Contains reports whether the point (x, y) lies within r, with the
// right and bottom edges exclusive (spec §4.8 hit_test).
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
