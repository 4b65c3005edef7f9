package layout

import "testing"

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}

	type tc struct {
		x, y float32
		want bool
	}

	tests := map[string]tc{
		"inside":               {x: 15, y: 15, want: true},
		"on left/top edge":     {x: 10, y: 10, want: true},
		"on right edge (excl)": {x: 30, y: 15, want: false},
		"on bottom edge (excl)": {x: 15, y: 30, want: false},
		"outside":              {x: 0, y: 0, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v,%v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 100}
	e := Edges{Top: 10, Right: 5, Bottom: 10, Left: 20}

	got := r.Inset(e)
	want := Rect{X: 20, Y: 10, W: 75, H: 80}
	if got != want {
		t.Errorf("Inset() = %+v, want %+v", got, want)
	}
}

func TestRect_InsetFloorsAtZero(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	e := Edges{Top: 20, Right: 20, Bottom: 20, Left: 20}

	got := r.Inset(e)
	if got.W != 0 || got.H != 0 {
		t.Errorf("Inset() with oversized edges = %+v, want W=0,H=0", got)
	}
}

func TestRect_Translate(t *testing.T) {
	r := Rect{X: 5, Y: 5, W: 10, H: 10}
	got := r.Translate(3, -2)
	want := Rect{X: 8, Y: 3, W: 10, H: 10}
	if got != want {
		t.Errorf("Translate(3,-2) = %+v, want %+v", got, want)
	}
}
