package layout

import "testing"

func TestMarkDirty_PropagatesToRootFromClean(t *testing.T) {
	e := Create(8)
	root, _ := e.Add(NullHandle, DefaultStyle())
	mid, _ := e.Add(root, DefaultStyle())
	leaf, _ := e.Add(mid, DefaultStyle())
	e.Compute(100, 100) // everything clean

	e.SetStyle(leaf, Style{Width: 10, Height: 10, MaxWidth: None, MaxHeight: None})

	if !e.arena.get(leaf).Dirty {
		t.Error("leaf not dirty after SetStyle")
	}
	if !e.arena.get(mid).Dirty {
		t.Error("mid not dirty after a descendant's SetStyle")
	}
	if !e.arena.get(root).Dirty {
		t.Error("root not dirty after a descendant's SetStyle")
	}
}

func TestMarkDirty_StopsAtFirstDirtyAncestor(t *testing.T) {
	e := Create(8)
	root, _ := e.Add(NullHandle, DefaultStyle())
	mid, _ := e.Add(root, DefaultStyle())
	leaf, _ := e.Add(mid, DefaultStyle())
	e.Compute(100, 100)

	// Dirty mid (and, by propagation, root) first.
	e.SetStyle(mid, Style{Width: 5, Height: 5, MaxWidth: None, MaxHeight: None})
	if got := e.DirtyCount(); got != 2 {
		t.Fatalf("DirtyCount() after dirtying mid = %d, want 2 (mid, root)", got)
	}

	// Dirtying leaf should stop climbing as soon as it reaches the
	// already-dirty mid, leaving the dirty set exactly {leaf, mid, root}.
	e.SetStyle(leaf, Style{Width: 5, Height: 5, MaxWidth: None, MaxHeight: None})
	if got := e.DirtyCount(); got != 3 {
		t.Errorf("DirtyCount() after also dirtying leaf = %d, want 3 (leaf, mid, root)", got)
	}
}

func TestDirtyCount_TracksTransitions(t *testing.T) {
	e := Create(8)
	root, _ := e.Add(NullHandle, DefaultStyle())
	e.Add(root, DefaultStyle())

	if got := e.DirtyCount(); got != 2 {
		t.Fatalf("DirtyCount() after two Adds = %d, want 2", got)
	}

	e.Compute(100, 100)
	if got := e.DirtyCount(); got != 0 {
		t.Errorf("DirtyCount() after Compute = %d, want 0", got)
	}
}

func TestCompute_ClearsDirtySet(t *testing.T) {
	e := Create(16)
	root, _ := e.Add(NullHandle, DefaultStyle())
	for i := 0; i < 5; i++ {
		e.Add(root, DefaultStyle())
	}

	e.Compute(500, 500)
	if got := e.DirtyCount(); got != 0 {
		t.Errorf("DirtyCount() after Compute = %d, want 0", got)
	}
}
