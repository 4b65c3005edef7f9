package layout

import (
	"errors"
	"testing"
)

func TestEngine_AddAppendsToEndOfSiblingChain(t *testing.T) {
	e := Create(8)
	root, _ := e.Add(NullHandle, DefaultStyle())
	c1, _ := e.Add(root, DefaultStyle())
	c2, _ := e.Add(root, DefaultStyle())

	if got := e.GetFirstChild(root); got != c1 {
		t.Fatalf("GetFirstChild(root) = %v, want %v", got, c1)
	}
	if got := e.GetNextSibling(c1); got != c2 {
		t.Fatalf("GetNextSibling(c1) = %v, want %v", got, c2)
	}
	if got := e.GetNextSibling(c2); got != NullHandle {
		t.Fatalf("GetNextSibling(c2) = %v, want NullHandle", got)
	}
}

func TestEngine_AddMarksSelfAndAncestorsDirty(t *testing.T) {
	e := Create(8)
	root, _ := e.Add(NullHandle, DefaultStyle())
	e.Compute(100, 100) // clears dirty bits

	if got := e.DirtyCount(); got != 0 {
		t.Fatalf("DirtyCount() after compute = %d, want 0", got)
	}

	child, _ := e.Add(root, DefaultStyle())
	if !e.arena.get(root).Dirty {
		t.Error("parent not marked dirty after Add")
	}
	if !e.arena.get(child).Dirty {
		t.Error("new child not marked dirty after Add")
	}
}

func TestEngine_Remove(t *testing.T) {
	e := Create(8)
	root, _ := e.Add(NullHandle, DefaultStyle())
	child, _ := e.Add(root, DefaultStyle())
	grandchild, _ := e.Add(child, DefaultStyle())

	before := e.NodeCount()
	if err := e.Remove(child); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	if got := e.NodeCount(); got != before-2 {
		t.Errorf("NodeCount() after removing subtree of 2 = %d, want %d", got, before-2)
	}
	if e.Validate(child) {
		t.Error("child still valid after Remove")
	}
	if e.Validate(grandchild) {
		t.Error("grandchild still valid after Remove of its ancestor")
	}
	if got := e.GetFirstChild(root); got != NullHandle {
		t.Errorf("GetFirstChild(root) after removing its only child = %v, want NullHandle", got)
	}
}

func TestEngine_RemoveThenAddRecyclesSlot(t *testing.T) {
	e := Create(1)
	root, _ := e.Add(NullHandle, DefaultStyle())
	before := e.NodeCount()

	e.Remove(root)
	if got := e.NodeCount(); got != before-1 {
		t.Fatalf("NodeCount() after Remove = %d, want %d", got, before-1)
	}

	if _, err := e.Add(NullHandle, DefaultStyle()); err != nil {
		t.Fatalf("Add() after Remove freed a slot: error = %v", err)
	}
	if got := e.NodeCount(); got != before {
		t.Errorf("NodeCount() after Add recycling a freed slot = %d, want %d", got, before)
	}
}

func TestEngine_ReparentCycleRejected(t *testing.T) {
	e := Create(8)
	root, _ := e.Add(NullHandle, DefaultStyle())
	child, _ := e.Add(root, DefaultStyle())
	grandchild, _ := e.Add(child, DefaultStyle())

	err := e.Reparent(child, grandchild)
	if err == nil {
		t.Fatal("Reparent onto own descendant: got nil error, want CycleDetected")
	}
	var layoutErr *Error
	if !errors.As(err, &layoutErr) || layoutErr.Code != CycleDetected {
		t.Errorf("Reparent cycle error = %v, want CycleDetected", err)
	}
	if e.LastError() != CycleDetected {
		t.Errorf("LastError() = %v, want CycleDetected", e.LastError())
	}

	// Tree must be unchanged.
	if got := e.GetParent(child); got != root {
		t.Errorf("GetParent(child) after rejected reparent = %v, want %v (unchanged)", got, root)
	}
}

func TestEngine_ReparentSelfRejected(t *testing.T) {
	e := Create(8)
	root, _ := e.Add(NullHandle, DefaultStyle())
	child, _ := e.Add(root, DefaultStyle())

	if err := e.Reparent(child, child); err == nil {
		t.Fatal("Reparent(child, child): got nil error, want CycleDetected")
	}
}

func TestEngine_InvalidHandleIsNoOp(t *testing.T) {
	e := Create(4)
	stale := Handle(3)

	if err := e.SetStyle(stale, DefaultStyle()); err == nil {
		t.Error("SetStyle on invalid handle: got nil error")
	}
	if got := e.GetParent(stale); got != NullHandle {
		t.Errorf("GetParent(invalid) = %v, want NullHandle", got)
	}
	if got := e.GetRect(stale); got != (Rect{}) {
		t.Errorf("GetRect(invalid) = %+v, want zero Rect", got)
	}
	if e.LastError() != InvalidNode {
		t.Errorf("LastError() = %v, want InvalidNode", e.LastError())
	}
}
