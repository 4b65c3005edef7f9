// Package gui implements the immediate-mode reconciliation layer on top of
// the layout engine: stable identity derivation, per-frame "seen"
// tracking, a parent/id scope stack, and hit testing (spec §§4.6-4.8).
package gui

import "hash/fnv"

// ID is a 32-bit stable identity derived from a widget's declared label
// and its enclosing id scope.
type ID uint32

// Label hashes s with FNV-1a 32-bit (spec §4.6: "a fast non-cryptographic
// hash with good avalanche ... FNV-1a 32-bit or a multiply-xor mix is
// sufficient"). Pure and stable across process lifetime.
func Label(s string) ID {
	h := fnv.New32a()
	h.Write([]byte(s))
	return ID(h.Sum32())
}

// LabelIndex derives a per-index id for widgets declared in a loop, e.g.
// list rows: LabelIndex("row", i).
func LabelIndex(s string, i int) ID {
	return Combine(Label(s), ID(uint32(i)))
}

// Combine deterministically mixes a and b into an id distinct from either
// input (spec §4.6). Not commutative.
func Combine(a, b ID) ID {
	x := uint32(a)
	y := uint32(b)
	x ^= y + 0x9e3779b9 + (x << 6) + (x >> 2)
	return ID(x)
}
