package layout

// Node is a single arena slot. Tree links are handles rather than pointers
// so the forest can be copied, reset, or inspected without chasing owning
// pointers (spec §9: "tree with parent pointers and free list").
type Node struct {
	Parent      Handle
	FirstChild  Handle
	NextSibling Handle

	Style Style
	Rect  Rect

	Dirty       bool
	Fingerprint uint64

	// SeenFrame and UserID are reconciler-owned bookkeeping (spec §3);
	// the layout engine never reads them itself.
	SeenFrame uint64
	UserID    uint32

	InUse bool
}

func blankNode() Node {
	return Node{
		Parent:      NullHandle,
		FirstChild:  NullHandle,
		NextSibling: NullHandle,
		Style:       DefaultStyle(),
		Dirty:       true,
		InUse:       true,
	}
}
