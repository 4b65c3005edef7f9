package layout

// flexItem holds the per-child working state for one pass of the single-
// line flex algorithm (spec §4.4).
type flexItem struct {
	handle    Handle
	baseSize  float32 // Step 1: measured main-axis size before grow/shrink
	finalSize float32 // Step 2/3: main-axis size after distribution + clamp
	grow      float32
	shrink    float32
	minMain   float32
	maxMain   float32
	crossAuto bool
	crossMin  float32
	crossMax  float32
	crossSize float32
}

// layoutChildren runs the four-step single-line flex algorithm over n's
// children within content (n's content box, i.e. border box minus
// padding), then recurses into each child via computeNode.
func (e *Engine) layoutChildren(n Handle, content Rect) {
	style := e.arena.get(n).Style
	row := style.Direction == Row

	var mainAvail, crossAvail float32
	if row {
		mainAvail, crossAvail = content.W, content.H
	} else {
		mainAvail, crossAvail = content.H, content.W
	}

	items := e.collectItems(n, row, mainAvail)
	if len(items) == 0 {
		return
	}

	gapTotal := style.Gap * float32(len(items)-1)
	available := mainAvail - gapTotal
	if available < 0 {
		available = 0
	}

	// Step 1 is done inside collectItems (base sizes).
	var baseSum float32
	for _, it := range items {
		baseSum += it.baseSize
	}

	// Step 2: distribute the remaining (or overflowing) free space.
	freeSpace := available - baseSum
	distributeFreeSpace(items, freeSpace)

	// Step 3: main-axis placement per style.Justify.
	var usedMain float32
	for _, it := range items {
		usedMain += it.finalSize
	}
	usedMain += gapTotal

	leading, between := justifyOffsets(style.Justify, mainAvail-usedMain, len(items))

	mainPos := leading
	for i, it := range items {
		// Step 4: cross-axis placement per style.Align.
		crossOrigin, crossSize := alignChild(style.Align, crossAvail, it)

		var originX, originY, childMain, childCross float32
		childMain = it.finalSize
		childCross = crossSize
		if row {
			originX = content.X + mainPos
			originY = content.Y + crossOrigin
		} else {
			originX = content.X + crossOrigin
			originY = content.Y + mainPos
		}

		e.computeNode(it.handle, childMain, childCross, style.Direction, originX, originY)

		mainPos += it.finalSize
		if i < len(items)-1 {
			mainPos += style.Gap + between
		}
	}
}

// collectItems gathers n's children into flexItem records and computes
// each one's Step-1 base size: the explicit main-axis style value if
// present, else the min-main clamp, else zero (no intrinsic content
// measurement exists in this engine — see spec §4.4 Step 1).
func (e *Engine) collectItems(n Handle, row bool, mainAvail float32) []flexItem {
	var items []flexItem
	child := e.arena.get(n).FirstChild
	for child.Valid() {
		cs := e.arena.get(child).Style

		var mainStyle, minMain, maxMain, crossStyle, minCross, maxCross float32
		if row {
			mainStyle, minMain, maxMain = cs.Width, cs.MinWidth, cs.MaxWidth
			crossStyle, minCross, maxCross = cs.Height, cs.MinHeight, cs.MaxHeight
		} else {
			mainStyle, minMain, maxMain = cs.Height, cs.MinHeight, cs.MaxHeight
			crossStyle, minCross, maxCross = cs.Width, cs.MinWidth, cs.MaxWidth
		}

		base := mainStyle
		if base == Auto {
			base = 0
		}
		base = clamp(base, minMain, maxMain)

		items = append(items, flexItem{
			handle:    child,
			baseSize:  base,
			finalSize: base,
			grow:      cs.FlexGrow,
			shrink:    cs.FlexShrink,
			minMain:   minMain,
			maxMain:   maxMain,
			crossAuto: crossStyle == Auto,
			crossMin:  minCross,
			crossMax:  maxCross,
			crossSize: crossStyle,
		})

		child = e.arena.get(child).NextSibling
	}
	return items
}

// distributeFreeSpace implements Step 2: grow positive free space by
// flex-grow weight, shrink negative free space by flex-shrink*baseSize
// weight, and clamp each result into [min, max], redistributing any
// remainder left over by clamping across a bounded number of passes so a
// single saturated item cannot stall convergence.
func distributeFreeSpace(items []flexItem, freeSpace float32) {
	if freeSpace == 0 {
		return
	}

	maxPasses := len(items)
	frozen := make([]bool, len(items))

	for pass := 0; pass < maxPasses && freeSpace != 0; pass++ {
		var weightSum float32
		for i, it := range items {
			if frozen[i] {
				continue
			}
			if freeSpace > 0 {
				weightSum += it.grow
			} else {
				weightSum += it.shrink * it.baseSize
			}
		}
		if weightSum <= 0 {
			break
		}

		var remainder float32
		anyFrozeThisPass := false
		for i := range items {
			if frozen[i] {
				continue
			}
			it := &items[i]

			var weight float32
			if freeSpace > 0 {
				weight = it.grow
			} else {
				weight = it.shrink * it.baseSize
			}
			if weight <= 0 {
				continue
			}

			delta := freeSpace * weight / weightSum
			target := it.finalSize + delta
			clamped := clamp(target, it.minMain, it.maxMain)
			if clamped < 0 {
				clamped = 0
			}

			if clamped != target {
				remainder += target - clamped
				frozen[i] = true
				anyFrozeThisPass = true
			}
			it.finalSize = clamped
		}

		if !anyFrozeThisPass {
			break
		}
		freeSpace = remainder
	}
}

// justifyOffsets returns the leading offset before the first item and the
// extra spacing inserted between each pair of items, per spec §4.4's
// justify table. extra is the leftover main-axis space after items, gaps,
// and distribution; it may be negative if content overflows.
func justifyOffsets(j Justify, extra float32, n int) (leading, between float32) {
	if n == 0 {
		return 0, 0
	}
	if extra < 0 {
		// Overflow: pack from the start with only the base gap between
		// items, regardless of justify mode.
		return 0, 0
	}
	switch j {
	case JustifyStart:
		return 0, 0
	case JustifyCenter:
		return extra / 2, 0
	case JustifyEnd:
		return extra, 0
	case JustifySpaceBetween:
		if n == 1 {
			return 0, 0
		}
		return 0, extra / float32(n-1)
	case JustifySpaceAround:
		unit := extra / float32(n)
		return (extra + unit) / 2, unit
	case JustifySpaceEvenly:
		unit := extra / float32(n+1)
		return unit, unit
	default:
		return 0, 0
	}
}

// alignChild returns the cross-axis origin (relative to the content box's
// cross edge) and size for one item, per spec §4.4 Step 4.
func alignChild(a Align, crossAvail float32, it flexItem) (origin, size float32) {
	if a == AlignStretch {
		if it.crossAuto {
			return 0, crossAvail
		}
		return 0, clampNonNegative(it.crossSize, it.crossMin, it.crossMax)
	}

	var s float32
	if it.crossAuto {
		// Non-stretch aligns don't fill the cross axis: an AUTO cross size
		// collapses to zero unless the child specifies its own size (spec
		// §4.4 Step 1), matching the main-axis AUTO->0 rule in collectItems.
		s = 0
	} else {
		s = clampNonNegative(it.crossSize, it.crossMin, it.crossMax)
	}

	switch a {
	case AlignStart:
		return 0, s
	case AlignCenter:
		return (crossAvail - s) / 2, s
	case AlignEnd:
		return crossAvail - s, s
	default:
		return 0, s
	}
}

func clampNonNegative(v, lo, hi float32) float32 {
	v = clamp(v, lo, hi)
	if v < 0 {
		return 0
	}
	return v
}
