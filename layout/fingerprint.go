package layout

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// fingerprint hashes the inputs that determined a node's last computed
// rect: its own style plus the parent-provided axis constraints and the
// parent's direction (spec §4.5). Two calls with equal inputs produce an
// equal fingerprint; this is what lets the solver skip a clean subtree
// whose effective inputs have not changed even though the parent's own
// rect moved.
func fingerprint(style Style, parentMain, parentCross float32, parentDirection Direction) uint64 {
	var buf [64]byte
	putFloat(buf[0:4], style.FlexGrow)
	putFloat(buf[4:8], style.FlexShrink)
	putFloat(buf[8:12], style.Width)
	putFloat(buf[12:16], style.Height)
	putFloat(buf[16:20], style.MinWidth)
	putFloat(buf[20:24], style.MinHeight)
	putFloat(buf[24:28], style.MaxWidth)
	putFloat(buf[28:32], style.MaxHeight)
	putFloat(buf[32:36], style.Gap)
	putFloat(buf[36:40], style.PadTop)
	putFloat(buf[40:44], style.PadRight)
	putFloat(buf[44:48], style.PadBottom)
	putFloat(buf[48:52], style.PadLeft)
	buf[52] = byte(style.Direction)
	buf[53] = byte(style.Justify)
	buf[54] = byte(style.Align)
	putFloat(buf[55:59], parentMain)
	putFloat(buf[59:63], parentCross)
	buf[63] = byte(parentDirection)

	return xxhash.Sum64(buf[:])
}

func putFloat(b []byte, f float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(f))
}
