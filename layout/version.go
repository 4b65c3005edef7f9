package layout

// Version is the engine's ABI version, encoded as 0xMMMMmmmm (major.minor).
const Version uint32 = 0x00010000

// GetVersion returns the engine's ABI version.
func GetVersion() uint32 { return Version }

// StyleSize returns the wire size in bytes of Style (spec §3).
func StyleSize() int { return 56 }

// RectSize returns the wire size in bytes of Rect (spec §3).
func RectSize() int { return 16 }
