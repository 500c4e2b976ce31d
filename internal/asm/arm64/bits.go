package arm64

// Canonical register field positions.
const (
	posRd = 0
	posRn = 5
	posRa = 10
	posRm = 16
)

// regBits places a 5-bit register index at pos.
func regBits(index uint8, pos uint) uint32 {
	return uint32(index&0x1f) << pos
}

// immBits masks v to width bits and places it at pos. Values that do not fit
// are truncated.
func immBits(v int64, width, pos uint) uint32 {
	mask := uint32(1)<<width - 1
	return (uint32(v) & mask) << pos
}

// scaledImmBits divides v by the access size before masking.
func scaledImmBits(v, scale int64, width, pos uint) uint32 {
	return immBits(v/scale, width, pos)
}

func condBits(c Cond, pos uint) uint32 {
	return uint32(c&0xf) << pos
}

func invertedCondBits(c Cond, pos uint) uint32 {
	return condBits(c.Invert(), pos)
}

// subImm6Bits encodes (from - v) mod 64, the imms field of LSL-as-UBFM.
func subImm6Bits(v, from int64, pos uint) uint32 {
	return immBits(from-v, 6, pos)
}

// negModImm6Bits encodes (-v mod width) mod 64, the immr field of LSL-as-UBFM.
func negModImm6Bits(v, width int64, pos uint) uint32 {
	m := (-v) % width
	if m < 0 {
		m += width
	}
	return immBits(m, 6, pos)
}
