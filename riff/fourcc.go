package riff

// FourCC is a 32-bit tag whose bytes, in file order, are four ASCII
// characters. It is stored big-endian when packed into a uint32, which
// is how every four-character-code field in a RIFF/AVI stream is read.
type FourCC uint32

// FourCCFromBytes builds a FourCC from its on-disk byte order.
func FourCCFromBytes(b [4]byte) FourCC {
	return FourCC(ReadU32BE(b[:], 0))
}

// FourCCFromString builds a FourCC from a 4-character ASCII string. It
// panics if s is not exactly 4 bytes; callers pass compile-time constants.
func FourCCFromString(s string) FourCC {
	if len(s) != 4 {
		panic("riff: FourCC string must be exactly 4 bytes: " + s)
	}
	var b [4]byte
	copy(b[:], s)
	return FourCCFromBytes(b)
}

// Bytes returns the tag's on-disk byte representation.
func (f FourCC) Bytes() [4]byte {
	var b [4]byte
	WriteU32BE(b[:], 0, uint32(f))
	return b
}

// String renders the tag as its four ASCII characters. It does not
// validate printability; it exists for debug output, not round-tripping.
func (f FourCC) String() string {
	b := f.Bytes()
	return string(b[:])
}
