package codec

// Size selects the width, bit, or nibble of a memory operand. The zero value
// is the default 16-bit width, which serializes with an empty prefix.
type Size int

const (
	Size16 Size = iota
	Size8
	Size24
	Size32
	Size16BE
	Size24BE
	Size32BE
	SizeLower4
	SizeUpper4
	SizeBit0
	SizeBit1
	SizeBit2
	SizeBit3
	SizeBit4
	SizeBit5
	SizeBit6
	SizeBit7
	SizeBitCount
	SizeFloat
	SizeFloatBE
	SizeDouble32
	SizeDouble32BE
	SizeMBF32
	SizeMBF32LE
)

var sizePrefixes = map[Size]string{
	Size16:         "",
	Size8:          "H",
	Size24:         "W",
	Size32:         "X",
	Size16BE:       "I",
	Size24BE:       "J",
	Size32BE:       "G",
	SizeLower4:     "L",
	SizeUpper4:     "U",
	SizeBit0:       "M",
	SizeBit1:       "N",
	SizeBit2:       "O",
	SizeBit3:       "P",
	SizeBit4:       "Q",
	SizeBit5:       "R",
	SizeBit6:       "S",
	SizeBit7:       "T",
	SizeBitCount:   "K",
	SizeFloat:      "fF",
	SizeFloatBE:    "fB",
	SizeDouble32:   "fH",
	SizeDouble32BE: "fI",
	SizeMBF32:      "fM",
	SizeMBF32LE:    "fL",
}

var sizeNames = map[Size]string{
	Size16:         "16-bit",
	Size8:          "8-bit",
	Size24:         "24-bit",
	Size32:         "32-bit",
	Size16BE:       "16-bit BE",
	Size24BE:       "24-bit BE",
	Size32BE:       "32-bit BE",
	SizeLower4:     "Lower4",
	SizeUpper4:     "Upper4",
	SizeBit0:       "Bit0",
	SizeBit1:       "Bit1",
	SizeBit2:       "Bit2",
	SizeBit3:       "Bit3",
	SizeBit4:       "Bit4",
	SizeBit5:       "Bit5",
	SizeBit6:       "Bit6",
	SizeBit7:       "Bit7",
	SizeBitCount:   "BitCount",
	SizeFloat:      "Float",
	SizeFloatBE:    "Float BE",
	SizeDouble32:   "Double32",
	SizeDouble32BE: "Double32 BE",
	SizeMBF32:      "MBF32",
	SizeMBF32LE:    "MBF32 LE",
}

var prefixesToSize = func() map[string]Size {
	m := make(map[string]Size, len(sizePrefixes))
	for s, p := range sizePrefixes {
		if p != "" {
			m[p] = s
		}
	}
	return m
}()

// Prefix returns the 0–2 letter size code embedded after "0x".
func (s Size) Prefix() string {
	return sizePrefixes[s]
}

func (s Size) String() string {
	return sizeNames[s]
}

// SplitSizePrefix resolves the leading size code of the alphanumeric run that
// follows "0x". It tries the two-letter float codes first, then the single
// letters, and falls back to the default 16-bit width. The remainder is the
// address digits, still unvalidated.
func SplitSizePrefix(run string) (Size, string) {
	if len(run) >= 2 {
		if s, ok := prefixesToSize[run[:2]]; ok {
			return s, run[2:]
		}
	}
	if len(run) >= 1 {
		if s, ok := prefixesToSize[run[:1]]; ok {
			return s, run[1:]
		}
	}
	return Size16, run
}

// IsBit reports whether the size selects a single bit.
func (s Size) IsBit() bool {
	return s >= SizeBit0 && s <= SizeBit7
}

// BitIndex returns the bit number 0..7 for single-bit sizes, -1 otherwise.
func (s Size) BitIndex() int {
	if !s.IsBit() {
		return -1
	}
	return int(s - SizeBit0)
}

// BitSize returns the single-bit size for a bit index 0..7.
func BitSize(bit int) Size {
	return SizeBit0 + Size(bit)
}

// IsNibble reports whether the size selects the lower or upper half of a byte.
func (s Size) IsNibble() bool {
	return s == SizeLower4 || s == SizeUpper4
}

// Stride is the byte step between adjacent operands of this size inside a
// custom-selection row: 1 for the 8-bit class (bytes, nibbles, bits,
// bitcount), 2 for the 16-bit class, 4 for everything wider.
func (s Size) Stride() int {
	switch s {
	case Size8, SizeLower4, SizeUpper4, SizeBitCount,
		SizeBit0, SizeBit1, SizeBit2, SizeBit3, SizeBit4, SizeBit5, SizeBit6, SizeBit7:
		return 1
	case Size16, Size16BE:
		return 2
	default:
		return 4
	}
}
