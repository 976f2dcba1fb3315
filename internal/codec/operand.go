package codec

// OperandKind tags the shape of one side of a comparison: a live memory read,
// a historical read (Delta/Prior), an encoded read (BCD/Invert), a literal
// (Value/Float), or the recall register.
type OperandKind int

const (
	KindMem OperandKind = iota
	KindValue
	KindDelta
	KindPrior
	KindBCD
	KindFloat
	KindInvert
	KindRecall
)

var kindModifiers = map[OperandKind]string{
	KindDelta:  "d",
	KindPrior:  "p",
	KindBCD:    "b",
	KindInvert: "~",
}

var modifiersToKind = map[byte]OperandKind{
	'd': KindDelta,
	'p': KindPrior,
	'b': KindBCD,
	'~': KindInvert,
}

var kindNames = map[OperandKind]string{
	KindMem:    "Mem",
	KindValue:  "Value",
	KindDelta:  "Delta",
	KindPrior:  "Prior",
	KindBCD:    "BCD",
	KindFloat:  "Float",
	KindInvert: "Invert",
	KindRecall: "Recall",
}

// Modifier returns the single-character type modifier that precedes "0x" in
// the grammar, or "" for kinds without one.
func (k OperandKind) Modifier() string {
	return kindModifiers[k]
}

func (k OperandKind) String() string {
	return kindNames[k]
}

// IsAddress reports whether the operand reads memory and therefore carries a
// size code and a hex address.
func (k OperandKind) IsAddress() bool {
	switch k {
	case KindMem, KindDelta, KindPrior, KindBCD, KindInvert:
		return true
	}
	return false
}

// addAddressLeftKinds is the restriction the Add Address flag imposes on its
// left operand.
var addAddressLeftKinds = map[OperandKind]bool{
	KindMem:    true,
	KindPrior:  true,
	KindValue:  true,
	KindRecall: true,
}

// AllowedWithAddAddress reports whether the kind may appear as the left
// operand of an Add Address line.
func (k OperandKind) AllowedWithAddAddress() bool {
	return addAddressLeftKinds[k]
}
