package codec

import (
	"strconv"
	"strings"
)

// RecallLiteral is the textual form of a Recall operand.
const RecallLiteral = "{recall}"

// Condition is one predicate line of the grammar in structured form.
//
// LineID is 1-based, dense, and reassigned on every structural mutation; it
// is a position, not an identity. GroupID equals the LineID of some member of
// the contiguous link group the condition belongs to. Memory and Value hold
// the raw operand text exactly as authored (hex digits without the "0x", or a
// decimal literal), so a parsed line serializes back byte-for-byte.
type Condition struct {
	LineID  int
	GroupID int

	Flag Flag

	Type   OperandKind
	Size   Size
	Memory string

	Cmp string

	CompareType OperandKind
	CompareSize Size
	Value       string

	Hits int

	Expanded      bool
	ExpandedLines []string
}

// Clone returns a deep copy of the condition.
func (c *Condition) Clone() *Condition {
	dup := *c
	if c.ExpandedLines != nil {
		dup.ExpandedLines = append([]string(nil), c.ExpandedLines...)
	}
	return &dup
}

// HasRight reports whether the condition carries a right operand.
func (c *Condition) HasRight() bool {
	return c.Cmp != ""
}

// LeftAddress parses the left operand as a hex address. Only meaningful for
// address kinds.
func (c *Condition) LeftAddress() (uint64, bool) {
	return ParseHexAddress(c.Memory)
}

// RightAddress parses the right operand as a hex address. Only meaningful for
// address kinds.
func (c *Condition) RightAddress() (uint64, bool) {
	return ParseHexAddress(c.Value)
}

// ParseHexAddress decodes the raw digit text of an address operand.
func ParseHexAddress(text string) (uint64, bool) {
	v, err := strconv.ParseUint(strings.TrimSpace(text), 16, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatAddress renders a generated address as lowercase hex. Authored
// operands keep their original text; this is only for lines the expansion
// engine fabricates.
func FormatAddress(addr uint64) string {
	return strconv.FormatUint(addr, 16)
}
