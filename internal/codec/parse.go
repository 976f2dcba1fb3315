package codec

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	hitsPattern  = regexp.MustCompile(`\.(\d+)\.$`)
	addrPattern  = regexp.MustCompile(`^([dpb~]?)0x([0-9A-Za-z]+)`)
	floatPattern = regexp.MustCompile(`^f\d+(?:\.\d+)?`)
	intPattern   = regexp.MustCompile(`^[+-]?\d+`)
)

// operand is the result of matching one side of a comparison.
type operand struct {
	kind OperandKind
	size Size
	text string
}

// Parse decodes a single condition line. The boolean is false when the line
// does not match the grammar; malformed lines are dropped by the caller, the
// parse of the surrounding blob continues.
//
// LineID and GroupID are left zero; the group model assigns them.
func Parse(line string) (*Condition, bool) {
	s := strings.TrimSpace(line)
	if s == "" {
		return nil, false
	}

	c := &Condition{}

	if m := hitsPattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, false
		}
		c.Hits = n
		s = s[:len(s)-len(m[0])]
	}

	if len(s) >= 2 && s[1] == ':' {
		f, ok := FlagFromLetter(s[0])
		if !ok {
			return nil, false
		}
		c.Flag = f
		s = s[2:]
	}

	left, rest, ok := parseOperand(s)
	if !ok {
		return nil, false
	}
	c.Type = left.kind
	c.Size = left.size
	c.Memory = left.text

	if rest != "" {
		cmp, afterCmp, ok := parseComparator(rest, c.Flag.IsOperand())
		if !ok {
			return nil, false
		}
		right, tail, ok := parseOperand(afterCmp)
		if !ok || tail != "" {
			return nil, false
		}
		c.Cmp = cmp
		c.CompareType = right.kind
		c.CompareSize = right.size
		c.Value = right.text
	}

	// The Add Address flag only admits Mem, Prior, Value, and Recall on the
	// left; anything else is salvaged as a plain Mem read at parse time.
	// Interactive edits reject instead (see Engine.SetType).
	if c.Flag == FlagAddAddress && !c.Type.AllowedWithAddAddress() {
		c.Type = KindMem
	}

	if c.Flag.IsOperand() {
		c.Hits = 0
	}

	return c, true
}

// parseOperand matches one operand at the start of s and returns the
// remainder of the string.
func parseOperand(s string) (operand, string, bool) {
	if strings.HasPrefix(s, RecallLiteral) {
		return operand{kind: KindRecall}, s[len(RecallLiteral):], true
	}
	if m := addrPattern.FindStringSubmatch(s); m != nil {
		kind := KindMem
		if m[1] != "" {
			kind = modifiersToKind[m[1][0]]
		}
		size, digits := SplitSizePrefix(m[2])
		if digits == "" || !isHex(digits) {
			return operand{}, "", false
		}
		return operand{kind: kind, size: size, text: digits}, s[len(m[0]):], true
	}
	if m := floatPattern.FindString(s); m != "" {
		return operand{kind: KindFloat, text: m[1:]}, s[len(m):], true
	}
	if m := intPattern.FindString(s); m != "" {
		return operand{kind: KindValue, text: m}, s[len(m):], true
	}
	return operand{}, "", false
}

// parseComparator matches the operator between the two operands. Operand
// flags take the arithmetic set with no default; everything else takes the
// relational set, falling back to "=" when the operator is omitted.
func parseComparator(s string, operandFlag bool) (cmp, rest string, ok bool) {
	if operandFlag {
		switch s[0] {
		case '*', '/', '%', '+', '-', '&', '^':
			return string(s[0]), s[1:], true
		}
		return "", "", false
	}
	if len(s) >= 2 {
		switch s[:2] {
		case "<=", ">=", "!=":
			return s[:2], s[2:], true
		}
	}
	switch s[0] {
	case '=', '<', '>':
		return string(s[0]), s[1:], true
	}
	return "=", s, true
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// ParseAll decodes a "_"-joined blob into conditions with dense 1-based line
// ids. Each condition starts in its own singleton group. Malformed lines are
// silently dropped.
func ParseAll(blob string) []*Condition {
	var conds []*Condition
	for _, line := range strings.Split(blob, "_") {
		c, ok := Parse(line)
		if !ok {
			continue
		}
		c.LineID = len(conds) + 1
		c.GroupID = c.LineID
		conds = append(conds, c)
	}
	return conds
}
