package codec

import (
	"fmt"
	"strings"
)

// Serialize renders the condition back into its single-line grammar form.
// For any condition produced by Parse, Serialize returns the original line.
func Serialize(c *Condition) string {
	var b strings.Builder
	if c.Flag != FlagNone {
		b.WriteString(c.Flag.Letter())
		b.WriteByte(':')
	}
	writeOperand(&b, c.Type, c.Size, c.Memory)
	if c.Cmp != "" {
		b.WriteString(c.Cmp)
		writeOperand(&b, c.CompareType, c.CompareSize, c.Value)
	}
	if c.Hits > 0 && !c.Flag.IsOperand() {
		fmt.Fprintf(&b, ".%d.", c.Hits)
	}
	return b.String()
}

func writeOperand(b *strings.Builder, kind OperandKind, size Size, text string) {
	switch kind {
	case KindValue:
		b.WriteString(text)
	case KindFloat:
		b.WriteByte('f')
		b.WriteString(text)
	case KindRecall:
		b.WriteString(RecallLiteral)
	default:
		b.WriteString(kind.Modifier())
		b.WriteString("0x")
		b.WriteString(size.Prefix())
		b.WriteString(text)
	}
}

// SerializeAll renders every condition, one line per element.
func SerializeAll(conds []*Condition) []string {
	lines := make([]string, len(conds))
	for i, c := range conds {
		lines[i] = Serialize(c)
	}
	return lines
}

// Join assembles lines into the "_"-joined wire blob.
func Join(lines []string) string {
	return strings.Join(lines, "_")
}
