package expand

import (
	"strconv"
	"strings"

	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/codec"
)

// CanExpand reports whether the condition can drive an expansion: the left
// operand must be present, and a line whose two sides are both pure values
// or both recalls has nothing to vary.
func CanExpand(c *codec.Condition) bool {
	if c.Type != codec.KindRecall && strings.TrimSpace(c.Memory) == "" {
		return false
	}
	if c.HasRight() {
		if c.Type == codec.KindValue && c.CompareType == codec.KindValue {
			return false
		}
		if c.Type == codec.KindRecall && c.CompareType == codec.KindRecall {
			return false
		}
	}
	return true
}

// BothTabAllowed reports whether the "both" tab may be offered for the
// condition: the two operands must both carry a size and the sizes must
// match.
func BothTabAllowed(c *codec.Condition) bool {
	return c.HasRight() &&
		c.Type.IsAddress() && c.CompareType.IsAddress() &&
		c.Size == c.CompareSize
}

// Expand generates the concrete text lines for every repetition of the
// group, in repetition-major order: all lines of repetition 0, then all
// lines of repetition 1, and so on. Members without a line config serialize
// unchanged in every repetition; a customized member contributes its n-th
// pick to the n-th repetition and nothing once its picks run out.
func Expand(group []*codec.Condition, cfg *Config) []string {
	var out []string
	for idx := 0; idx < cfg.GeneratedGroups; idx++ {
		for _, c := range group {
			line, ok := expandLine(c, cfg.Lines[c.LineID], idx)
			if ok {
				out = append(out, line)
			}
		}
	}
	return out
}

func expandLine(c *codec.Condition, lc *LineConfig, idx int) (string, bool) {
	if lc == nil {
		return codec.Serialize(c), true
	}

	if lc.Customized && lc.Custom != nil {
		picks := lc.Custom.Picks()
		if idx >= len(picks) {
			return "", false
		}
		dup := c.Clone()
		applyPick(dup, lc.ActiveTab, picks[idx])
		return codec.Serialize(dup), true
	}

	if inc, ok := ParseIncrement(lc.Increment); ok {
		dup := c.Clone()
		applyStep(dup, lc.ActiveTab, inc*int64(idx))
		return codec.Serialize(dup), true
	}

	return codec.Serialize(c), true
}

func applyPick(c *codec.Condition, tab Tab, p Pick) {
	if tab == TabLeft || tab == TabBoth {
		if c.Type.IsAddress() {
			c.Size = p.Size
			c.Memory = codec.FormatAddress(p.Addr)
		}
	}
	if (tab == TabRight || tab == TabBoth) && c.HasRight() {
		if c.CompareType.IsAddress() {
			c.CompareSize = p.Size
			c.Value = codec.FormatAddress(p.Addr)
		}
	}
}

func applyStep(c *codec.Condition, tab Tab, delta int64) {
	if tab == TabLeft || tab == TabBoth {
		c.Memory = steppedOperand(c.Type, c.Memory, delta)
	}
	if (tab == TabRight || tab == TabBoth) && c.HasRight() {
		c.Value = steppedOperand(c.CompareType, c.Value, delta)
	}
}

// steppedOperand adds delta to the numeric value of one operand, returning
// the reformatted text. Address operands stay hex, value operands stay
// decimal; operands that do not parse, or would go negative, are left
// untouched.
func steppedOperand(kind codec.OperandKind, text string, delta int64) string {
	switch {
	case kind.IsAddress():
		addr, ok := codec.ParseHexAddress(text)
		if !ok {
			return text
		}
		stepped := int64(addr) + delta
		if stepped < 0 {
			return text
		}
		return codec.FormatAddress(uint64(stepped))
	case kind == codec.KindValue:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return text
		}
		return strconv.FormatInt(v+delta, 10)
	default:
		return text
	}
}
