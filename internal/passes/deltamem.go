// Package passes holds the post-expansion rewrites: the Delta/Mem
// accumulator duplication, the single-bit run compression, and the
// Remember/Recall pattern substitution. Every pass is a pure function over a
// line sequence that returns its input unchanged when it does not apply.
package passes

import (
	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/codec"
)

// SentinelLine terminates each converted block of an Add/Sub-Source group so
// the accumulator chain is asserted and reset.
const SentinelLine = "0=0"

// DeltaMemApplies reports whether the accumulator rewrite applies to a
// group: its leading flag must be Add/Sub Source or And/Or Next, at least
// one operand must use the Delta or Mem type, and no line may already pair
// Delta against Mem (mixed pairs are ambiguous to rewrite and left alone).
func DeltaMemApplies(group []*codec.Condition) bool {
	if len(group) == 0 {
		return false
	}
	switch group[0].Flag {
	case codec.FlagAddSource, codec.FlagSubSource, codec.FlagAndNext, codec.FlagOrNext:
	default:
		return false
	}

	hasDeltaOrMem := false
	for _, c := range group {
		if c.Type == codec.KindDelta || c.Type == codec.KindMem {
			hasDeltaOrMem = true
		}
		if c.HasRight() && (c.CompareType == codec.KindDelta || c.CompareType == codec.KindMem) {
			hasDeltaOrMem = true
		}
		if mixedDeltaMem(c) {
			return false
		}
	}
	return hasDeltaOrMem
}

func mixedDeltaMem(c *codec.Condition) bool {
	if !c.HasRight() {
		return false
	}
	return (c.Type == codec.KindDelta && c.CompareType == codec.KindMem) ||
		(c.Type == codec.KindMem && c.CompareType == codec.KindDelta)
}

// DeltaMem duplicates an expanded line sequence into its accumulator-safe
// form. Add/Sub-Source groups become a delta block and a mem block, each
// closed by a sentinel; And/Or-Next groups become an and-next variant
// followed by its or-next dual. Lines flagged Add Address are never
// converted. Returns the input unchanged when the rewrite does not apply.
func DeltaMem(group []*codec.Condition, lines []string) []string {
	if !DeltaMemApplies(group) || len(lines) == 0 {
		return lines
	}

	switch group[0].Flag {
	case codec.FlagAddSource, codec.FlagSubSource:
		out := make([]string, 0, 2*len(lines)+2)
		out = append(out, convertLines(lines, codec.KindDelta)...)
		out = append(out, SentinelLine)
		out = append(out, convertLines(lines, codec.KindMem)...)
		out = append(out, SentinelLine)
		return out

	case codec.FlagAndNext, codec.FlagOrNext:
		out := make([]string, 0, 2*len(lines))
		out = append(out, chainVariant(lines, codec.FlagAndNext)...)
		out = append(out, chainVariant(lines, codec.FlagOrNext)...)
		return out
	}
	return lines
}

// convertLines forces every Delta/Mem operand to the target kind. Add
// Address lines pass through byte-for-byte.
func convertLines(lines []string, target codec.OperandKind) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		c, ok := codec.Parse(line)
		if !ok || c.Flag == codec.FlagAddAddress {
			out[i] = line
			continue
		}
		c.Type = retargetDeltaMem(c.Type, target)
		if c.HasRight() {
			c.CompareType = retargetDeltaMem(c.CompareType, target)
		}
		out[i] = codec.Serialize(c)
	}
	return out
}

func retargetDeltaMem(kind, target codec.OperandKind) codec.OperandKind {
	if kind == codec.KindDelta || kind == codec.KindMem {
		return target
	}
	return kind
}

// chainVariant rewrites every line but the last to chain with the given
// flag. When that assignment swaps the chain direction (And Next against Or
// Next), the line's Delta/Mem modifiers are swapped and its comparator
// inverted so the variant asserts the dual of the original chain. The final
// line carries the actual assertion and stays untouched.
func chainVariant(lines []string, chain codec.Flag) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if i == len(lines)-1 {
			out[i] = line
			continue
		}
		c, ok := codec.Parse(line)
		if !ok {
			out[i] = line
			continue
		}
		swapped := (c.Flag == codec.FlagAndNext || c.Flag == codec.FlagOrNext) && c.Flag != chain
		c.Flag = chain
		if swapped {
			c.Type = swapDeltaMem(c.Type)
			if c.HasRight() {
				c.CompareType = swapDeltaMem(c.CompareType)
			}
			c.Cmp = invertComparator(c.Cmp)
		}
		out[i] = codec.Serialize(c)
	}
	return out
}

func swapDeltaMem(kind codec.OperandKind) codec.OperandKind {
	switch kind {
	case codec.KindDelta:
		return codec.KindMem
	case codec.KindMem:
		return codec.KindDelta
	}
	return kind
}

var invertedComparators = map[string]string{
	"=":  "!=",
	"!=": "=",
	">":  "<=",
	"<=": ">",
	"<":  ">=",
	">=": "<",
}

func invertComparator(cmp string) string {
	if inv, ok := invertedComparators[cmp]; ok {
		return inv
	}
	return cmp
}
