package passes

import (
	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/codec"
)

// minBitRun is the smallest single-bit run worth folding: an aggregate plus
// at most three corrections is only a win from five lines up.
const minBitRun = 5

// CompressBits folds runs of single-bit comparisons against one address into
// one BitCount comparison plus per-missing-bit corrections carrying the
// opposite operand flag. A run qualifies when it has at least five members,
// all distinct bits, the same address and Delta/Mem modifier, and its last
// line is flagged Add Source or Sub Source. Everything else passes through
// unchanged, so the pass is a no-op on sequences with nothing to fold and
// idempotent overall.
func CompressBits(lines []string) []string {
	out := make([]string, 0, len(lines))
	i := 0
	for i < len(lines) {
		first, ok := codec.Parse(lines[i])
		if !ok || !first.Size.IsBit() {
			out = append(out, lines[i])
			i++
			continue
		}

		run := []*codec.Condition{first}
		j := i + 1
		for j < len(lines) {
			next, ok := codec.Parse(lines[j])
			if !ok || !next.Size.IsBit() || !sameBitSource(first, next) {
				break
			}
			run = append(run, next)
			j++
		}

		out = append(out, foldRun(run, lines[i:j])...)
		i = j
	}
	return out
}

// sameBitSource reports whether two single-bit lines read the same address
// through the same Delta/Mem/plain modifier. The combinator flag is ignored
// for grouping.
func sameBitSource(a, b *codec.Condition) bool {
	if a.Type != b.Type {
		return false
	}
	av, aok := a.LeftAddress()
	bv, bok := b.LeftAddress()
	if aok && bok {
		return av == bv
	}
	return a.Memory == b.Memory
}

// foldRun rewrites one maximal run, or returns the original lines when the
// run does not qualify.
func foldRun(run []*codec.Condition, original []string) []string {
	if len(run) < minBitRun {
		return original
	}
	last := run[len(run)-1]
	if last.Flag != codec.FlagAddSource && last.Flag != codec.FlagSubSource {
		return original
	}

	var present [8]bool
	for _, c := range run {
		bit := c.Size.BitIndex()
		if present[bit] {
			// duplicate bit; folding would change the accumulated sum
			return original
		}
		present[bit] = true
	}

	aggregate := last.Clone()
	aggregate.Size = codec.SizeBitCount

	var corrections []string
	for bit := 0; bit < 8; bit++ {
		if present[bit] {
			continue
		}
		fix := &codec.Condition{
			Flag:   oppositeSourceFlag(last.Flag),
			Type:   last.Type,
			Size:   codec.BitSize(bit),
			Memory: last.Memory,
		}
		corrections = append(corrections, codec.Serialize(fix))
	}

	// net effect always adds before subtracting: an Add Source run leads
	// with the aggregate, a Sub Source run trails with it
	var out []string
	if last.Flag == codec.FlagAddSource {
		out = append(out, codec.Serialize(aggregate))
		out = append(out, corrections...)
	} else {
		out = append(out, corrections...)
		out = append(out, codec.Serialize(aggregate))
	}
	return out
}

func oppositeSourceFlag(f codec.Flag) codec.Flag {
	if f == codec.FlagAddSource {
		return codec.FlagSubSource
	}
	return codec.FlagAddSource
}
