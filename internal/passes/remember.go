package passes

import (
	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/codec"
	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/types"
)

// minRememberLines is the smallest input worth scanning: a two-line pattern
// repeated three times.
const minRememberLines = 6

// RememberRecall finds the longest multi-line pattern that repeats at least
// three times without overlapping, rewrites its first occurrence so the last
// line carries the Remember flag, and collapses every later occurrence into
// a single recall placeholder. Returns the rewritten sequence and the
// savings report; when no pattern qualifies the input comes back unchanged.
func RememberRecall(lines []string) ([]string, types.PassStats) {
	stats := types.PassStats{
		Pass:        "remember-recall",
		LinesBefore: len(lines),
		BytesBefore: len(codec.Join(lines)),
	}

	pattern := bestPattern(lines)
	if pattern == nil {
		return unchanged(lines, stats)
	}

	last, ok := codec.Parse(pattern[len(pattern)-1])
	if !ok || last.Flag == codec.FlagNone {
		return unchanged(lines, stats)
	}

	remembered := make([]string, len(pattern))
	copy(remembered, pattern)
	tail := last.Clone()
	tail.Flag = codec.FlagRemember
	remembered[len(remembered)-1] = codec.Serialize(tail)

	placeholder := last.Flag.Letter() + ":" + codec.RecallLiteral

	var out []string
	seen := false
	for i := 0; i < len(lines); {
		if matchesAt(lines, pattern, i) {
			if !seen {
				out = append(out, remembered...)
				seen = true
			} else {
				out = append(out, placeholder)
			}
			i += len(pattern)
			continue
		}
		out = append(out, lines[i])
		i++
	}

	stats.LinesAfter = len(out)
	stats.BytesAfter = len(codec.Join(out))
	return out, stats
}

func unchanged(lines []string, stats types.PassStats) ([]string, types.PassStats) {
	stats.LinesAfter = stats.LinesBefore
	stats.BytesAfter = stats.BytesBefore
	return lines, stats
}

// bestPattern scans every candidate length from 2 up to a third of the input
// and every start offset, keeping the longest pattern that occurs at least
// three times non-overlapping. Ties keep the first candidate found.
func bestPattern(lines []string) []string {
	n := len(lines)
	if n < minRememberLines {
		return nil
	}

	var best []string
	for length := 2; length <= n/3; length++ {
		for start := 0; start+length <= n; start++ {
			candidate := lines[start : start+length]
			if length > len(best) && countNonOverlapping(lines, candidate) >= 3 {
				best = candidate
			}
		}
	}
	return best
}

// countNonOverlapping counts occurrences left to right; a match consumes its
// lines before the scan continues.
func countNonOverlapping(lines, pattern []string) int {
	count := 0
	for i := 0; i+len(pattern) <= len(lines); {
		if matchesAt(lines, pattern, i) {
			count++
			i += len(pattern)
			continue
		}
		i++
	}
	return count
}

func matchesAt(lines, pattern []string, at int) bool {
	if at+len(pattern) > len(lines) {
		return false
	}
	for i, p := range pattern {
		if lines[at+i] != p {
			return false
		}
	}
	return true
}
