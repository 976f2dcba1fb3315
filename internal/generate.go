package internal

import (
	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/codec"
	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/passes"
	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/types"
)

// GenerateLines concatenates the per-group output in group order: a group
// with a confirmed expansion contributes its generated lines, everything
// else serializes as authored.
func (e *Engine) GenerateLines() []string {
	var out []string
	for _, leader := range e.groupLeaders() {
		if len(leader.ExpandedLines) > 0 {
			out = append(out, leader.ExpandedLines...)
			continue
		}
		for _, m := range e.list.GroupLines(leader.GroupID) {
			out = append(out, codec.Serialize(m))
		}
	}
	return out
}

// Generate returns the full generated wire blob.
func (e *Engine) Generate() string {
	return codec.Join(e.GenerateLines())
}

// CompressBits runs the bit-compression pass over a wire blob and reports
// the savings. The blob is treated as a flat line sequence; it need not
// correspond to this session's conditions.
func CompressBits(blob string) (string, types.PassStats) {
	lines := splitBlob(blob)
	stats := types.PassStats{
		Pass:        "bit-compression",
		LinesBefore: len(lines),
		BytesBefore: len(blob),
	}
	out := passes.CompressBits(lines)
	joined := codec.Join(out)
	stats.LinesAfter = len(out)
	stats.BytesAfter = len(joined)
	return joined, stats
}

// OptimizeRecall runs the remember/recall pattern compression over a wire
// blob and reports the savings.
func OptimizeRecall(blob string) (string, types.PassStats) {
	out, stats := passes.RememberRecall(splitBlob(blob))
	return codec.Join(out), stats
}

func splitBlob(blob string) []string {
	if blob == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i <= len(blob); i++ {
		if i == len(blob) || blob[i] == '_' {
			lines = append(lines, blob[start:i])
			start = i + 1
		}
	}
	return lines
}
