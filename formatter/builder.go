package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal"
	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/codec"
	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/types"
)

var (
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	flagStyle    = color.New(color.FgYellow, color.Bold)
	passStyle    = color.New(color.FgCyan, color.Bold)
	savingsStyle = color.New(color.FgGreen, color.Bold)
	warningStyle = color.New(color.FgHiYellow, color.Bold)
	noStyle      = color.New(color.FgWhite)
)

// groupPalette colors the members of multi-member link groups; singleton
// lines stay uncolored. Tints repeat once the palette is exhausted.
var groupPalette = []*color.Color{
	color.New(color.FgGreen),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
	color.New(color.FgRed),
	color.New(color.FgBlue),
	color.New(color.FgHiGreen),
	color.New(color.FgHiMagenta),
	color.New(color.FgHiCyan),
}

// FormatConditions renders the session's condition list, one line per
// condition, with link groups tinted from the palette.
func FormatConditions(engine *internal.Engine) string {
	var builder strings.Builder
	for _, c := range engine.Conditions() {
		builder.WriteString(lineStyle.Sprintf("%4d ", c.LineID))

		text := codec.Serialize(c)
		if tint := engine.GroupColor(c.GroupID); tint >= 0 {
			text = groupPalette[tint%len(groupPalette)].Sprint(text)
		} else {
			text = noStyle.Sprint(text)
		}
		builder.WriteString(text)

		if c.Flag != codec.FlagNone {
			builder.WriteString("  ")
			builder.WriteString(flagStyle.Sprintf("[%s]", c.Flag))
		}
		if len(c.ExpandedLines) > 0 {
			builder.WriteString(noStyle.Sprintf("  (%d generated)", len(c.ExpandedLines)))
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

// FormatPassReport renders the before/after summary of one pass.
func FormatPassReport(stats types.PassStats) string {
	header := passStyle.Sprint(stats.Pass) + ": "
	if !stats.Changed() {
		return header + noStyle.Sprint("no change") + "\n"
	}
	return header + fmt.Sprintf("%d -> %d lines, %d -> %d bytes ",
		stats.LinesBefore, stats.LinesAfter, stats.BytesBefore, stats.BytesAfter) +
		savingsStyle.Sprintf("(saved %d lines, %d bytes)", stats.LinesSaved(), stats.BytesSaved()) +
		"\n"
}

// FormatWarnings renders the transient warnings drained from a session.
func FormatWarnings(warnings []types.Warning) string {
	var builder strings.Builder
	for _, w := range warnings {
		builder.WriteString(warningStyle.Sprint("warning: "))
		builder.WriteString(noStyle.Sprint(w.String()))
		builder.WriteByte('\n')
	}
	return builder.String()
}
