// Package expand turns one authored condition group into the concrete line
// sequence for a user-chosen number of repetitions, either by per-repetition
// address arithmetic or by an explicit manual selection of addresses and
// bits.
package expand

import (
	"strconv"
	"strings"
)

// Tab selects which operand side varies across repetitions.
type Tab int

const (
	TabLeft Tab = iota
	TabRight
	TabBoth
)

// Config is the ephemeral state of one open expansion session, keyed by the
// group leader's line id. It is created on "Expand" and discarded on cancel;
// confirmation writes the generated lines onto the leader and discards it
// too.
type Config struct {
	LeaderID        int
	GeneratedGroups int
	DeltaCheck      bool
	Lines           map[int]*LineConfig
}

// LineConfig holds the per-member expansion settings.
type LineConfig struct {
	ActiveTab       Tab
	Increment       string // signed step per repetition, hex or decimal; "" = none
	CustomFieldSize int    // byte span offered to the manual picker
	Customized      bool
	Custom          *Selection
}

// NewConfig creates an expansion session for the group led by leaderID.
// Repetition counts below one are clamped to one.
func NewConfig(leaderID, generatedGroups int) *Config {
	if generatedGroups < 1 {
		generatedGroups = 1
	}
	return &Config{
		LeaderID:        leaderID,
		GeneratedGroups: generatedGroups,
		Lines:           make(map[int]*LineConfig),
	}
}

// Line returns the config for a member line, creating it on first use.
func (c *Config) Line(lineID int) *LineConfig {
	lc, ok := c.Lines[lineID]
	if !ok {
		lc = &LineConfig{}
		c.Lines[lineID] = lc
	}
	return lc
}

// ParseIncrement decodes a user-typed arithmetic step. Accepted forms: a
// leading sign, then "0x"- or "h"/"H"-prefixed hex, else decimal. The boolean
// is false for anything that does not produce a finite number, which blocks
// the dependent action silently.
func ParseIncrement(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}
	base := 10
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		s = s[2:]
		base = 16
	case len(s) > 0 && (s[0] == 'h' || s[0] == 'H'):
		s = s[1:]
		base = 16
	}
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}
