package internal

import (
	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/codec"
	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/expand"
	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/passes"
)

const warnSelectionCount = "Selection count does not match the repetition count."

// BeginExpansion opens an expansion session for the group led by leaderID.
// Only a group leader whose condition is expandable may open one; reopening
// returns the existing session so in-place edits are preserved.
func (e *Engine) BeginExpansion(leaderID, generatedGroups int) (*expand.Config, bool) {
	leader := e.list.ByLine(leaderID)
	if leader == nil || !e.list.IsGroupLeader(leader) || !expand.CanExpand(leader) {
		return nil, false
	}
	if cfg, ok := e.configs[leaderID]; ok {
		return cfg, true
	}
	cfg := expand.NewConfig(leaderID, generatedGroups)
	e.configs[leaderID] = cfg
	return cfg, true
}

// ExpansionConfig returns the open session for a leader, if any.
func (e *Engine) ExpansionConfig(leaderID int) (*expand.Config, bool) {
	cfg, ok := e.configs[leaderID]
	return cfg, ok
}

// Customize opens the manual picker for one member of an open expansion
// session. The line's custom field size must parse to a positive byte span
// beforehand; otherwise the picker silently refuses to open.
func (e *Engine) Customize(leaderID, lineID int, base uint64) (*expand.Selection, bool) {
	cfg, ok := e.configs[leaderID]
	if !ok {
		return nil, false
	}
	c := e.list.ByLine(lineID)
	if c == nil || c.GroupID != e.list.ByLine(leaderID).GroupID {
		return nil, false
	}
	lc := cfg.Line(lineID)
	if lc.CustomFieldSize <= 0 {
		return nil, false
	}
	if lc.Custom == nil {
		size := c.Size
		if lc.ActiveTab == expand.TabRight {
			size = c.CompareSize
		}
		lc.Custom = expand.NewSelection(size, cfg.GeneratedGroups, base, lc.CustomFieldSize)
		lc.Customized = true
	}
	return lc.Custom, true
}

// CancelExpansion discards an open session without touching the conditions.
func (e *Engine) CancelExpansion(leaderID int) {
	delete(e.configs, leaderID)
}

// ConfirmExpansion generates the line sequence for an open session and
// writes it onto the group leader. Manual selections must match the
// repetition count exactly, and the session-wide generated line total must
// stay under the cap; a failed gate records a warning and changes nothing.
func (e *Engine) ConfirmExpansion(leaderID int) bool {
	cfg, ok := e.configs[leaderID]
	if !ok {
		return false
	}
	leader := e.list.ByLine(leaderID)
	if leader == nil || !e.list.IsGroupLeader(leader) {
		return false
	}

	for _, lc := range cfg.Lines {
		if lc.Customized && lc.Custom != nil &&
			lc.Custom.SelectedCount() != lc.Custom.MaxSelections {
			e.warn("confirm-expansion", warnSelectionCount)
			return false
		}
	}

	members := e.list.GroupLines(leader.GroupID)
	lines := expand.Expand(members, cfg)
	if cfg.DeltaCheck {
		lines = passes.DeltaMem(members, lines)
	}

	if e.generatedTotal(leader.GroupID)+len(lines) > e.maxLines {
		e.warn("confirm-expansion", warnLineCount)
		return false
	}

	leader.Expanded = true
	leader.ExpandedLines = lines
	delete(e.configs, leaderID)
	return true
}

// ResetExpansion clears confirmed expansion state from a group so its shape
// may change again.
func (e *Engine) ResetExpansion(leaderID int) {
	leader := e.list.ByLine(leaderID)
	if leader == nil {
		return
	}
	for _, m := range e.list.GroupLines(leader.GroupID) {
		m.Expanded = false
		m.ExpandedLines = nil
	}
}

// generatedTotal counts the lines every group other than skipGroup
// contributes to the generated output.
func (e *Engine) generatedTotal(skipGroup int) int {
	total := 0
	for _, leader := range e.groupLeaders() {
		if leader.GroupID == skipGroup {
			continue
		}
		if len(leader.ExpandedLines) > 0 {
			total += len(leader.ExpandedLines)
		} else {
			total += len(e.list.GroupLines(leader.GroupID))
		}
	}
	return total
}

// groupLeaders returns the leader of every group in line order.
func (e *Engine) groupLeaders() []*codec.Condition {
	var leaders []*codec.Condition
	for _, c := range e.list.Conditions() {
		if e.list.IsGroupLeader(c) {
			leaders = append(leaders, c)
		}
	}
	return leaders
}
