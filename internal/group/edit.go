package group

import (
	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/codec"
)

// Append adds a condition at the end of the list as a singleton group.
func (l *List) Append(c *codec.Condition) {
	c.LineID = len(l.conds) + 1
	c.GroupID = c.LineID
	l.conds = append(l.conds, c)
}

// InsertAfter places a new singleton condition below the group that contains
// lineID, so the insertion never splits a contiguous run. Reports whether
// the anchor line exists.
func (l *List) InsertAfter(lineID int, c *codec.Condition) bool {
	anchor := l.ByLine(lineID)
	if anchor == nil {
		return false
	}
	members := l.GroupLines(anchor.GroupID)
	at := members[len(members)-1].LineID // insert index, 0-based slot after the group

	l.conds = append(l.conds, nil)
	copy(l.conds[at+1:], l.conds[at:])
	// mark as singleton so Renumber keeps it independent
	c.LineID = 0
	c.GroupID = 0
	l.conds[at] = c
	l.Renumber()
	return true
}

// Remove deletes the condition with the given line id and renumbers. The
// remaining members of its group stay together. Reports whether the line
// existed.
func (l *List) Remove(lineID int) bool {
	c := l.ByLine(lineID)
	if c == nil {
		return false
	}
	i := lineID - 1
	l.conds = append(l.conds[:i], l.conds[i+1:]...)
	l.Renumber()
	return true
}

// Copy duplicates the condition with the given line id as a new singleton
// below its group. Expansion state is not carried over. Reports whether the
// line existed.
func (l *List) Copy(lineID int) bool {
	c := l.ByLine(lineID)
	if c == nil {
		return false
	}
	dup := c.Clone()
	dup.Expanded = false
	dup.ExpandedLines = nil
	return l.InsertAfter(lineID, dup)
}
