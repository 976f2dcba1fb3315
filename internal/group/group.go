// Package group maintains the ordered condition list and its partition into
// contiguous link groups. Leadership is positional: the leader of a group is
// whichever member currently holds the greatest line id, recomputed on every
// structural change rather than stored.
package group

import (
	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/codec"
)

// List owns the ordered conditions of one session.
type List struct {
	conds []*codec.Condition
}

// NewList wraps conditions that already carry dense 1-based line ids, such as
// the output of codec.ParseAll.
func NewList(conds []*codec.Condition) *List {
	return &List{conds: conds}
}

// Conditions returns the backing slice in line order.
func (l *List) Conditions() []*codec.Condition {
	return l.conds
}

func (l *List) Len() int {
	return len(l.conds)
}

// ByLine returns the condition with the given line id, or nil.
func (l *List) ByLine(lineID int) *codec.Condition {
	if lineID < 1 || lineID > len(l.conds) {
		return nil
	}
	return l.conds[lineID-1]
}

// GroupLines returns every member of the group, in line order.
func (l *List) GroupLines(groupID int) []*codec.Condition {
	var members []*codec.Condition
	for _, c := range l.conds {
		if c.GroupID == groupID {
			members = append(members, c)
		}
	}
	return members
}

// GroupLeader returns the member with the greatest line id, or nil for an
// unknown group.
func (l *List) GroupLeader(groupID int) *codec.Condition {
	members := l.GroupLines(groupID)
	if len(members) == 0 {
		return nil
	}
	return members[len(members)-1]
}

// IsGroupLeader reports whether the condition is the leader of its group.
func (l *List) IsGroupLeader(c *codec.Condition) bool {
	leader := l.GroupLeader(c.GroupID)
	return leader != nil && leader.LineID == c.LineID
}

// CanLink reports whether the group led by lineID may absorb the group below
// it. Linking requires a leader, a condition below the group, and no pending
// expansion state on either side; expansion must be reset before the group
// shape changes.
func (l *List) CanLink(lineID int) bool {
	c := l.ByLine(lineID)
	if c == nil || !l.IsGroupLeader(c) {
		return false
	}
	below := l.ByLine(lineID + 1)
	if below == nil {
		return false
	}
	for _, m := range l.GroupLines(c.GroupID) {
		if len(m.ExpandedLines) > 0 {
			return false
		}
	}
	for _, m := range l.GroupLines(below.GroupID) {
		if len(m.ExpandedLines) > 0 {
			return false
		}
	}
	return true
}

// Link merges the group immediately below the leader's group into it. Because
// the leader is always the last member, chaining a multi-member group
// rightward and linking from its leader are the same operation. Reports
// whether a merge happened.
func (l *List) Link(lineID int) bool {
	if !l.CanLink(lineID) {
		return false
	}
	leader := l.ByLine(lineID)
	below := l.ByLine(lineID + 1)
	for _, m := range l.GroupLines(below.GroupID) {
		m.GroupID = leader.GroupID
	}
	return true
}

// Unlink splits the group after the given line: every member positioned
// after it reverts to a singleton group of its own, and the remaining head
// run takes the split-point member's line id as its group id. Re-deriving
// the head's id matters when the group id currently tracks a tail member
// (the normal state after Renumber).
func (l *List) Unlink(lineID int) {
	c := l.ByLine(lineID)
	if c == nil {
		return
	}
	for _, m := range l.GroupLines(c.GroupID) {
		if m.LineID > lineID {
			m.GroupID = m.LineID
		} else {
			m.GroupID = lineID
		}
	}
}

// Renumber reassigns dense 1-based line ids and re-derives group ids: a
// singleton keeps tracking its own line id, a multi-member group takes the
// new line id of whichever member now sits last. Must run after every
// insert, remove, or copy.
func (l *List) Renumber() {
	members := make(map[int][]*codec.Condition)
	singleton := make(map[*codec.Condition]bool)
	for _, c := range l.conds {
		members[c.GroupID] = append(members[c.GroupID], c)
		if c.GroupID == c.LineID {
			singleton[c] = true
		}
	}

	for i, c := range l.conds {
		c.LineID = i + 1
	}

	for _, group := range members {
		if len(group) == 1 && singleton[group[0]] {
			group[0].GroupID = group[0].LineID
			continue
		}
		leader := group[len(group)-1]
		for _, c := range group {
			c.GroupID = leader.LineID
		}
	}
}

// AutoLink scans top to bottom and greedily links every group whose leader
// carries a chaining flag (Add Address, Add/Sub Source, And/Or Next) with the
// group below it, repeating until no more links are legal. This chains
// operand and combinator flags without user action.
func (l *List) AutoLink() {
	for {
		changed := false
		for _, c := range l.conds {
			if !c.Flag.IsChaining() || !l.IsGroupLeader(c) {
				continue
			}
			if l.Link(c.LineID) {
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}
