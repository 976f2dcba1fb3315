// Package internal provides the session engine for the condition logic
// generator.
//
// An Engine owns all mutable state of one editing session: the ordered
// condition list with its link groups, the per-leader expansion configs, and
// the group color table. Every pipeline entry point either completes with a
// valid state mutation or leaves the session untouched and records a
// transient Warning; there is no fatal error path in the core.
package internal

import (
	"fmt"

	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/codec"
	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/expand"
	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/group"
	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/types"
)

// DefaultMaxLines caps the number of generated lines a session may hold.
const DefaultMaxLines = 1000

const warnLineCount = "Line count would be exceeded."

// Engine is one editing session over a logic set.
type Engine struct {
	list     *group.List
	configs  map[int]*expand.Config
	colors   map[int]int
	nextTint int

	maxLines         int
	coerceAddAddress bool

	warnings []types.Warning
}

// NewEngine creates an empty session. maxLines <= 0 selects the default cap.
func NewEngine(maxLines int) *Engine {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}
	return &Engine{
		list:     group.NewList(nil),
		configs:  make(map[int]*expand.Config),
		colors:   make(map[int]int),
		maxLines: maxLines,
	}
}

// SetCoerceAddAddress switches the Add Address type restriction from the
// default reject policy to silent coercion, matching the configuration
// escape hatch.
func (e *Engine) SetCoerceAddAddress(coerce bool) {
	e.coerceAddAddress = coerce
}

// LoadText replaces the whole session from the wire blob. Malformed lines
// are dropped silently; expansion and customization state does not survive a
// re-parse. Re-loading from text is the session's reset-to-known-good
// operation.
func (e *Engine) LoadText(blob string) {
	e.list = group.NewList(codec.ParseAll(blob))
	e.configs = make(map[int]*expand.Config)
	e.colors = make(map[int]int)
	e.nextTint = 0
}

// Text serializes the authored conditions (not the generated output) back
// into the wire blob.
func (e *Engine) Text() string {
	return codec.Join(codec.SerializeAll(e.list.Conditions()))
}

// Conditions exposes the ordered condition list.
func (e *Engine) Conditions() []*codec.Condition {
	return e.list.Conditions()
}

// List exposes the group model for callers that render or test group shape.
func (e *Engine) List() *group.List {
	return e.list
}

// Warnings drains the transient warnings recorded since the last call.
func (e *Engine) Warnings() []types.Warning {
	w := e.warnings
	e.warnings = nil
	return w
}

func (e *Engine) warn(op, message string) {
	e.warnings = append(e.warnings, types.Warning{Op: op, Message: message})
}

// invalidateExpansions drops every open expansion session: configs are keyed
// by leader line id, and a structural change has just moved line ids.
func (e *Engine) invalidateExpansions() {
	e.configs = make(map[int]*expand.Config)
}

// InsertAfter adds a parsed condition below the group containing lineID.
func (e *Engine) InsertAfter(lineID int, c *codec.Condition) bool {
	if e.list.Len()+1 > e.maxLines {
		e.warn("insert", warnLineCount)
		return false
	}
	if !e.list.InsertAfter(lineID, c) {
		return false
	}
	e.invalidateExpansions()
	return true
}

// Append adds a condition at the end of the list.
func (e *Engine) Append(c *codec.Condition) bool {
	if e.list.Len()+1 > e.maxLines {
		e.warn("append", warnLineCount)
		return false
	}
	e.list.Append(c)
	return true
}

// Remove deletes a line and renumbers.
func (e *Engine) Remove(lineID int) bool {
	if !e.list.Remove(lineID) {
		return false
	}
	e.invalidateExpansions()
	return true
}

// Copy duplicates a line below its group.
func (e *Engine) Copy(lineID int) bool {
	if e.list.Len()+1 > e.maxLines {
		e.warn("copy", warnLineCount)
		return false
	}
	if !e.list.Copy(lineID) {
		return false
	}
	e.invalidateExpansions()
	return true
}

// CanLink mirrors the group model guard.
func (e *Engine) CanLink(lineID int) bool {
	return e.list.CanLink(lineID)
}

// Link merges the group below the leader into its group.
func (e *Engine) Link(lineID int) bool {
	return e.list.Link(lineID)
}

// Unlink splits the group after the given line.
func (e *Engine) Unlink(lineID int) {
	e.list.Unlink(lineID)
}

// AutoLink chains operand and combinator flags without user action.
func (e *Engine) AutoLink() {
	e.list.AutoLink()
}

// SetType changes the left operand kind of a line. Under the Add Address
// flag only Mem, Prior, Value, and Recall are admissible; the default policy
// rejects the edit with a warning, the coerce policy silently substitutes
// Mem the way the parser does.
func (e *Engine) SetType(lineID int, kind codec.OperandKind) bool {
	c := e.list.ByLine(lineID)
	if c == nil {
		return false
	}
	if c.Flag == codec.FlagAddAddress && !kind.AllowedWithAddAddress() {
		if !e.coerceAddAddress {
			e.warn("set-type", fmt.Sprintf("%s is not allowed with Add Address", kind))
			return false
		}
		kind = codec.KindMem
	}
	c.Type = kind
	return true
}

// GroupColor returns a stable palette index for a multi-member group, or -1
// for singletons.
func (e *Engine) GroupColor(groupID int) int {
	if len(e.list.GroupLines(groupID)) < 2 {
		return -1
	}
	tint, ok := e.colors[groupID]
	if !ok {
		tint = e.nextTint
		e.colors[groupID] = tint
		e.nextTint++
	}
	return tint
}
