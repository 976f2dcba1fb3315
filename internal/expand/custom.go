package expand

import (
	"sort"

	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/codec"
)

// rowSpan is the byte width of one picker row.
const rowSpan = 16

// Selection is the manual picker state of one line config. Rows are keyed by
// 16-byte aligned base address; the per-byte state depends on the operand
// size class of the condition being customized.
type Selection struct {
	MaxSelections int
	Size          codec.Size
	Rows          map[uint64]*Row
}

// Row is one 16-byte band of the picker.
type Row struct {
	Base  uint64
	Bytes map[int]*ByteState
}

// ByteState is the selection state of one byte (or one stride-aligned
// operand slot) within a row. Which fields are meaningful depends on the
// selection's size class: Bits/BitCount for single-bit sizes, Upper/Lower
// for nibbles, Active for everything else.
type ByteState struct {
	BitCount bool
	Bits     [8]bool
	Upper    bool
	Lower    bool
	Active   bool
}

// Pick is one flattened selection: the concrete address and operand size a
// repetition receives.
type Pick struct {
	Addr uint64
	Size codec.Size
}

// NewSelection creates an empty picker for the given operand size, spanning
// fieldSize bytes starting at base. The rows covering the span are created
// up front so bulk row toggles have something to operate on.
func NewSelection(size codec.Size, maxSelections int, base uint64, fieldSize int) *Selection {
	s := &Selection{
		MaxSelections: maxSelections,
		Size:          size,
		Rows:          make(map[uint64]*Row),
	}
	if fieldSize > 0 {
		first := base &^ (rowSpan - 1)
		last := (base + uint64(fieldSize) - 1) &^ (rowSpan - 1)
		for b := first; b <= last; b += rowSpan {
			s.Rows[b] = &Row{Base: b, Bytes: make(map[int]*ByteState)}
		}
	}
	return s
}

// bitClass reports whether the picker operates on individual bits.
func (s *Selection) bitClass() bool {
	return s.Size.IsBit() || s.Size == codec.SizeBitCount
}

func (s *Selection) nibbleClass() bool {
	return s.Size.IsNibble()
}

func (s *Selection) row(addr uint64) *Row {
	base := addr &^ (rowSpan - 1)
	r, ok := s.Rows[base]
	if !ok {
		r = &Row{Base: base, Bytes: make(map[int]*ByteState)}
		s.Rows[base] = r
	}
	return r
}

func (s *Selection) byteState(addr uint64) *ByteState {
	r := s.row(addr)
	off := int(addr - r.Base)
	b, ok := r.Bytes[off]
	if !ok {
		b = &ByteState{}
		r.Bytes[off] = b
	}
	return b
}

// ToggleBit flips one bit of one byte. Selecting the eighth bit promotes the
// byte to BitCount; clearing any bit while promoted demotes it. Only legal
// for the bit size class.
func (s *Selection) ToggleBit(addr uint64, bit int) {
	if !s.bitClass() || bit < 0 || bit > 7 {
		return
	}
	b := s.byteState(addr)
	b.Bits[bit] = !b.Bits[bit]
	b.BitCount = b.allBits()
}

// ToggleBitCount flips the aggregate BitCount button of one byte, selecting
// or deselecting all eight bits at once.
func (s *Selection) ToggleBitCount(addr uint64) {
	if !s.bitClass() {
		return
	}
	b := s.byteState(addr)
	set := !b.BitCount
	for i := range b.Bits {
		b.Bits[i] = set
	}
	b.BitCount = set
}

func (b *ByteState) allBits() bool {
	for _, set := range b.Bits {
		if !set {
			return false
		}
	}
	return true
}

// ToggleNibble flips the upper or lower half-byte selection of one byte.
// Only legal for the nibble size class.
func (s *Selection) ToggleNibble(addr uint64, upper bool) {
	if !s.nibbleClass() {
		return
	}
	b := s.byteState(addr)
	if upper {
		b.Upper = !b.Upper
	} else {
		b.Lower = !b.Lower
	}
}

// Toggle flips the single active flag of one stride-aligned operand slot.
// Only legal for the plain size classes; misaligned addresses are ignored.
func (s *Selection) Toggle(addr uint64) {
	if s.bitClass() || s.nibbleClass() {
		return
	}
	if addr%uint64(s.Size.Stride()) != 0 {
		return
	}
	b := s.byteState(addr)
	b.Active = !b.Active
}

// ToggleRow is the row-level bulk toggle for the plain size classes: if every
// stride slot in the row is selected it clears them all, otherwise it selects
// them all.
func (s *Selection) ToggleRow(base uint64) {
	if s.bitClass() || s.nibbleClass() {
		return
	}
	base &^= rowSpan - 1
	stride := uint64(s.Size.Stride())
	all := true
	for off := uint64(0); off < rowSpan; off += stride {
		b, ok := s.Rows[base]
		if !ok {
			all = false
			break
		}
		st, ok := b.Bytes[int(off)]
		if !ok || !st.Active {
			all = false
			break
		}
	}
	for off := uint64(0); off < rowSpan; off += stride {
		s.byteState(base + off).Active = !all
	}
}

// ToggleRowNibbles is the row-level bulk toggle for nibble selections: all
// upper halves or all lower halves of the row at once.
func (s *Selection) ToggleRowNibbles(base uint64, upper bool) {
	if !s.nibbleClass() {
		return
	}
	base &^= rowSpan - 1
	all := true
	for off := 0; off < rowSpan; off++ {
		r, ok := s.Rows[base]
		if !ok {
			all = false
			break
		}
		st, ok := r.Bytes[off]
		if !ok || (upper && !st.Upper) || (!upper && !st.Lower) {
			all = false
			break
		}
	}
	for off := 0; off < rowSpan; off++ {
		st := s.byteState(base + uint64(off))
		if upper {
			st.Upper = !all
		} else {
			st.Lower = !all
		}
	}
}

// SelectedCount recomputes the number of selections by full re-scan. Never
// cache this across toggles: BitCount promotion collapses eight bit
// selections into one, so a running counter goes stale.
func (s *Selection) SelectedCount() int {
	count := 0
	for _, r := range s.Rows {
		for _, b := range r.Bytes {
			switch {
			case s.bitClass():
				if b.BitCount {
					count++
					continue
				}
				for _, set := range b.Bits {
					if set {
						count++
					}
				}
			case s.nibbleClass():
				if b.Lower {
					count++
				}
				if b.Upper {
					count++
				}
			default:
				if b.Active {
					count++
				}
			}
		}
	}
	return count
}

// Picks flattens the selection into the ordered list the expansion engine
// consumes: ascending row base, then ascending byte offset, then lower
// nibble before upper, then bit index. The n-th repetition receives the n-th
// pick.
func (s *Selection) Picks() []Pick {
	bases := make([]uint64, 0, len(s.Rows))
	for b := range s.Rows {
		bases = append(bases, b)
	}
	sort.Slice(bases, func(i, j int) bool { return bases[i] < bases[j] })

	var picks []Pick
	for _, base := range bases {
		r := s.Rows[base]
		offsets := make([]int, 0, len(r.Bytes))
		for off := range r.Bytes {
			offsets = append(offsets, off)
		}
		sort.Ints(offsets)
		for _, off := range offsets {
			addr := r.Base + uint64(off)
			b := r.Bytes[off]
			switch {
			case s.bitClass():
				if b.BitCount {
					picks = append(picks, Pick{Addr: addr, Size: codec.SizeBitCount})
					continue
				}
				for i, set := range b.Bits {
					if set {
						picks = append(picks, Pick{Addr: addr, Size: codec.BitSize(i)})
					}
				}
			case s.nibbleClass():
				if b.Lower {
					picks = append(picks, Pick{Addr: addr, Size: codec.SizeLower4})
				}
				if b.Upper {
					picks = append(picks, Pick{Addr: addr, Size: codec.SizeUpper4})
				}
			default:
				if b.Active {
					picks = append(picks, Pick{Addr: addr, Size: s.Size})
				}
			}
		}
	}
	return picks
}
