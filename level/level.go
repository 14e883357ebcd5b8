// Package level holds the immutable map and mutable state of a Sokoban
// puzzle: the data a parser produces and the preprocessor and solver consume.
package level

import (
	"sort"

	"github.com/bertbaron/sokoban-solver"
)

// Map is the static, immutable part of a level: the terrain grid plus the
// ordered list of goal cells. After preprocessing every cell unreachable
// from the initial player position has been rewritten to Wall, so nothing
// downstream needs to bounds-check (sokoban.SPEC_FULL §1.4).
type Map struct {
	Grid  sokoban.Grid[sokoban.MapCell]
	Goals []sokoban.Pos
}

// Remover returns the position of the map's box-remover cell, if any.
func (m Map) Remover() (sokoban.Pos, bool) {
	var found sokoban.Pos
	ok := false
	m.Grid.Each(func(p sokoban.Pos) {
		if !ok && m.Grid.At(p) == sokoban.CellRemover {
			found, ok = p, true
		}
	})
	return found, ok
}

// State is the mutable part of a level: the player position and the sorted
// list of box positions. Boxes are always kept sorted so that equal
// multisets of box positions produce byte-equal states (State.Key),
// enabling hashing-based deduplication in the search engine's closed set.
type State struct {
	PlayerPos sokoban.Pos
	Boxes     []sokoban.Pos
}

// NewState builds a State, sorting boxes to establish the invariant.
func NewState(playerPos sokoban.Pos, boxes []sokoban.Pos) State {
	sorted := make([]sokoban.Pos, len(boxes))
	copy(sorted, boxes)
	sortPositions(sorted)
	return State{PlayerPos: playerPos, Boxes: sorted}
}

func sortPositions(boxes []sokoban.Pos) {
	sort.Slice(boxes, func(i, j int) bool {
		if boxes[i].R != boxes[j].R {
			return boxes[i].R < boxes[j].R
		}
		return boxes[i].C < boxes[j].C
	})
}

// Clone returns an independent copy of s.
func (s State) Clone() State {
	boxes := make([]sokoban.Pos, len(s.Boxes))
	copy(boxes, s.Boxes)
	return State{PlayerPos: s.PlayerPos, Boxes: boxes}
}

// BoxIndex returns the index of pos within s.Boxes, or -1 if no box sits
// there. Boxes is sorted, so this is a binary search.
func (s State) BoxIndex(pos sokoban.Pos) int {
	lo, hi := 0, len(s.Boxes)
	for lo < hi {
		mid := (lo + hi) / 2
		b := s.Boxes[mid]
		switch {
		case b.R == pos.R && b.C == pos.C:
			return mid
		case b.R < pos.R || (b.R == pos.R && b.C < pos.C):
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return -1
}

// HasBox reports whether a box sits at pos.
func (s State) HasBox(pos sokoban.Pos) bool {
	return s.BoxIndex(pos) >= 0
}

// WithPush returns a new State with the player moved to oldBoxPos and the
// box that was at oldBoxPos moved to newBoxPos, re-sorted to preserve the
// State invariant. oldBoxPos must currently hold a box.
func (s State) WithPush(oldBoxPos, newBoxPos sokoban.Pos) State {
	idx := s.BoxIndex(oldBoxPos)
	if idx < 0 {
		panic("level: WithPush: no box at the given position")
	}
	boxes := make([]sokoban.Pos, len(s.Boxes))
	copy(boxes, s.Boxes)
	boxes[idx] = newBoxPos
	sortPositions(boxes)
	return State{PlayerPos: oldBoxPos, Boxes: boxes}
}

// WithoutBox returns a new State with the box at pos removed (used when a
// box is pushed onto a Remover cell) and the player moved to pos.
func (s State) WithoutBox(pos sokoban.Pos) State {
	idx := s.BoxIndex(pos)
	if idx < 0 {
		panic("level: WithoutBox: no box at the given position")
	}
	boxes := make([]sokoban.Pos, 0, len(s.Boxes)-1)
	boxes = append(boxes, s.Boxes[:idx]...)
	boxes = append(boxes, s.Boxes[idx+1:]...)
	return State{PlayerPos: pos, Boxes: boxes}
}

// WithStep returns a new State with only the player moved, boxes unchanged.
func (s State) WithStep(newPlayerPos sokoban.Pos) State {
	return State{PlayerPos: newPlayerPos, Boxes: s.Boxes}
}

// Key packs PlayerPos and the sorted Boxes into a byte string suitable as a
// map/interning key: two equal multisets of box positions always produce
// byte-equal keys regardless of the order pushes discovered them in.
func (s State) Key() []byte {
	key := make([]byte, 0, 2+2*len(s.Boxes))
	key = append(key, s.PlayerPos.R, s.PlayerPos.C)
	for _, b := range s.Boxes {
		key = append(key, b.R, b.C)
	}
	return key
}

// Solved reports whether every box lies on a Goal or Remover cell. With a
// remover present, len(state.Boxes) can shrink over time as boxes are
// disposed of; the solved check still only has to look at the boxes that
// remain.
func Solved(m Map, s State) bool {
	for _, b := range s.Boxes {
		cell := m.Grid.At(b)
		if cell != sokoban.CellGoal && cell != sokoban.CellRemover {
			return false
		}
	}
	return true
}
