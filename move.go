package sokoban

import "strings"

// Move is a single player move: a direction plus whether it pushed a box.
// Grounded on original_source/src/moves.rs: lowercase for a step, uppercase
// for a push.
type Move struct {
	Dir    Dir
	IsPush bool
}

func (m Move) String() string {
	s := m.Dir.String()
	if m.IsPush {
		s = strings.ToUpper(s)
	}
	return s
}

// Moves is an ordered sequence of Move, the solver's solution encoding.
type Moves []Move

// MoveCount returns the total number of moves (steps + pushes).
func (m Moves) MoveCount() int {
	return len(m)
}

// PushCount returns the number of pushes among the moves.
func (m Moves) PushCount() int {
	n := 0
	for _, mv := range m {
		if mv.IsPush {
			n++
		}
	}
	return n
}

// Append appends more onto m in place and returns the result, mirroring the
// original's Moves::extend.
func (m Moves) Append(more Moves) Moves {
	return append(m, more...)
}

func (m Moves) String() string {
	var b strings.Builder
	b.Grow(len(m))
	for _, mv := range m {
		b.WriteString(mv.String())
	}
	return b.String()
}
