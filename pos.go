// Package sokoban provides the core grid and position types shared by the
// level model (package level) and the solver (package solver).
package sokoban

import "fmt"

// Pos is a row/column coordinate. Rows and columns are bounded by 255, the
// ceiling the solver enforces on map dimensions, so a pair of bytes suffices.
type Pos struct {
	R, C uint8
}

// NewPos constructs a Pos from plain ints, panicking if either coordinate
// doesn't fit in a byte. Parsers and tests build positions this way; the
// hot solving path always works with Pos values already in range.
func NewPos(r, c int) Pos {
	if r < 0 || r > 255 || c < 0 || c > 255 {
		panic(fmt.Sprintf("sokoban: position (%d,%d) out of range", r, c))
	}
	return Pos{R: uint8(r), C: uint8(c)}
}

// Add returns the position one step away from p in direction d.
func (p Pos) Add(d Dir) Pos {
	return Pos{R: uint8(int(p.R) + int(d.dr)), C: uint8(int(p.C) + int(d.dc))}
}

// Dist returns the Manhattan distance between p and other.
func (p Pos) Dist(other Pos) int {
	return absInt(int(p.R)-int(other.R)) + absInt(int(p.C)-int(other.C))
}

// DirTo returns the direction from p to other. It is only meaningful when
// other is exactly one step away from p along a single axis; ok is false
// otherwise.
func (p Pos) DirTo(other Pos) (dir Dir, ok bool) {
	if p.Dist(other) != 1 {
		return Dir{}, false
	}
	for _, d := range Directions {
		if p.Add(d) == other {
			return d, true
		}
	}
	return Dir{}, false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.R, p.C)
}
