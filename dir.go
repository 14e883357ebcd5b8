package sokoban

// Dir is a compass direction: Up, Right, Down or Left. The signed deltas are
// kept small (int8) since they only ever take the values -1, 0 or 1.
type Dir struct {
	dr, dc int8
}

// The four directions, also available indexed via DirIndex and iterated via
// Directions — the "global direction table" every part of the solver shares
// so push tables and dead-end grids agree on an ordering.
var (
	Up    = Dir{dr: -1, dc: 0}
	Right = Dir{dr: 0, dc: 1}
	Down  = Dir{dr: 1, dc: 0}
	Left  = Dir{dr: 0, dc: -1}
)

// Directions lists the four directions in a fixed order used as both an
// iteration order and an array index (see DirIndex).
var Directions = [4]Dir{Up, Right, Down, Left}

// DirIndex returns d's position in Directions, used to index per-direction
// tables such as Grid[[4]Grid[OptionalU16]].
func DirIndex(d Dir) int {
	switch d {
	case Up:
		return 0
	case Right:
		return 1
	case Down:
		return 2
	case Left:
		return 3
	default:
		panic("sokoban: not a unit direction")
	}
}

// Inverse returns the opposite direction.
func (d Dir) Inverse() Dir {
	return Dir{dr: -d.dr, dc: -d.dc}
}

func (d Dir) String() string {
	switch d {
	case Up:
		return "u"
	case Right:
		return "r"
	case Down:
		return "d"
	case Left:
		return "l"
	default:
		return "?"
	}
}
