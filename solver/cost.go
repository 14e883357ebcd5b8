package solver

import "fmt"

// Cost is an abstract totally-ordered additive value a search is optimizing.
// Two concrete instantiations exist: SimpleCost for single-dimensional costs
// (pushes-only or moves-only) and ComplexCost for the lexicographic
// "moves then pushes" / "pushes then moves" pair. Grounded on
// original_source/src/solver/a_star.rs's `Cost` trait; Go has no operator
// overloading, so Add/Sub/Less are methods rather than `+`/`-`/`<`.
type Cost interface {
	fmt.Stringer

	// Add returns the sum of the receiver and other.
	Add(other Cost) Cost

	// Sub returns the receiver minus other.
	Sub(other Cost) Cost

	// Less reports whether the receiver sorts strictly before other.
	Less(other Cost) bool

	// Equal reports whether the receiver and other represent the same cost.
	Equal(other Cost) bool

	// Depth projects the cost to the scalar search depth used to index
	// Stats: the primary component for ComplexCost, the only component for
	// SimpleCost.
	Depth() uint16
}

// SimpleCost is a single u16-valued cost, used for the Pushes and Moves
// optimization methods.
type SimpleCost uint16

// SimpleZero is the additive identity for SimpleCost.
func SimpleZero() SimpleCost { return 0 }

// SimpleOne is a single unit of SimpleCost.
func SimpleOne() SimpleCost { return 1 }

func (c SimpleCost) Add(other Cost) Cost { return c + other.(SimpleCost) }
func (c SimpleCost) Sub(other Cost) Cost { return c - other.(SimpleCost) }
func (c SimpleCost) Less(other Cost) bool {
	return c < other.(SimpleCost)
}
func (c SimpleCost) Equal(other Cost) bool { return c == other.(SimpleCost) }
func (c SimpleCost) Depth() uint16         { return uint16(c) }
func (c SimpleCost) String() string        { return fmt.Sprintf("%d", uint16(c)) }

// ComplexCost is a lexicographic (primary, secondary) pair, used for the
// MovesPushes (moves then pushes) and PushesMoves (pushes then moves)
// optimization methods; which component is "moves" and which is "pushes"
// depends on which Method selected this cost type (see solve.go).
type ComplexCost struct {
	Primary, Secondary uint16
}

// ComplexZero is the additive identity for ComplexCost.
func ComplexZero() ComplexCost { return ComplexCost{} }

// ComplexOne is a single unit of primary cost with no secondary component,
// the unit used by the Move-expansion loop (one move = one step of primary
// cost; the secondary/push component is only incremented when that move
// happens to be a push — see heuristic.go and expand.go).
func ComplexOne() ComplexCost { return ComplexCost{Primary: 1} }

// ComplexPush is one unit of secondary cost only, added on top of
// ComplexOne when a move is a push.
func ComplexPush() ComplexCost { return ComplexCost{Secondary: 1} }

func (c ComplexCost) Add(other Cost) Cost {
	o := other.(ComplexCost)
	return ComplexCost{Primary: c.Primary + o.Primary, Secondary: c.Secondary + o.Secondary}
}

func (c ComplexCost) Sub(other Cost) Cost {
	o := other.(ComplexCost)
	return ComplexCost{Primary: c.Primary - o.Primary, Secondary: c.Secondary - o.Secondary}
}

func (c ComplexCost) Less(other Cost) bool {
	o := other.(ComplexCost)
	if c.Primary != o.Primary {
		return c.Primary < o.Primary
	}
	return c.Secondary < o.Secondary
}

func (c ComplexCost) Equal(other Cost) bool {
	o := other.(ComplexCost)
	return c == o
}

func (c ComplexCost) Depth() uint16 { return c.Primary }

func (c ComplexCost) String() string {
	return fmt.Sprintf("%d/%d", c.Primary, c.Secondary)
}
